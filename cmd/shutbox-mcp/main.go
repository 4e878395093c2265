package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/ironsheep/shutbox-mcp/internal/config"
	"github.com/ironsheep/shutbox-mcp/internal/detection"
	"github.com/ironsheep/shutbox-mcp/internal/imaging"
	"github.com/ironsheep/shutbox-mcp/internal/report"
	"github.com/ironsheep/shutbox-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help before touching the environment
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("shutbox-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	// Logs go to stderr; stdout is for MCP protocol and reports
	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}
	logger.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("shutbox-mcp starting")

	mode := ""
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "solve":
		path := "-"
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		err = solveFile(path, os.Stdout, cfg.Layout(), logger)
	case "stream":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = runStream(ctx, os.Stdin, os.Stdout, cfg.Layout(), logger)
	case "":
		style, styleErr := cfg.Style()
		if styleErr != nil {
			err = styleErr
			break
		}
		logger.Debug().
			Str("open", imaging.HexString(style.OpenBox)).
			Str("closed", imaging.HexString(style.ClosedBox)).
			Str("dice", imaging.HexString(style.Dice)).
			Float64("opacity", style.Opacity).
			Msg("renderer style")
		err = server.New(cfg.Layout(), style, logger).Run()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (see --help)\n", mode)
		os.Exit(2)
	}

	if err != nil {
		logger.Error().Err(err).Str("mode", mode).Msg("shutbox-mcp failed")
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("shutbox-mcp - Shut the Box move finder")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shutbox-mcp                 Run the MCP server over stdin/stdout")
	fmt.Println("  shutbox-mcp solve [file|-]  Resolve one frame of detections (JSON)")
	fmt.Println("  shutbox-mcp stream          Resolve newline-delimited frames from stdin")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  SHUTBOX_LOG_LEVEL=debug         Log level (debug, info, warn, error)")
	fmt.Println("  SHUTBOX_MAX_WIDTH=1000          Annotated image width limit")
	fmt.Println("  SHUTBOX_MAX_HEIGHT=800          Annotated image height limit")
	fmt.Println("  SHUTBOX_MARGIN=10               Text margin from the left and bottom edges")
	fmt.Println("  SHUTBOX_LINE_SPACING=25         Distance between text baselines")
	fmt.Println("  SHUTBOX_OVERLAY_OPACITY=0.5     Detection box overlay opacity")
	fmt.Println("  SHUTBOX_OPEN_COLOR=#00FF00      Open box outline color")
	fmt.Println("  SHUTBOX_CLOSED_COLOR=#FF8C00    Closed box outline color")
	fmt.Println("  SHUTBOX_DICE_COLOR=#0000FF      Dice outline color")
	fmt.Println("  SHUTBOX_TEXT_COLOR=#000000      Report text color")
}

// solveFile runs the one-shot mode on a file, or stdin when path is "-".
func solveFile(path string, w io.Writer, layout report.Layout, logger zerolog.Logger) error {
	if path == "-" {
		return runSolve(os.Stdin, w, layout, logger)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open frame: %w", err)
	}
	defer f.Close()
	return runSolve(f, w, layout, logger)
}

// runSolve decodes a single frame from r and writes its three report lines to w.
func runSolve(r io.Reader, w io.Writer, layout report.Layout, logger zerolog.Logger) error {
	var frame detection.Frame
	if err := json.NewDecoder(r).Decode(&frame); err != nil {
		return fmt.Errorf("decode frame: %w", err)
	}

	analysis := report.Analyze(frame, layout)
	config.LogRejections(logger, analysis.Rejections)

	if _, err := fmt.Fprintln(w, analysis.Report.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// runStream resolves one frame per non-empty line of r until r is exhausted,
// a line fails to decode, or ctx is cancelled. Each report is followed by a
// blank line.
func runStream(ctx context.Context, r io.Reader, w io.Writer, layout report.Layout, logger zerolog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan []byte)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	frames := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info().Int("frames", frames).Msg("stream stopped")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("read frames: %w", err)
				}
				logger.Debug().Int("frames", frames).Msg("stream finished")
				return nil
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}

			var frame detection.Frame
			if err := json.Unmarshal(line, &frame); err != nil {
				return fmt.Errorf("frame %d: decode: %w", frames+1, err)
			}
			frames++

			analysis := report.Analyze(frame, layout)
			config.LogRejections(logger.With().Int("frame", frames).Logger(), analysis.Rejections)

			if _, err := fmt.Fprintf(w, "%s\n\n", analysis.Report.String()); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}
}
