// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"image/color"

	"github.com/caarlos0/env/v11"

	"github.com/ironsheep/shutbox-mcp/internal/imaging"
	"github.com/ironsheep/shutbox-mcp/internal/report"
)

// Config holds every tunable of the server and the one-shot modes.
type Config struct {
	LogLevel string `env:"SHUTBOX_LOG_LEVEL" envDefault:"info"`

	MaxWidth    int `env:"SHUTBOX_MAX_WIDTH" envDefault:"1000"`
	MaxHeight   int `env:"SHUTBOX_MAX_HEIGHT" envDefault:"800"`
	Margin      int `env:"SHUTBOX_MARGIN" envDefault:"10"`
	LineSpacing int `env:"SHUTBOX_LINE_SPACING" envDefault:"25"`

	OverlayOpacity float64 `env:"SHUTBOX_OVERLAY_OPACITY" envDefault:"0.5"`
	OpenColor      string  `env:"SHUTBOX_OPEN_COLOR" envDefault:"#00FF00"`
	ClosedColor    string  `env:"SHUTBOX_CLOSED_COLOR" envDefault:"#FF8C00"`
	DiceColor      string  `env:"SHUTBOX_DICE_COLOR" envDefault:"#0000FF"`
	TextColor      string  `env:"SHUTBOX_TEXT_COLOR" envDefault:"#000000"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no renderer can honor.
func (c Config) Validate() error {
	if c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		return fmt.Errorf("max canvas must be positive, got %dx%d", c.MaxWidth, c.MaxHeight)
	}
	if c.Margin < 0 || c.LineSpacing <= 0 {
		return fmt.Errorf("invalid text layout: margin=%d line spacing=%d", c.Margin, c.LineSpacing)
	}
	if c.OverlayOpacity < 0 || c.OverlayOpacity > 1 {
		return fmt.Errorf("overlay opacity must be within [0, 1], got %v", c.OverlayOpacity)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	return nil
}

// Layout returns the text anchor rule for the report formatter.
func (c Config) Layout() report.Layout {
	return report.Layout{
		MarginX:      c.Margin,
		MarginBottom: c.Margin,
		LineSpacing:  c.LineSpacing,
		MaxWidth:     c.MaxWidth,
		MaxHeight:    c.MaxHeight,
	}
}

// Style returns the renderer colors and overlay opacity.
func (c Config) Style() (imaging.Style, error) {
	style := imaging.Style{Opacity: c.OverlayOpacity}

	colors := []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"SHUTBOX_OPEN_COLOR", c.OpenColor, &style.OpenBox},
		{"SHUTBOX_CLOSED_COLOR", c.ClosedColor, &style.ClosedBox},
		{"SHUTBOX_DICE_COLOR", c.DiceColor, &style.Dice},
		{"SHUTBOX_TEXT_COLOR", c.TextColor, &style.Text},
	}
	for _, col := range colors {
		rgb, err := imaging.ParseHexColor(col.hex)
		if err != nil {
			return imaging.Style{}, fmt.Errorf("%s: %w", col.name, err)
		}
		*col.dst = rgb
	}
	return style, nil
}
