package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/shutbox-mcp/internal/detection"
	"github.com/ironsheep/shutbox-mcp/internal/game"
	"github.com/ironsheep/shutbox-mcp/internal/imaging"
	"github.com/ironsheep/shutbox-mcp/internal/report"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "shutbox_resolve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Error().Err(err).Str("tool", params.Name).Msg("tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "shutbox_resolve":
		return s.handleResolve(args)
	case "shutbox_solve":
		return s.handleSolve(args)
	case "shutbox_annotate":
		return s.handleAnnotate(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating missing arguments as "{}".
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Game Handlers ===

type frameArgs struct {
	detection.Frame
}

func (s *Server) handleResolve(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	analysis := report.Analyze(a.Frame, s.layout)
	s.logRejections(analysis.Rejections)
	return analysis, nil
}

type solveArgs struct {
	Dice      []int `json:"dice"`
	OpenBoxes []int `json:"open_boxes"`
}

// SolveResult is the shutbox_solve payload.
type SolveResult struct {
	Solution game.Solution `json:"solution"`
	Lines    []string      `json:"lines"`
}

func (s *Server) handleSolve(args json.RawMessage) (interface{}, error) {
	var a solveArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Dice) > game.MaxDice {
		return nil, fmt.Errorf("at most %d dice, got %d", game.MaxDice, len(a.Dice))
	}
	seen := make(map[int]bool, len(a.OpenBoxes))
	for _, n := range a.OpenBoxes {
		if seen[n] {
			return nil, fmt.Errorf("box %d listed more than once", n)
		}
		seen[n] = true
	}

	state := game.GameState{OpenBoxes: a.OpenBoxes, DiceValues: a.Dice}
	if state.OpenBoxes == nil {
		state.OpenBoxes = []int{}
	}
	if state.DiceValues == nil {
		state.DiceValues = []int{}
	}
	solution := game.Solve(state.DiceValues, state.OpenBoxes)
	return &SolveResult{
		Solution: solution,
		Lines:    report.Format(state, solution, s.layout).Lines,
	}, nil
}

type annotateArgs struct {
	Path string `json:"path"`
	detection.Frame
}

// AnnotateToolResult is the shutbox_annotate payload.
type AnnotateToolResult struct {
	Analysis report.Analysis         `json:"analysis"`
	Image    *imaging.AnnotateResult `json:"image"`
}

func (s *Server) handleAnnotate(args json.RawMessage) (interface{}, error) {
	var a annotateArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	analysis := report.Analyze(a.Frame, s.layout)
	s.logRejections(analysis.Rejections)

	encoded, err := imaging.EncodePNG(imaging.Annotate(img, analysis, s.style))
	if err != nil {
		return nil, err
	}
	return &AnnotateToolResult{Analysis: analysis, Image: encoded}, nil
}

type imageDimensionsArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageDimensionsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return imaging.GetDimensions(s.cache, a.Path, s.layout)
}
