// Package server exposes an exec.Exec over the Model Context Protocol.
//
// Every tool of the executor is registered on an mcp.Server under its bare
// name. Handler results are rendered with exec.Result.Text; structured
// values are also attached as structured content.
// Handler errors become tool results with IsError set, so the client sees
// them rather than a protocol error.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonwraymond/brainfaq/engine"
	"github.com/jonwraymond/brainfaq/exec"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Default implementation details advertised to clients.
const (
	DefaultName    = "brainfaq-mcp"
	DefaultVersion = "1.0.0"
)

// Instructions is sent to clients during initialization.
const Instructions = "A debugger for the eight-instruction tape language. " +
	"Call load_code first, then step or run. When the status is WAITING_FOR_INPUT, " +
	"call add_input and continue. Use get_state with windowRadius to inspect memory."

// Options configures a Server.
type Options struct {
	// Name and Version identify the server to clients.
	// Default: DefaultName and DefaultVersion.
	Name    string
	Version string

	// Logger receives one record per tool call.
	// Default: discard.
	Logger *slog.Logger
}

func (o *Options) applyDefaults() {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// Server serves an executor's tools over MCP.
type Server struct {
	exec   *exec.Exec
	mcp    *mcp.Server
	logger *slog.Logger
}

// New creates a server and registers every tool of e.
func New(ctx context.Context, e *exec.Exec, opts Options) (*Server, error) {
	if e == nil {
		return nil, errors.New("server: executor is required")
	}
	opts.applyDefaults()

	s := &Server{
		exec: e,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    opts.Name,
			Version: opts.Version,
		}, &mcp.ServerOptions{Instructions: Instructions}),
		logger: opts.Logger,
	}

	tools, err := e.Tools(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	for _, t := range tools {
		tool := t.Tool
		s.mcp.AddTool(&tool, s.handler(e.ToolID(tool.Name)))
	}
	return s, nil
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run starts the executor's backends and serves t until the client
// disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	if err := s.exec.Start(ctx); err != nil {
		return err
	}
	runErr := s.mcp.Run(ctx, t)
	return errors.Join(runErr, s.exec.Close())
}

func (s *Server) handler(toolID string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			s.logger.WarnContext(ctx, "invalid tool arguments", "tool", toolID, "error", err)
			return errorResult(err), nil
		}

		res, err := s.exec.RunTool(ctx, toolID, args)
		if err != nil {
			s.logger.InfoContext(ctx, "tool failed", "tool", toolID, "duration", res.Duration, "error", err)
			return errorResult(err), nil
		}
		s.logger.DebugContext(ctx, "tool called", "tool", toolID, "duration", res.Duration)
		return toResult(res)
	}
}

// decodeArguments decodes raw tool arguments, keeping numbers as
// json.Number so large integers survive intact.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

func toResult(res exec.Result) (*mcp.CallToolResult, error) {
	text, err := res.Text()
	if err != nil {
		return nil, err
	}
	out := textResult(text)
	out.StructuredContent = res.Structured()
	return out, nil
}

func errorResult(err error) *mcp.CallToolResult {
	msg := err.Error()
	if errors.Is(err, engine.ErrParse) {
		msg = "Parser Error: " + msg
	}
	res := textResult(msg)
	res.IsError = true
	return res
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
