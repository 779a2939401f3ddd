// Package mcp exposes snaptile placement commands as MCP tools over stdio,
// relaying to the daemon through the IPC client.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/snaptile/snaptile/internal/geometry"
	"github.com/snaptile/snaptile/internal/ipc"
)

const (
	ServerName    = "snaptile"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window placement.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates an MCP server backed by the daemon's IPC socket.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "run_command",
		Description: "Run a named window-placement command against the active window (e.g. left, top-right, maximize). Pressing the same command repeatedly cycles through its preset widths.",
	}, s.handleRunCommand)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_commands",
		Description: "List the placement commands the daemon has registered, including custom commands from config.",
	}, s.handleListCommands)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List connected monitors with their full geometry and the usable area remaining after panels/docks.",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "place_window",
		Description: "Move the active window to an explicit geometry. Each axis takes either a size (width/height) or an opposite corner (x2/y2). The result is pushed out of panel-reserved space.",
	}, s.handlePlaceWindow)
}

func (s *Server) handleRunCommand(_ context.Context, _ *mcpsdk.CallToolRequest, args RunCommandInput) (*mcpsdk.CallToolResult, RunCommandOutput, error) {
	if args.Name == "" {
		return nil, RunCommandOutput{}, fmt.Errorf("name is required")
	}
	if err := s.client.RunCommand(args.Name); err != nil {
		return nil, RunCommandOutput{}, err
	}
	return nil, RunCommandOutput{Command: args.Name, Status: "ok"}, nil
}

func (s *Server) handleListCommands(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListCommandsInput) (*mcpsdk.CallToolResult, ListCommandsOutput, error) {
	names, err := s.client.ListCommands()
	if err != nil {
		return nil, ListCommandsOutput{}, err
	}
	return nil, ListCommandsOutput{Commands: names}, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	data, err := s.client.GetMonitors()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}
	return nil, ListMonitorsOutput{Monitors: data.Monitors}, nil
}

func (s *Server) handlePlaceWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args PlaceWindowInput) (*mcpsdk.CallToolResult, PlaceWindowOutput, error) {
	spec := geometry.RectSpec{
		X: args.X, Y: args.Y,
		Width: args.Width, Height: args.Height,
		X2: args.X2, Y2: args.Y2,
	}
	if err := s.client.PlaceActive(spec, args.Relative); err != nil {
		return nil, PlaceWindowOutput{}, err
	}
	return nil, PlaceWindowOutput{Status: "ok"}, nil
}
