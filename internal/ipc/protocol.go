// Package ipc implements the newline-delimited JSON protocol between the
// snaptile CLI and the daemon, over a unix socket in the runtime dir.
package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/snaptile/snaptile/internal/geometry"
)

// CommandType represents different IPC command types.
type CommandType string

const (
	CommandRunCommand   CommandType = "RUN_COMMAND"
	CommandPlaceActive  CommandType = "PLACE_ACTIVE"
	CommandListCommands CommandType = "LIST_COMMANDS"
	CommandGetMonitors  CommandType = "GET_MONITORS"
	CommandGetStatus    CommandType = "GET_STATUS"
	CommandReload       CommandType = "RELOAD"
)

// Request represents an IPC request from client to server.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// RunCommandPayload names the placement command to execute.
type RunCommandPayload struct {
	Name string `json:"name"`
}

// PlaceActivePayload carries an explicit geometry for the active window.
// Each axis takes either a size or an opposite corner, per geometry.RectSpec.
type PlaceActivePayload struct {
	Geometry geometry.RectSpec `json:"geometry"`
	// Relative interprets coordinates relative to the owning monitor's
	// usable area instead of the root window.
	Relative bool `json:"relative,omitempty"`
}

// CommandsData lists the registered command names in order.
type CommandsData struct {
	Commands []string `json:"commands"`
}

// MonitorInfo describes a single monitor and its usable area.
type MonitorInfo struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	UsableX      int `json:"usable_x"`
	UsableY      int `json:"usable_y"`
	UsableWidth  int `json:"usable_width"`
	UsableHeight int `json:"usable_height"`
}

// MonitorsData is the data returned by GET_MONITORS.
type MonitorsData struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// StatusData is the data returned by GET_STATUS.
type StatusData struct {
	DaemonRunning bool  `json:"daemon_running"`
	MonitorCount  int   `json:"monitor_count"`
	StrutCount    int   `json:"strut_count"`
	CommandCount  int   `json:"command_count"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}

// NewOKResponse creates a successful response with optional data.
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message.
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
