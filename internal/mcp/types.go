package mcp

import "github.com/snaptile/snaptile/internal/ipc"

// RunCommandInput is the input schema for the run_command tool.
type RunCommandInput struct {
	Name string `json:"name" jsonschema:"required,The placement command to run (see list_commands)"`
}

// RunCommandOutput confirms execution.
type RunCommandOutput struct {
	Command string `json:"command"`
	Status  string `json:"status"`
}

// ListCommandsInput takes no arguments.
type ListCommandsInput struct{}

// ListCommandsOutput lists the registered command names in order.
type ListCommandsOutput struct {
	Commands []string `json:"commands"`
}

// ListMonitorsInput takes no arguments.
type ListMonitorsInput struct{}

// ListMonitorsOutput reports monitor geometry and usable areas.
type ListMonitorsOutput struct {
	Monitors []ipc.MonitorInfo `json:"monitors"`
}

// PlaceWindowInput moves the active window to an explicit geometry. Each
// axis takes either a size (width/height) or an opposite corner (x2/y2),
// never both.
type PlaceWindowInput struct {
	X        int  `json:"x" jsonschema:"X coordinate of the left edge"`
	Y        int  `json:"y" jsonschema:"Y coordinate of the top edge"`
	Width    *int `json:"width,omitempty" jsonschema:"Width in pixels; mutually exclusive with x2"`
	Height   *int `json:"height,omitempty" jsonschema:"Height in pixels; mutually exclusive with y2"`
	X2       *int `json:"x2,omitempty" jsonschema:"X coordinate of the right edge; mutually exclusive with width"`
	Y2       *int `json:"y2,omitempty" jsonschema:"Y coordinate of the bottom edge; mutually exclusive with height"`
	Relative bool `json:"relative,omitempty" jsonschema:"Interpret coordinates relative to the monitor's usable area"`
}

// PlaceWindowOutput confirms placement.
type PlaceWindowOutput struct {
	Status string `json:"status"`
}
