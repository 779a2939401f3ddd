// Package dbusapi exposes placement commands on the session bus so desktop
// environments and scripts can trigger them without going through the CLI.
package dbusapi

import (
	"fmt"
	"log"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

const (
	// BusName is the well-known name claimed on the session bus.
	BusName = "io.snaptile.Snaptile"
	// ObjectPath is where the command object lives.
	ObjectPath = "/io/snaptile/Snaptile"
	// InterfaceName is the exported command interface.
	InterfaceName = "io.snaptile.Snaptile"
)

// Runner executes a named placement command.
type Runner interface {
	RunCommand(name string) error
	CommandNames() []string
}

// Service is the exported D-Bus object.
type Service struct {
	conn   *dbus.Conn
	runner Runner
}

// Start connects to the session bus, exports the command interface, and
// claims the well-known name.
func Start(runner Runner) (*Service, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	s := &Service{conn: conn, runner: runner}

	if err := conn.Export(s, ObjectPath, InterfaceName); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to export command interface: %w", err)
	}

	node := &introspect.Node{
		Name: ObjectPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: InterfaceName,
				Methods: []introspect.Method{
					{
						Name: "RunCommand",
						Args: []introspect.Arg{
							{Name: "name", Type: "s", Direction: "in"},
						},
					},
					{
						Name: "ListCommands",
						Args: []introspect.Arg{
							{Name: "names", Type: "as", Direction: "out"},
						},
					},
				},
			},
		},
	}
	if err := conn.Export(introspect.NewIntrospectable(node), ObjectPath,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to export introspection data: %w", err)
	}

	reply, err := conn.RequestName(BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, fmt.Errorf("bus name %s already taken (another daemon running?)", BusName)
	}

	log.Printf("D-Bus service available as %s", BusName)
	return s, nil
}

// Close releases the bus name and connection.
func (s *Service) Close() {
	if s.conn != nil {
		s.conn.ReleaseName(BusName)
		s.conn.Close()
	}
}

// RunCommand executes a named placement command. Exported on the bus.
func (s *Service) RunCommand(name string) *dbus.Error {
	if err := s.runner.RunCommand(name); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// ListCommands returns the registered command names. Exported on the bus.
func (s *Service) ListCommands() ([]string, *dbus.Error) {
	return s.runner.CommandNames(), nil
}
