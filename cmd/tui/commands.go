package tui

import (
	"fmt"
	"strings"

	"github.com/peoro/Daemon/pkg/cmd"
	"github.com/peoro/Daemon/pkg/events"
)

// registerBuiltins populates the registry with the demo command set. The
// dotted settings exercise namespace grouping in the completion listing.
func registerBuiltins(a *App, registry *cmd.Registry) {
	emit := func(line string) {
		a.bus.Publish(events.TypeConsoleOutput, events.ConsoleOutputEvent{Line: line})
	}

	registry.Register(&cmd.Command{
		Name:        "help",
		Description: "list available commands",
		Handler: func(args []string) error {
			for _, name := range registry.CommandNames() {
				emit(fmt.Sprintf("%-18s %s", name, registry.Lookup(name).Description))
			}
			return nil
		},
	})
	registry.Register(&cmd.Command{
		Name:        "echo",
		Description: "print its arguments",
		Handler: func(args []string) error {
			emit(strings.Join(args[1:], " "))
			return nil
		},
	})
	registry.Register(&cmd.Command{
		Name:        "say",
		Description: "send a chat line",
		Handler: func(args []string) error {
			emit("say: " + strings.Join(args[1:], " "))
			return nil
		},
	})
	registry.Register(&cmd.Command{
		Name:        "clear",
		Description: "clear the output view",
		Handler: func(args []string) error {
			a.clearOutput()
			return nil
		},
	})
	registry.Register(&cmd.Command{
		Name:        "quit",
		Description: "leave the console",
		Handler: func(args []string) error {
			a.requestQuit()
			return nil
		},
	})

	// A handful of dotted settings in the spirit of engine cvars. Reading
	// takes no argument, writing takes one; completion on the value
	// position offers the current value.
	settings := map[string]string{
		"cg.crosshair":   "1",
		"cg.fov":         "90",
		"cg.thirdperson": "0",
		"cl.maxpackets":  "60",
		"cl.timeout":     "30",
		"con.height":     "10",
	}
	for name := range settings {
		name := name
		registry.Register(&cmd.Command{
			Name:        name,
			Description: "console setting",
			Handler: func(args []string) error {
				if len(args) > 1 {
					settings[name] = args[1]
				}
				emit(fmt.Sprintf("%s = %s", name, settings[name]))
				return nil
			},
			Complete: func(args []string, argNum int) cmd.CompletionResult {
				if argNum != 1 {
					return nil
				}
				return cmd.CompletionResult{{Text: settings[name], Description: "current value"}}
			},
		})
	}
}
