// Package tui hosts the demo console application: an output view and an
// input view wired together over the event bus.
package tui

import (
	"fmt"

	"github.com/awesome-gocui/gocui"

	"github.com/peoro/Daemon/cmd/tui/shell"
	"github.com/peoro/Daemon/pkg/cmd"
	"github.com/peoro/Daemon/pkg/config"
	"github.com/peoro/Daemon/pkg/console"
	"github.com/peoro/Daemon/pkg/events"
	"github.com/peoro/Daemon/pkg/logging"
)

const (
	outputView = "output"
	inputView  = "input"
)

// App is the interactive console application.
type App struct {
	gui    *gocui.Gui
	editor *shell.FieldEditor
	bus    events.EventBus
	log    logging.Logger
	cfg    *config.Config
}

// New assembles the application: registry, dispatcher, history, field,
// editor and gui.
func New(cfg *config.Config, log logging.Logger) (*App, error) {
	gui, err := gocui.NewGui(gocui.OutputNormal, true)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gui: %w", err)
	}

	bus := events.NewEventBus()
	registry := cmd.NewRegistry()
	dispatcher := cmd.NewDispatcher(registry, log)
	hist := console.NewHistory(cfg.HistorySize)
	field := console.NewField(registry, dispatcher, hist)

	app := &App{
		gui:    gui,
		editor: shell.New(field, cfg.DefaultCommand, bus),
		bus:    bus,
		log:    log,
		cfg:    cfg,
	}
	registerBuiltins(app, registry)

	bus.Subscribe(events.TypeConsoleOutput, func(event interface{}) {
		if e, ok := event.(events.ConsoleOutputEvent); ok {
			app.appendOutput(e.Line)
		}
	})
	bus.Subscribe(events.TypeCommandSubmitted, func(event interface{}) {
		if e, ok := event.(events.CommandSubmittedEvent); ok {
			log.Debug("command submitted", "text", e.Text)
		}
	})

	gui.Cursor = true
	gui.SetManagerFunc(app.layout)
	if err := gui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		gui.Close()
		return nil, fmt.Errorf("failed to bind quit key: %w", err)
	}

	return app, nil
}

// Start runs the main loop until quit.
func (a *App) Start() error {
	if err := a.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// Stop tears the gui down.
func (a *App) Stop() {
	a.gui.Close()
}

func (a *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(outputView, 0, 0, maxX-1, maxY-4, 0); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = " output "
		v.Autoscroll = true
		v.Wrap = true
	}

	if v, err := g.SetView(inputView, 0, maxY-3, maxX-1, maxY-1, 0); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = " " + a.cfg.Prompt + " "
		v.Editable = true
		v.Editor = a.editor
		if _, err := g.SetCurrentView(inputView); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) appendOutput(line string) {
	a.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View(outputView)
		if err != nil {
			return nil
		}
		fmt.Fprintln(v, line)
		return nil
	})
}

func (a *App) clearOutput() {
	a.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View(outputView)
		if err != nil {
			return nil
		}
		v.Clear()
		return nil
	})
}

func (a *App) requestQuit() {
	a.gui.Update(func(g *gocui.Gui) error {
		return gocui.ErrQuit
	})
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
