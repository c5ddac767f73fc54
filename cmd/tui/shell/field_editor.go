// Package shell binds a console.Field to a gocui view: it routes
// keystrokes to the field and renders the buffer with horizontal
// scrolling.
package shell

import (
	"strings"

	"github.com/awesome-gocui/gocui"

	"github.com/peoro/Daemon/pkg/console"
	"github.com/peoro/Daemon/pkg/events"
)

// FieldEditor implements gocui.Editor over a console.Field. Completion
// suggestions and submitted commands are published on the event bus; the
// field stays the single owner of buffer and cursor.
type FieldEditor struct {
	field          *console.Field
	defaultCommand string
	bus            events.Publisher

	scrollOffset int
}

// New creates an editor over the given field.
func New(field *console.Field, defaultCommand string, bus events.Publisher) *FieldEditor {
	return &FieldEditor{
		field:          field,
		defaultCommand: defaultCommand,
		bus:            bus,
	}
}

// Field returns the underlying console field.
func (e *FieldEditor) Field() *console.Field {
	return e.field
}

// Edit handles one keystroke. A nil view skips rendering, which keeps the
// key routing testable without a running gui.
func (e *FieldEditor) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	switch {
	case key == gocui.KeyTab:
		for _, line := range e.field.AutoComplete() {
			e.emit(line)
		}
	case key == gocui.KeyEnter:
		e.submit()
	case key == gocui.KeyArrowUp:
		e.field.HistoryPrev()
	case key == gocui.KeyArrowDown:
		e.field.HistoryNext()
	case key == gocui.KeyArrowLeft:
		if c := e.field.Cursor(); c > 0 {
			e.field.SetCursor(c - 1)
		}
	case key == gocui.KeyArrowRight:
		if c := e.field.Cursor(); c < e.field.Len() {
			e.field.SetCursor(c + 1)
		}
	case key == gocui.KeyBackspace || key == gocui.KeyBackspace2:
		if e.field.Cursor() > 0 {
			e.field.DeletePrev(1)
		}
	case key == gocui.KeyDelete:
		e.field.DeleteNext()
	case key == gocui.KeyCtrlA || key == gocui.KeyHome:
		e.field.SetCursor(0)
	case key == gocui.KeyCtrlE || key == gocui.KeyEnd:
		e.field.SetCursor(e.field.Len())
	case key == gocui.KeySpace:
		e.field.Insert(" ")
	case ch != 0 && !isUnboundSpecialKey(key):
		e.field.Insert(string(ch))
	}

	if v != nil {
		e.render(v)
	}
}

// submit publishes the line and runs it through the dispatcher. Blank
// lines are dropped.
func (e *FieldEditor) submit() {
	text := e.field.Text()
	if strings.TrimSpace(text) == "" {
		e.field.Clear()
		return
	}
	e.bus.Publish(events.TypeCommandSubmitted, events.CommandSubmittedEvent{Text: text})
	e.emit("] " + text)
	e.field.RunCommand(e.defaultCommand)
}

func (e *FieldEditor) emit(line string) {
	e.bus.Publish(events.TypeConsoleOutput, events.ConsoleOutputEvent{Line: line})
}

// render writes the visible slice of the buffer into the view, keeping the
// cursor on screen.
func (e *FieldEditor) render(v *gocui.View) {
	width, _ := v.Size()
	if width <= 0 {
		return
	}

	cursor := e.field.Cursor()
	if cursor < e.scrollOffset {
		e.scrollOffset = cursor
	} else if cursor >= e.scrollOffset+width-1 {
		e.scrollOffset = cursor - width + 2
		if e.scrollOffset < 0 {
			e.scrollOffset = 0
		}
	}

	visible := []rune(e.field.Text())
	if e.scrollOffset > 0 && e.scrollOffset < len(visible) {
		visible = visible[e.scrollOffset:]
	} else if e.scrollOffset >= len(visible) {
		visible = nil
	}
	if len(visible) > width {
		visible = visible[:width]
	}

	v.Clear()
	v.Write([]byte(string(visible)))

	cursorX := cursor - e.scrollOffset
	if cursorX < 0 {
		cursorX = 0
	} else if cursorX >= width {
		cursorX = width - 1
	}
	v.SetCursor(cursorX, 0)
}

// isUnboundSpecialKey reports keys the editor deliberately ignores.
func isUnboundSpecialKey(key gocui.Key) bool {
	switch key {
	case gocui.KeyF1, gocui.KeyF2, gocui.KeyF3, gocui.KeyF4,
		gocui.KeyF5, gocui.KeyF6, gocui.KeyF7, gocui.KeyF8,
		gocui.KeyF9, gocui.KeyF10, gocui.KeyF11, gocui.KeyF12:
		return true
	case gocui.KeyPgup, gocui.KeyPgdn, gocui.KeyInsert:
		return true
	default:
		return false
	}
}
