// Package console implements an interactive command-line input field:
// a rune buffer with a cursor, tab completion with namespace-aware
// suggestion grouping, history navigation, and command submission.
package console

import (
	"fmt"

	"github.com/peoro/Daemon/pkg/cmd"
)

// CompletionProvider produces the raw candidates for the active argument of
// a tokenized statement. It may return an empty set. *cmd.Registry is the
// canonical implementation.
type CompletionProvider interface {
	CompleteArgument(args []string, argNum int) cmd.CompletionResult
}

// CommandDispatcher is the boundary to the command execution system.
type CommandDispatcher interface {
	// BufferCommandText queues text for execution, running it immediately
	// when execNow is set.
	BufferCommandText(text string, execNow bool)
	// EscapeArgument quotes text so it survives tokenization as a single
	// argument.
	EscapeArgument(text string) string
}

// Field is a single-line editable command field. It owns the buffer, the
// cursor and the history browsing position; every operation runs to
// completion before returning. A Field is not safe for concurrent use.
type Field struct {
	text   []rune
	cursor int

	provider   CompletionProvider
	dispatcher CommandDispatcher
	hist       *History
}

// NewField creates a field over the given collaborators.
func NewField(provider CompletionProvider, dispatcher CommandDispatcher, hist *History) *Field {
	return &Field{
		provider:   provider,
		dispatcher: dispatcher,
		hist:       hist,
	}
}

// Text returns the buffer contents.
func (f *Field) Text() string {
	return string(f.text)
}

// SetText replaces the buffer and moves the cursor to the end.
func (f *Field) SetText(s string) {
	f.text = []rune(s)
	f.cursor = len(f.text)
}

// Len returns the buffer length in runes.
func (f *Field) Len() int {
	return len(f.text)
}

// Cursor returns the cursor offset, in runes, 0..Len().
func (f *Field) Cursor() int {
	return f.cursor
}

// SetCursor moves the cursor. Offsets outside 0..Len() are a caller
// contract violation and panic rather than corrupt the buffer.
func (f *Field) SetCursor(pos int) {
	if pos < 0 || pos > len(f.text) {
		panic(fmt.Sprintf("console: cursor %d out of range 0..%d", pos, len(f.text)))
	}
	f.cursor = pos
}

// Insert inserts s at the cursor and advances the cursor past it.
func (f *Field) Insert(s string) {
	runes := []rune(s)
	f.text = append(f.text[:f.cursor], append(runes, f.text[f.cursor:]...)...)
	f.cursor += len(runes)
}

// DeletePrev deletes n runes ending at the cursor. A count that is negative
// or exceeds the cursor offset panics.
func (f *Field) DeletePrev(n int) {
	if n < 0 || n > f.cursor {
		panic(fmt.Sprintf("console: cannot delete %d runes before cursor %d", n, f.cursor))
	}
	f.text = append(f.text[:f.cursor-n], f.text[f.cursor:]...)
	f.cursor -= n
}

// DeleteNext deletes the rune at the cursor, if any.
func (f *Field) DeleteNext() {
	if f.cursor < len(f.text) {
		f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
	}
}

// Clear empties the buffer.
func (f *Field) Clear() {
	f.text = f.text[:0]
	f.cursor = 0
}

// RunCommand submits the current line. Lines starting with the command
// marker ('/' or '\') are dispatched verbatim minus the marker; otherwise
// the line is dispatched as-is, or quoted behind defaultCommand when one is
// configured. The line is recorded in history and the field is cleared.
// An empty buffer is a no-op.
func (f *Field) RunCommand(defaultCommand string) {
	if len(f.text) == 0 {
		return
	}

	current := f.Text()
	switch {
	case f.text[0] == '/' || f.text[0] == '\\':
		f.dispatcher.BufferCommandText(string(f.text[1:]), true)
	case defaultCommand == "":
		f.dispatcher.BufferCommandText(current, true)
	default:
		f.dispatcher.BufferCommandText(defaultCommand+" "+f.dispatcher.EscapeArgument(current), true)
	}
	f.hist.AddLine(current)

	f.Clear()
}

// HistoryPrev replaces the buffer with the previous history entry. The
// current text is handed to the store so an in-progress line can be
// snapshotted before browsing starts.
func (f *Field) HistoryPrev() {
	f.SetText(f.hist.PrevLine(f.Text()))
}

// HistoryNext replaces the buffer with the next history entry, restoring
// the snapshotted in-progress line past the newest entry.
func (f *Field) HistoryNext() {
	f.SetText(f.hist.NextLine(f.Text()))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
