package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/peoro/Daemon/pkg/logging"
)

// CompletionItem is one completion candidate: the text that would replace
// the active argument plus a short description for the suggestion listing.
type CompletionItem struct {
	Text        string
	Description string
}

// CompletionResult is the raw candidate set returned by a completer. It may
// contain duplicates when several sources contribute; the console
// deduplicates before display.
type CompletionResult []CompletionItem

// HandlerFunc executes a tokenized command.
type HandlerFunc func(args []string) error

// CompleteFunc produces candidates for argument argNum of a tokenized
// command. args[argNum] holds the partial text typed so far, when present.
type CompleteFunc func(args []string, argNum int) CompletionResult

// Command is a registered console command.
type Command struct {
	Name        string
	Description string
	Handler     HandlerFunc
	Complete    CompleteFunc
}

// Registry maps command names to their handlers and completers.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds a command. A command with the same name is replaced.
func (r *Registry) Register(c *Command) {
	r.commands[strings.ToLower(c.Name)] = c
}

// Lookup returns the command registered under name, or nil. Names are
// case-insensitive.
func (r *Registry) Lookup(name string) *Command {
	return r.commands[strings.ToLower(name)]
}

// CommandNames returns all registered command names, sorted.
func (r *Registry) CommandNames() []string {
	names := make([]string, 0, len(r.commands))
	for _, c := range r.commands {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// CompleteArgument produces the candidates for argument argNum of the given
// tokenized statement. Argument 0 completes command names by prefix; later
// arguments are delegated to the command's own completer.
func (r *Registry) CompleteArgument(args []string, argNum int) CompletionResult {
	if argNum <= 0 {
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		return r.completeNames(prefix)
	}
	if len(args) == 0 {
		return nil
	}
	c := r.Lookup(args[0])
	if c == nil || c.Complete == nil {
		return nil
	}
	return c.Complete(args, argNum)
}

func (r *Registry) completeNames(prefix string) CompletionResult {
	var result CompletionResult
	lower := strings.ToLower(prefix)
	for _, name := range r.CommandNames() {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			result = append(result, CompletionItem{
				Text:        name,
				Description: r.Lookup(name).Description,
			})
		}
	}
	return result
}

// Execute tokenizes and runs a single statement.
func (r *Registry) Execute(statement string) error {
	args := Tokenize(statement)
	if len(args) == 0 {
		return nil
	}
	c := r.Lookup(args[0])
	if c == nil {
		return fmt.Errorf("unknown command %q", args[0])
	}
	if c.Handler == nil {
		return nil
	}
	return c.Handler(args)
}

// Dispatcher buffers submitted command text and executes it statement by
// statement through a registry.
type Dispatcher struct {
	registry *Registry
	pending  []string
	log      logging.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry, log logging.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		log:      log,
	}
}

// BufferCommandText appends the statements of text to the pending buffer
// and, when execNow is set, drains the buffer immediately.
func (d *Dispatcher) BufferCommandText(text string, execNow bool) {
	d.pending = append(d.pending, Statements(text)...)
	if execNow {
		d.ExecuteBuffered()
	}
}

// ExecuteBuffered runs every pending statement in order. Failures are
// logged and do not stop the remaining statements.
func (d *Dispatcher) ExecuteBuffered() {
	for len(d.pending) > 0 {
		stmt := d.pending[0]
		d.pending = d.pending[1:]
		if err := d.registry.Execute(stmt); err != nil {
			d.log.Warn("command failed", "statement", stmt, "error", err)
		}
	}
}

// EscapeArgument quotes text so it survives tokenization as one argument.
func (d *Dispatcher) EscapeArgument(text string) string {
	return Escape(text)
}
