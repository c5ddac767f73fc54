package events

// Event types published on the console bus.
const (
	TypeConsoleOutput    = "console.output"
	TypeCommandSubmitted = "command.submitted"
)

// ConsoleOutputEvent is a single line destined for the output view.
type ConsoleOutputEvent struct {
	Line string
}

// CommandSubmittedEvent records a line the user submitted.
type CommandSubmittedEvent struct {
	Text string
}
