package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoro/Daemon/pkg/logging"
)

func testRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Command{Name: "team", Description: "join a team"})
	r.Register(&Command{Name: "teamoverlay", Description: "toggle the overlay"})
	r.Register(&Command{Name: "say", Description: "chat"})
	r.Register(&Command{
		Name:        "map",
		Description: "load a map",
		Complete: func(args []string, argNum int) CompletionResult {
			if argNum != 1 {
				return nil
			}
			return CompletionResult{
				{Text: "maps/forest", Description: ""},
				{Text: "maps/tunnel", Description: ""},
			}
		},
	})
	return r
}

func TestRegistry_Lookup(t *testing.T) {
	r := testRegistry()

	require.NotNil(t, r.Lookup("team"))
	assert.NotNil(t, r.Lookup("TEAM"), "lookup is case-insensitive")
	assert.Nil(t, r.Lookup("missing"))
}

func TestRegistry_CommandNames(t *testing.T) {
	r := testRegistry()

	assert.Equal(t, []string{"map", "say", "team", "teamoverlay"}, r.CommandNames())
}

func TestRegistry_CompleteArgument_CommandNames(t *testing.T) {
	r := testRegistry()

	result := r.CompleteArgument([]string{"tea"}, 0)

	require.Len(t, result, 2)
	assert.Equal(t, "team", result[0].Text)
	assert.Equal(t, "join a team", result[0].Description)
	assert.Equal(t, "teamoverlay", result[1].Text)
}

func TestRegistry_CompleteArgument_EmptyPrefixListsAll(t *testing.T) {
	r := testRegistry()

	result := r.CompleteArgument(nil, 0)

	assert.Len(t, result, 4)
}

func TestRegistry_CompleteArgument_CaseInsensitivePrefix(t *testing.T) {
	r := testRegistry()

	result := r.CompleteArgument([]string{"TeA"}, 0)

	assert.Len(t, result, 2)
}

func TestRegistry_CompleteArgument_DelegatesToCommand(t *testing.T) {
	r := testRegistry()

	result := r.CompleteArgument([]string{"map", "ma"}, 1)

	require.Len(t, result, 2)
	assert.Equal(t, "maps/forest", result[0].Text)
}

func TestRegistry_CompleteArgument_NoCompleter(t *testing.T) {
	r := testRegistry()

	assert.Nil(t, r.CompleteArgument([]string{"say", "h"}, 1))
	assert.Nil(t, r.CompleteArgument([]string{"missing", "x"}, 1))
}

func TestRegistry_Execute(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register(&Command{
		Name: "echo",
		Handler: func(args []string) error {
			got = args
			return nil
		},
	})

	require.NoError(t, r.Execute(`echo hello "big world"`))
	assert.Equal(t, []string{"echo", "hello", "big world"}, got)

	assert.NoError(t, r.Execute("   "), "a blank statement is not an error")
	assert.Error(t, r.Execute("missing"))
}

func TestDispatcher_ExecutesStatementsInOrder(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register(&Command{
		Name: "push",
		Handler: func(args []string) error {
			got = append(got, args[1])
			return nil
		},
	})
	d := NewDispatcher(r, logging.NewDisabledLogger())

	d.BufferCommandText("push a; push b\npush c", true)

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestDispatcher_DeferredExecution(t *testing.T) {
	r := NewRegistry()
	ran := false
	r.Register(&Command{
		Name: "mark",
		Handler: func(args []string) error {
			ran = true
			return nil
		},
	})
	d := NewDispatcher(r, logging.NewDisabledLogger())

	d.BufferCommandText("mark", false)
	assert.False(t, ran)

	d.ExecuteBuffered()
	assert.True(t, ran)
}

func TestDispatcher_FailureDoesNotStopRemaining(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register(&Command{
		Name: "ok",
		Handler: func(args []string) error {
			got = append(got, "ok")
			return nil
		},
	})
	r.Register(&Command{
		Name: "boom",
		Handler: func(args []string) error {
			return errors.New("boom")
		},
	})
	d := NewDispatcher(r, logging.NewDisabledLogger())

	d.BufferCommandText("boom; ok; missing; ok", true)

	assert.Equal(t, []string{"ok", "ok"}, got)
}

func TestDispatcher_EscapeArgument(t *testing.T) {
	d := NewDispatcher(NewRegistry(), logging.NewDisabledLogger())

	assert.Equal(t, `"hello there"`, d.EscapeArgument("hello there"))
}
