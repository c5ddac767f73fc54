package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/peoro/Daemon/pkg/cmd"
)

// AutoComplete completes the argument under the cursor and returns the
// suggestion lines to display, if the completion is ambiguous. The buffer
// is edited in place: a leading command marker is inserted when missing,
// and the active argument is replaced with the longest prefix shared by all
// candidates. The marker insertion is deliberately kept even when there are
// no candidates, so a bare Tab turns the line into a command line.
func (f *Field) AutoComplete() []string {
	if len(f.text) == 0 {
		return nil
	}

	// Completion always targets a command line.
	if f.text[0] != '/' && f.text[0] != '\\' {
		f.text = append([]rune{'/'}, f.text...)
		f.cursor++
	}
	if f.cursor < 1 {
		return nil
	}
	commandText := string(f.text[1:f.cursor])

	// The buffer may hold several statements; complete the last one that
	// starts at or before the cursor.
	segStart := 0
	for {
		next := cmd.SplitCommand(commandText[segStart:])
		if segStart+next == len(commandText) {
			break
		}
		segStart += next
	}
	segment := commandText[segStart:]

	// Determine the active argument and its typed prefix. Whitespace right
	// before the cursor means the cursor sits in a fresh, empty argument.
	args := cmd.Tokenize(segment)
	argNum := len(args) - 1
	prefix := ""
	if len(args) == 0 || isSpace(f.text[f.cursor-1]) {
		argNum++
	} else {
		prefix = args[argNum]
	}

	candidates := f.provider.CompleteArgument(args, argNum)
	if len(candidates) == 0 {
		return nil
	}
	candidates = dedupeSorted(candidates)

	// Longest case-folded prefix shared by every candidate; that is what
	// gets inserted. maxWidth drives the suggestion column padding.
	first := []rune(candidates[0].Text)
	prefixSize := len(first)
	maxWidth := 0
	for _, c := range candidates {
		if l := CommonPrefixLenFold(c.Text, candidates[0].Text); l < prefixSize {
			prefixSize = l
		}
		if w := runewidth.StringWidth(c.Text); w > maxWidth {
			maxWidth = w
		}
	}
	completedArg := string(first[:prefixSize])

	// Help the user bash the Tab key, but not when completing paths.
	if len(candidates) == 1 && !f.cursorAtSpace() && !strings.HasSuffix(completedArg, "/") {
		completedArg += " "
	}

	f.DeletePrev(len([]rune(prefix)))
	f.Insert(completedArg)

	if len(candidates) < 2 {
		return nil
	}

	lines := []string{"-> " + f.Text()}
	if argNum > 1 {
		// Namespace grouping only applies to command names, not arguments.
		for _, c := range candidates {
			lines = append(lines, formatCandidate(c, maxWidth))
		}
	} else {
		lines = append(lines, groupCandidates(candidates, prefixSize, maxWidth)...)
	}
	return lines
}

func (f *Field) cursorAtSpace() bool {
	return f.cursor < len(f.text) && isSpace(f.text[f.cursor])
}

// dedupeSorted sorts candidates by replacement text and drops duplicates.
// Candidates compare by text only, so the first of several providers'
// descriptions wins.
func dedupeSorted(candidates cmd.CompletionResult) cmd.CompletionResult {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Text < candidates[j].Text
	})
	out := candidates[:0]
	for _, c := range candidates {
		if len(out) == 0 || out[len(out)-1].Text != c.Text {
			out = append(out, c)
		}
	}
	return out
}

// groupCandidates renders the suggestion lines for a sorted, deduplicated
// candidate list, collapsing runs of candidates that share a dotted
// namespace beyond prefixSize into a single "ns.{xN}" summary. Sortedness
// is a precondition: it makes namespace members adjacent, so a greedy
// single pass suffices.
func groupCandidates(candidates cmd.CompletionResult, prefixSize, maxWidth int) []string {
	var lines []string
	for i := 0; i < len(candidates); i++ {
		// Scan forward for the last candidate sharing a namespace with
		// candidates[i] that the inserted prefix does not already cover.
		last := i
		nsLen := 0
		for j := i + 1; j < len(candidates); j++ {
			p := CommonPrefixLen(candidates[i].Text, candidates[j].Text)
			ns := lastDotAtOrBefore(candidates[i].Text, p)
			if ns == p || ns < prefixSize {
				break
			}
			nsLen = ns
			last = j
		}

		if last == i {
			lines = append(lines, formatCandidate(candidates[i], maxWidth))
		} else {
			ns := string([]rune(candidates[i].Text)[:nsLen])
			lines = append(lines, fmt.Sprintf("   %s.{x%d}", ns, last-i+1))
			i = last
		}
	}
	return lines
}

// lastDotAtOrBefore returns the rune index of the last '.' at or before
// offset pos in s, or -1.
func lastDotAtOrBefore(s string, pos int) int {
	runes := []rune(s)
	if pos > len(runes)-1 {
		pos = len(runes) - 1
	}
	for i := pos; i >= 0; i-- {
		if runes[i] == '.' {
			return i
		}
	}
	return -1
}

func formatCandidate(c cmd.CompletionItem, maxWidth int) string {
	filler := strings.Repeat(" ", maxWidth-runewidth.StringWidth(c.Text))
	return fmt.Sprintf("   %s%s %s", c.Text, filler, c.Description)
}
