package console

import "strings"

// DefaultHistorySize is the entry cap used when no size is configured.
const DefaultHistorySize = 50

// History is an in-memory store of submitted lines with a browsing cursor.
// While browsing, the line that was being composed is kept as a pending
// snapshot and handed back when navigation runs past the newest entry.
// History is bounded: adding beyond the cap drops the oldest entries.
type History struct {
	lines   []string
	maxSize int
	index   int // -1 when not browsing
	pending string
}

// NewHistory creates a history holding at most maxSize entries. A
// non-positive size falls back to DefaultHistorySize.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultHistorySize
	}
	return &History{
		maxSize: maxSize,
		index:   -1,
	}
}

// Lines returns a copy of the stored entries, oldest first.
func (h *History) Lines() []string {
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// AddLine appends a submitted line, dropping surrounding whitespace and an
// earlier duplicate. Adding resets any browsing in progress.
func (h *History) AddLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	for i, existing := range h.lines {
		if existing == line {
			h.lines = append(h.lines[:i], h.lines[i+1:]...)
			break
		}
	}
	h.lines = append(h.lines, line)
	if len(h.lines) > h.maxSize {
		h.lines = h.lines[len(h.lines)-h.maxSize:]
	}

	h.index = -1
	h.pending = ""
}

// PrevLine steps toward older entries and returns the entry to display.
// The first step snapshots current as the pending in-progress line. At the
// oldest entry the position clamps. An empty history returns current
// unchanged.
func (h *History) PrevLine(current string) string {
	if len(h.lines) == 0 {
		return current
	}
	if h.index == -1 {
		h.pending = current
		h.index = len(h.lines) - 1
	} else if h.index > 0 {
		h.index--
	}
	return h.lines[h.index]
}

// NextLine steps toward newer entries. Past the newest entry it returns the
// pending snapshot and leaves browsing. When not browsing it returns
// current unchanged.
func (h *History) NextLine(current string) string {
	if h.index == -1 {
		return current
	}
	if h.index < len(h.lines)-1 {
		h.index++
		return h.lines[h.index]
	}
	h.index = -1
	pending := h.pending
	h.pending = ""
	return pending
}

// ResetNavigation abandons browsing without restoring the pending line.
func (h *History) ResetNavigation() {
	h.index = -1
	h.pending = ""
}

// Browsing reports whether the store is positioned on a history entry.
func (h *History) Browsing() bool {
	return h.index != -1
}
