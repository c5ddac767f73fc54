// Package cmd implements the console command grammar: tokenization of a
// command line into arguments, statement splitting, argument quoting, and a
// registry that maps command names to handlers and argument completers.
package cmd

import "strings"

// separatorIndex returns the byte index of the first unquoted, unescaped
// statement separator (';' or newline) in text, or -1.
func separatorIndex(text string) int {
	inQuote := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inQuote = !inQuote
		case !inQuote && (c == ';' || c == '\n'):
			return i
		}
	}
	return -1
}

// SplitCommand returns the byte offset where the statement after the first
// statement separator begins, or len(text) when text holds a single
// statement.
func SplitCommand(text string) int {
	if i := separatorIndex(text); i >= 0 {
		return i + 1
	}
	return len(text)
}

// Statements splits text into its individual statements, dropping empty
// ones. Whitespace around each statement is trimmed.
func Statements(text string) []string {
	var out []string
	for len(text) > 0 {
		i := separatorIndex(text)
		var stmt string
		if i < 0 {
			stmt, text = text, ""
		} else {
			stmt, text = text[:i], text[i+1:]
		}
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// Tokenize parses one statement into its ordered arguments. Arguments are
// separated by whitespace; double quotes group an argument, and a backslash
// escapes the following character both inside and outside quotes. An
// unterminated quote runs to the end of the statement.
func Tokenize(text string) []string {
	var args []string
	var cur strings.Builder
	inQuote := false
	inToken := false
	escaped := false

	for _, r := range text {
		switch {
		case escaped:
			cur.WriteRune(r)
			inToken = true
			escaped = false
		case r == '\\':
			escaped = true
			inToken = true
		case r == '"':
			inQuote = !inQuote
			inToken = true
		case !inQuote && (r == ' ' || r == '\t'):
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args
}

// Escape quotes text so that Tokenize yields it back as a single argument.
// Text without special characters is returned unchanged.
func Escape(text string) string {
	if text != "" && !strings.ContainsAny(text, " \t\n\";\\") {
		return text
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range text {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
