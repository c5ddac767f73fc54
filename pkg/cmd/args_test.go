package cmd

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"single word", "status", []string{"status"}},
		{"multiple words", "connect server1 28960", []string{"connect", "server1", "28960"}},
		{"collapsed spaces", "a   b\t c", []string{"a", "b", "c"}},
		{"quoted argument", `say "hello there"`, []string{"say", "hello there"}},
		{"empty quoted argument", `set name ""`, []string{"set", "name", ""}},
		{"escaped quote", `say \"hi\"`, []string{"say", `"hi"`}},
		{"escaped space", `open my\ file`, []string{"open", "my file"}},
		{"backslash in quotes", `say "a\\b"`, []string{"say", `a\b`}},
		{"unterminated quote runs to end", `say "hello there`, []string{"say", "hello there"}},
		{"quote glues tokens", `ec"ho" hi`, []string{"echo", "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no separator", "echo hi", 7},
		{"semicolon", "echo hi; status", 8},
		{"newline", "echo hi\nstatus", 8},
		{"leading separator", ";status", 1},
		{"quoted semicolon ignored", `echo "a;b"; status`, 11},
		{"escaped semicolon ignored", `echo a\;b; status`, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitCommand(tt.text); got != tt.want {
				t.Errorf("SplitCommand(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "status", []string{"status"}},
		{"several", "a; b ;; c", []string{"a", "b", "c"}},
		{"newlines", "a\nb\n", []string{"a", "b"}},
		{"quoted separator kept", `say "a;b"`, []string{`say "a;b"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Statements(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Statements(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"plain", "plain"},
		{"", `""`},
		{"hello there", `"hello there"`},
		{`with "quote"`, `"with \"quote\""`},
		{`back\slash`, `"back\\slash"`},
		{"a;b", `"a;b"`},
	}

	for _, tt := range tests {
		if got := Escape(tt.text); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

// Escape must produce text that tokenizes back to the single original
// argument.
func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"hello there",
		`with "quote"`,
		`back\slash`,
		"semi;colon",
		"",
	}

	for _, in := range inputs {
		args := Tokenize("cmd " + Escape(in))
		if len(args) != 2 || args[1] != in {
			t.Errorf("round trip of %q via %q gave %#v", in, Escape(in), args)
		}
	}
}
