package console

import "unicode"

// CommonPrefixLen returns the number of leading runes shared by a and b.
// It is 0 when either string is empty or they differ at the first rune.
func CommonPrefixLen(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}

// CommonPrefixLenFold is CommonPrefixLen with per-rune case folding. It is
// used when merging candidates into an insertable prefix, so that "Foo" and
// "foo" still share a prefix. Namespace grouping deliberately uses the exact
// variant instead.
func CommonPrefixLenFold(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && unicode.ToLower(ra[n]) == unicode.ToLower(rb[n]) {
		n++
	}
	return n
}
