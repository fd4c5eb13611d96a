package calc

import (
	"strings"
	"unicode"
)

// Allowed contains the runes which may appear in an expression, other than
// whitespace.
const Allowed = "0123456789.+-*/%^()"

// normalize removes whitespace from src. cols holds the 1-based rune column in
// src of each rune in text, so that errors can point into the original input.
func normalize(src string) (text []rune, cols []int) {
	text = make([]rune, 0, len(src))
	cols = make([]int, 0, len(src))
	col := 0
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		text = append(text, r)
		cols = append(cols, col)
	}
	return text, cols
}

// validate checks that every rune of text is in Allowed. It runs before the
// parser so that a stray symbol fails the same way wherever it appears.
func validate(text []rune, cols []int) error {
	for i, r := range text {
		if !strings.ContainsRune(Allowed, r) {
			return &CharError{Col: cols[i], Char: r}
		}
	}
	return nil
}

// isNumRune reports whether r can be part of a number literal.
func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}
