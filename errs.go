package calc

import (
	"errors"
	"strconv"
)

// Kind classifies the reason an expression failed to evaluate.
type Kind int8

const (
	// KindNone is the kind of a nil error or an error not produced by
	// evaluating an expression.
	KindNone Kind = iota
	// KindSyntax indicates a malformed number, a missing operand, or input
	// left over after a complete expression.
	KindSyntax
	// KindUnexpectedChar indicates a character outside the expression
	// alphabet.
	KindUnexpectedChar
	// KindUnbalanced indicates a parenthesis without its partner.
	KindUnbalanced
	// KindDivByZero indicates division by zero.
	KindDivByZero
	// KindModByZero indicates a remainder with a zero modulus.
	KindModByZero
	// KindTooDeep indicates nesting beyond the configured depth limit.
	KindTooDeep
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error, counting whitespace.
	Pos() int
	// Kind returns the category of the error.
	Kind() Kind
}

// KindOf returns the kind of the first InputError in err's chain, or KindNone
// if there is none.
func KindOf(err error) Kind {
	var ie InputError
	if errors.As(err, &ie) {
		return ie.Kind()
	}
	return KindNone
}

// CharError is an error indicating a rune which can never appear in an
// expression. It implements InputError.
type CharError struct {
	// Col is the position of the rune.
	Col int
	// Char is the offending rune.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int   { return err.Col }
func (err *CharError) Kind() Kind { return KindUnexpectedChar }

// NumberError is an error indicating a run of digits and dots that does not
// form a number, e.g. "1..2". It implements InputError.
type NumberError struct {
	// Col is the position of the first rune of the literal.
	Col int
	// Text is the literal.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int   { return err.Col }
func (err *NumberError) Kind() Kind { return KindSyntax }

// EmptyExpressionError is an error indicating a missing operand.
type EmptyExpressionError struct {
	// Col is the position of the rune that ended the subexpression.
	Col int
	// End is the rune that ended the subexpression, or the empty string at the
	// end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int   { return err.Col }
func (err *EmptyExpressionError) Kind() Kind { return KindSyntax }

// TrailingError is an error indicating input after a complete expression that
// cannot continue it, e.g. the 3 in "(2)3".
type TrailingError struct {
	// Col is the position of the first unconsumed rune.
	Col int
	// Text is the unconsumed input with whitespace removed.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "expected operator before "+strconv.Quote(err.Text))
}

func (err *TrailingError) Pos() int   { return err.Col }
func (err *TrailingError) Kind() Kind { return KindSyntax }

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket, or of the end of input
	// for an unclosed one.
	Col int
	// Left is the opening bracket, if any.
	Left string
	// Right is the closing bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int   { return err.Col }
func (err *BracketError) Kind() Kind { return KindUnbalanced }

// ZeroDivisionError is an error indicating a division or remainder by zero. It
// implements InputError.
type ZeroDivisionError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator, either "/" or "%".
	Op string
}

func (err *ZeroDivisionError) Error() string {
	if err.Op == "%" {
		return errpos(err.Col, "modulus by zero")
	}
	return errpos(err.Col, "division by zero")
}

func (err *ZeroDivisionError) Pos() int { return err.Col }

func (err *ZeroDivisionError) Kind() Kind {
	if err.Op == "%" {
		return KindModByZero
	}
	return KindDivByZero
}

// DepthError is an error indicating an expression nested more deeply than the
// evaluator allows. It implements InputError.
type DepthError struct {
	// Col is the position of the rune that exceeded the limit.
	Col int
	// Max is the limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int   { return err.Col }
func (err *DepthError) Kind() Kind { return KindTooDeep }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ZeroDivisionError)(nil)
	_ InputError = (*DepthError)(nil)
)
