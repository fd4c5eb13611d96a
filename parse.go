package calc

import (
	"errors"
	"math"
	"strconv"
)

// Expr   = Term { ('+' | '-') Term }
// Term   = Factor { ('*' | '/' | '%') Factor }
// Factor = ( num | '(' Expr ')' ) [ '^' Factor ]
//
// There is no unary minus. A '-' is only ever a binary operator, so "-1" and
// "(-1)" are missing an operand.

// parser holds the state for evaluating one expression. The cursor only moves
// forward.
type parser struct {
	// text is the input with whitespace removed.
	text []rune
	// cols is the 1-based column in the original input of each rune in text.
	cols []int
	// pos is the cursor.
	pos int
	// depth is the number of factors currently being parsed.
	depth int
	// max is the depth limit, or 0 for none.
	max int
}

// peek returns the rune at the cursor without consuming it. The second result
// is false at the end of input.
func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.text) {
		return 0, false
	}
	return p.text[p.pos], true
}

// col returns the column of the rune at the cursor, or the column just past
// the last rune at the end of input.
func (p *parser) col() int {
	if p.pos < len(p.cols) {
		return p.cols[p.pos]
	}
	if len(p.cols) == 0 {
		return 1
	}
	return p.cols[len(p.cols)-1] + 1
}

// parseExpr parses and evaluates a sum or difference of terms.
func (p *parser) parseExpr() (float64, error) {
	r, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok {
			return r, nil
		}
		switch op {
		case '+':
			p.pos++
			x, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			r += x
		case '-':
			p.pos++
			x, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			r -= x
		default:
			return r, nil
		}
	}
}

// parseTerm parses and evaluates a product, quotient, or remainder of factors.
func (p *parser) parseTerm() (float64, error) {
	r, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok {
			return r, nil
		}
		col := p.col()
		switch op {
		case '*':
			p.pos++
			x, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			r *= x
		case '/':
			p.pos++
			x, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if x == 0 {
				return 0, &ZeroDivisionError{Col: col, Op: "/"}
			}
			r /= x
		case '%':
			p.pos++
			x, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if x == 0 {
				return 0, &ZeroDivisionError{Col: col, Op: "%"}
			}
			r = math.Mod(r, x)
		default:
			return r, nil
		}
	}
}

// parseFactor parses and evaluates a number or parenthesized expression,
// raised to the power of a following factor if there is a '^'.
func (p *parser) parseFactor() (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.max > 0 && p.depth > p.max {
		return 0, &DepthError{Col: p.col(), Max: p.max}
	}
	r, ok := p.peek()
	if !ok {
		return 0, &EmptyExpressionError{Col: p.col()}
	}
	var base float64
	if r == '(' {
		open := p.col()
		p.pos++
		x, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		end, ok := p.peek()
		if !ok {
			return 0, &BracketError{Col: open, Left: "("}
		}
		if end != ')' {
			return 0, p.unexpected()
		}
		p.pos++
		base = x
	} else {
		x, err := p.parseNum()
		if err != nil {
			return 0, err
		}
		base = x
	}
	if r, ok := p.peek(); ok && r == '^' {
		p.pos++
		// Recursing through parseFactor makes ^ right-associative.
		exp, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

// parseNum consumes the longest run of digits and dots at the cursor and
// parses it as a number. The cursor must not be at the end of input.
func (p *parser) parseNum() (float64, error) {
	start := p.pos
	for p.pos < len(p.text) && isNumRune(p.text[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return 0, &EmptyExpressionError{Col: p.col(), End: string(p.text[p.pos])}
	}
	s := string(p.text[start:p.pos])
	x, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &NumberError{Col: p.cols[start], Text: s}
	}
	// Out of range literals are ±Inf or 0, as ParseFloat reports them.
	return x, nil
}

// unexpected returns an error for input at the cursor that cannot follow a
// complete expression. The cursor must not be at the end of input.
func (p *parser) unexpected() error {
	if p.text[p.pos] == ')' {
		return &BracketError{Col: p.col(), Right: ")"}
	}
	return &TrailingError{Col: p.col(), Text: string(p.text[p.pos:])}
}
