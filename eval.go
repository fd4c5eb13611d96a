package calc

import "math"

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 1000

// scale sets the precision of results to five decimal places.
const scale = 1e5

// Option is an option for evaluating an expression.
type Option interface {
	option(*parser)
}

type depthopt int

func (o depthopt) option(p *parser) {
	p.max = int(o)
}

// MaxDepth limits how deeply parentheses and exponents may nest. If n <= 0,
// there is no limit; then sufficiently deep nesting exhausts the goroutine
// stack, which terminates the program.
func MaxDepth(n int) Option {
	return depthopt(n)
}

// Eval evaluates an arithmetic expression. Whitespace is ignored; otherwise
// the expression may contain only the runes in Allowed. The result is rounded
// to five decimal places.
//
// If the expression is invalid, the result is NaN and the error is an
// InputError describing the first problem found. A NaN computed from a valid
// expression, such as "(1-2)^0.5", is returned with a nil error.
func Eval(expression string, opts ...Option) (float64, error) {
	text, cols := normalize(expression)
	if err := validate(text, cols); err != nil {
		return math.NaN(), err
	}
	p := parser{text: text, cols: cols, max: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(&p)
	}
	r, err := p.parseExpr()
	if err == nil && p.pos < len(p.text) {
		err = p.unexpected()
	}
	if err != nil {
		return math.NaN(), err
	}
	return round(r), nil
}

// Calculate evaluates an arithmetic expression with the default options. It
// returns NaN for any invalid expression.
func Calculate(expression string) float64 {
	r, _ := Eval(expression)
	return r
}

// round rounds r to five decimal places. Values too large to scale are
// returned unchanged.
func round(r float64) float64 {
	s := r * scale
	if math.IsInf(s, 0) {
		return r
	}
	return math.Round(s) / scale
}
