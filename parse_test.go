package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newParser creates a parser over src with no depth limit.
func newParser(src string) *parser {
	text, cols := normalize(src)
	return &parser{text: text, cols: cols}
}

func TestParseLevels(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		parse func(*parser) (float64, error)
		want  float64
		pos   int
	}{
		{"expr-all", "1+2*3", (*parser).parseExpr, 7, 5},
		{"term-stops-at-plus", "2*3+1", (*parser).parseTerm, 6, 3},
		{"factor-stops-at-mul", "2^2*3", (*parser).parseFactor, 4, 3},
		{"factor-paren", "(1+1)^2", (*parser).parseFactor, 4, 7},
		{"factor-num", "12.5+", (*parser).parseFactor, 12.5, 4},
		{"expr-stops-at-close", "1+2)", (*parser).parseExpr, 3, 3},
		{"term-left-assoc", "8/2/2", (*parser).parseTerm, 2, 5},
		{"expr-left-assoc", "8-2-2", (*parser).parseExpr, 4, 5},
		{"factor-right-assoc", "2^3^2", (*parser).parseFactor, 512, 5},
		{"mod-sign", "0-7%3", (*parser).parseExpr, -1, 5},
		{"mod-dividend-sign", "7%(0-3)", (*parser).parseTerm, 1, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newParser(c.src)
			r, err := c.parse(p)
			require.NoError(t, err)
			assert.Equal(t, c.want, r)
			assert.Equal(t, c.pos, p.pos)
			assert.Zero(t, p.depth)
		})
	}
}

func TestParseNoRounding(t *testing.T) {
	p := newParser("0.1+0.2")
	r, err := p.parseExpr()
	require.NoError(t, err)
	a, b := 0.1, 0.2
	assert.Equal(t, a+b, r)
	assert.NotEqual(t, 0.3, r)
}

func TestParseDepthRestored(t *testing.T) {
	p := newParser("((1)+(2^(3)))")
	p.max = 5
	r, err := p.parseExpr()
	require.NoError(t, err)
	assert.Equal(t, 9.0, r)
	assert.Zero(t, p.depth)

	p = newParser("((1)+(2^(3)))")
	p.max = 4
	_, err = p.parseExpr()
	assert.IsType(t, &DepthError{}, err)
	assert.Zero(t, p.depth)
}

func TestParseNegativeZeroDivisor(t *testing.T) {
	p := newParser("1/(0*(0-1))")
	_, err := p.parseExpr()
	assert.Equal(t, &ZeroDivisionError{Col: 2, Op: "/"}, err)
}

func TestParseNumRange(t *testing.T) {
	p := newParser("0." + strings.Repeat("0", 400) + "1")
	r, err := p.parseNum()
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
	assert.False(t, math.Signbit(r))
}

func TestUnexpected(t *testing.T) {
	p := newParser("1 )")
	p.pos = 1
	assert.Equal(t, &BracketError{Col: 3, Right: ")"}, p.unexpected())
	p = newParser("(2) 3 4")
	p.pos = 3
	assert.Equal(t, &TrailingError{Col: 5, Text: "34"}, p.unexpected())
}
