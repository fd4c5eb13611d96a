// Package calc implements a small floating-point calculator.
//
// Expressions are made of non-negative decimal numbers, the binary operators
// + - * / % and ^, and parentheses. "^" is exponentiation and groups to the
// right, so "2^3^2" is 512. There are no variables, functions, or unary
// operators: "-1" is an error, but "0-1" is fine. Whitespace anywhere is
// ignored, so "1 2" is the number 12.
//
// Every failure, whether a syntax error or a division by zero, evaluates to
// NaN. Eval additionally reports why.
package calc
