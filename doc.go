// Package calc implements a floating-point calculator for infix arithmetic.
//
// Expressions are made of decimal numbers, the binary operators + - * / and ^,
// unary + and -, and parentheses. "2^3^2" is "2^(3^2)", and unary operators
// bind tighter than anything else, so "-2^2" is "(-2)^2".
//
// Evaluation is a pipeline of four independent stages: Tokenize, Validate,
// ToPostfix and Evaluate. Calculate runs all four and reports a Result with a
// trace of each stage. Nothing is shared between calls, so any number of
// expressions may be calculated concurrently; CalculateAll does so for a
// batch.
package calc
