// Package pla reads and writes covers in the Berkeley PLA format.
//
// A PLA file is a line-oriented description of a cover. Directives start
// with a dot, comments with a '#', and every other line is a cube:
//
//	# a & !b, or c
//	.i 3
//	.o 1
//	.ilb a b c
//	.ob f
//	.type fd
//	10- 1
//	--1 1
//	.e
//
// In the input part of a cube, '0' is a negative literal, '1' a positive literal
// and '-' means the variable does not appear. In the output part, '0', '1' and
// '-' respectively mean off, on and don't care for that output.
//
// Only the directives above, plus .p, are supported. Any other line is a syntax error
// and aborts the whole parse.
package pla
