// Package cover describes two-level boolean covers in positional notation.
//
// A cover is a table of cubes (also called product terms or implicants).
// Each cube is a row made of one cell per input variable followed by one cell
// per output variable. Cells are small integer codes rather than characters:
//
//	input cells:  0 unset, 1 literal false, 2 literal true, 3 don't care
//	output cells: 0 off, 1 on, 2 don't care
//
// The input code 0 is never written by a well-formed producer; it marks an
// empty position. Output code 0 is a legitimate value. Both encodings are
// what the Espresso engine and the PLA codec expect, so they are kept as is.
//
// For instance, the single-output function a & !b over inputs a, b is the
// one-cube cover:
//
//	c, _ := cover.New(1, 2, 1)
//	_ = c.SetInput(0, 0, cover.InputOne)
//	_ = c.SetInput(0, 1, cover.InputZero)
//	_ = c.SetOutput(0, 0, cover.OutputOn)
//
// The dimensions of a cover never change once it is created.
package cover
