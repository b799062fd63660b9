package cover

import (
	"fmt"
	"strings"
)

// Type indicates which sets of a function a cover describes.
// Its value is handed as is to the Espresso engine.
type Type int32

const (
	// None means the type was not specified.
	None = Type(0)
	// F means the cover holds the ON-set.
	F = Type(1)
	// D means the cover holds the don't-care set.
	D = Type(2)
	// R means the cover holds the OFF-set.
	R = Type(4)

	FD  = F | D
	FR  = F | R
	DR  = D | R
	FDR = F | D | R
)

// Has returns true iff all flags of flag are set in t.
func (t Type) Has(flag Type) bool {
	return t&flag == flag
}

// String returns the lowercase letters of the flags set in t, in f, d, r order,
// or "none" if no flag is set.
func (t Type) String() string {
	if t == None {
		return "none"
	}
	if t&^FDR != 0 {
		return fmt.Sprintf("Type(%d)", int32(t))
	}
	var sb strings.Builder
	if t.Has(F) {
		sb.WriteByte('f')
	}
	if t.Has(D) {
		sb.WriteByte('d')
	}
	if t.Has(R) {
		sb.WriteByte('r')
	}
	return sb.String()
}
