// Package check verifies that a minimized cover is consistent with the cover it was computed from.
//
// For each output, two properties are checked:
//
//   - no cube of the minimized cover meets the OFF-set of the original function;
//   - every point of the ON-set of the original function is covered by the minimized cover
//     or by the don't-care set.
//
// Depending on the cover type, the ON-set and the OFF-set are either given explicitly by the
// original cover or implicitly, as the complement of the other sets.
// Containment queries are solved by gophersat: a cube c is covered by a set of cubes S
// iff c & !s1 & ... & !sn is not satisfiable, and each !si is a single clause.
package check

import (
	"errors"
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/crillab/gopherpla/cover"
)

// ErrMismatch is returned when a minimized cover does not describe the original function.
var ErrMismatch = errors.New("covers do not match")

// A cube is the input part of a row, along with the row's index in its cover.
type cube struct {
	idx    int
	inputs []int
}

// empty returns true iff some input of c accepts no value, i.e c contains no point at all.
func (c cube) empty() bool {
	for _, val := range c.inputs {
		if val&cover.InputDontCare == 0 {
			return true
		}
	}
	return false
}

// meets returns true iff c and c2 share at least a point.
func (c cube) meets(c2 cube) bool {
	for i, val := range c.inputs {
		if val&c2.inputs[i] == 0 {
			return false
		}
	}
	return true
}

// lits returns the literals of c as CNF ints, var i+1 standing for input i.
// If neg is true, literals are negated.
func (c cube) lits(neg bool) []int {
	sign := 1
	if neg {
		sign = -1
	}
	var res []int
	for i, val := range c.inputs {
		switch val & cover.InputDontCare {
		case cover.InputZero:
			res = append(res, -sign*(i+1))
		case cover.InputOne:
			res = append(res, sign*(i+1))
		}
	}
	return res
}

// covered returns true iff all points of c belong to at least one cube in set.
func covered(c cube, set []cube) bool {
	cnf := make([][]int, 0, len(c.inputs)+len(set))
	for _, lit := range c.lits(false) {
		cnf = append(cnf, []int{lit})
	}
	for _, s := range set {
		clause := s.lits(true)
		if len(clause) == 0 { // s is the whole space
			return true
		}
		cnf = append(cnf, clause)
	}
	pb := solver.ParseSlice(cnf)
	return solver.New(pb).Solve() == solver.Unsat
}

// rows returns the non-empty cubes of table whose given output has the given value.
func rows(table []int, nbInputs, nbOutputs, output, value int) []cube {
	rowLen := nbInputs + nbOutputs
	var res []cube
	for i := 0; i*rowLen < len(table); i++ {
		row := table[i*rowLen : (i+1)*rowLen]
		if row[nbInputs+output] != value {
			continue
		}
		c := cube{idx: i, inputs: row[:nbInputs]}
		if !c.empty() {
			res = append(res, c)
		}
	}
	return res
}

// Verify checks that minimized describes the same function as original, which was given with the type typ.
// cover.None stands for cover.FD.
func Verify(original, minimized cover.Interface, typ cover.Type) error {
	if typ == cover.None {
		typ = cover.FD
	}
	if !typ.Has(cover.F) && !typ.Has(cover.R) {
		return fmt.Errorf("invalid cover type %v", typ)
	}
	nbInputs, nbOutputs := original.NbInputs(), original.NbOutputs()
	if minimized.NbInputs() != nbInputs || minimized.NbOutputs() != nbOutputs {
		return fmt.Errorf("%w: expected %d inputs and %d outputs, got %d and %d",
			ErrMismatch, nbInputs, nbOutputs, minimized.NbInputs(), minimized.NbOutputs())
	}
	origTable, err := original.Snapshot()
	if err != nil {
		return fmt.Errorf("could not read original cover: %w", err)
	}
	minTable, err := minimized.Snapshot()
	if err != nil {
		return fmt.Errorf("could not read minimized cover: %w", err)
	}
	for out := 0; out < nbOutputs; out++ {
		var on, dc, off []cube
		if typ.Has(cover.F) {
			on = rows(origTable, nbInputs, nbOutputs, out, cover.OutputOn)
		}
		if typ.Has(cover.D) {
			dc = rows(origTable, nbInputs, nbOutputs, out, cover.OutputDontCare)
		}
		if typ.Has(cover.R) {
			off = rows(origTable, nbInputs, nbOutputs, out, cover.OutputOff)
		}
		res := rows(minTable, nbInputs, nbOutputs, out, cover.OutputOn)
		if err := checkOff(res, on, dc, off, typ, out); err != nil {
			return err
		}
		if err := checkOn(res, on, dc, off, typ, out, nbInputs); err != nil {
			return err
		}
	}
	return nil
}

// checkOff checks no cube of res meets the OFF-set.
func checkOff(res, on, dc, off []cube, typ cover.Type, out int) error {
	if typ.Has(cover.R) {
		for _, c := range res {
			for _, r := range off {
				if c.meets(r) {
					return fmt.Errorf("%w: output %d: cube %d meets OFF-set cube %d", ErrMismatch, out, c.idx, r.idx)
				}
			}
		}
		return nil
	}
	allowed := append(append([]cube{}, on...), dc...)
	for _, c := range res {
		if !covered(c, allowed) {
			return fmt.Errorf("%w: output %d: cube %d is not in the ON-set nor in the DC-set", ErrMismatch, out, c.idx)
		}
	}
	return nil
}

// checkOn checks all points of the ON-set are covered by res or by the DC-set.
func checkOn(res, on, dc, off []cube, typ cover.Type, out, nbInputs int) error {
	allowed := append(append([]cube{}, res...), dc...)
	if typ.Has(cover.F) {
		for _, c := range on {
			if !covered(c, allowed) {
				return fmt.Errorf("%w: output %d: ON-set cube %d is not covered", ErrMismatch, out, c.idx)
			}
		}
		return nil
	}
	// The ON-set is whatever is neither in the OFF-set nor in the DC-set.
	universe := cube{idx: -1, inputs: make([]int, nbInputs)}
	for i := range universe.inputs {
		universe.inputs[i] = cover.InputDontCare
	}
	if !covered(universe, append(allowed, off...)) {
		return fmt.Errorf("%w: output %d: ON-set is not covered", ErrMismatch, out)
	}
	return nil
}
