package pla

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/crillab/gopherpla/cover"
)

const (
	inputChars  = "01-" // indexed by input code - 1
	outputChars = "01-" // indexed by output code
)

// typeName returns the name a .type directive uses for t.
func typeName(t cover.Type) (string, bool) {
	for name, typ := range typeNames {
		if typ == t {
			return name, true
		}
	}
	return "", false
}

// countWriter counts the bytes written to w.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes the PLA version of the document on w.
// Cubes are written in order. Labels are only written if they were provided.
// It returns the number of bytes written.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.Cover == nil {
		return 0, fmt.Errorf("%w: no cover to write", ErrFormat)
	}
	var typ string
	if d.Type != cover.None {
		name, ok := typeName(d.Type)
		if !ok {
			return 0, fmt.Errorf("%w: cover type %v cannot be written", ErrFormat, d.Type)
		}
		typ = name
	}
	cw := &countWriter{w: w}
	bw := bufio.NewWriter(cw)
	c := d.Cover
	fmt.Fprintf(bw, ".i %d\n", c.NbInputs())
	fmt.Fprintf(bw, ".o %d\n", c.NbOutputs())
	if len(d.InputLabels) != 0 {
		fmt.Fprintf(bw, ".ilb %s\n", strings.Join(d.InputLabels, " "))
	}
	if len(d.OutputLabels) != 0 {
		fmt.Fprintf(bw, ".ob %s\n", strings.Join(d.OutputLabels, " "))
	}
	if typ != "" {
		fmt.Fprintf(bw, ".type %s\n", typ)
	}
	table, err := c.Snapshot()
	if err != nil {
		return 0, fmt.Errorf("could not read cover: %w", err)
	}
	row := make([]byte, c.NbInputs()+1+c.NbOutputs()+1)
	rowLen := c.NbInputs() + c.NbOutputs()
	for i := 0; i < c.NbCubes(); i++ {
		cells := table[i*rowLen : (i+1)*rowLen]
		for j := 0; j < c.NbInputs(); j++ {
			val := cells[j]
			if val < cover.InputZero || val > cover.InputDontCare {
				return cw.n, fmt.Errorf("%w: invalid input value %d for cube %d, input %d", ErrFormat, val, i, j)
			}
			row[j] = inputChars[val-1]
		}
		row[c.NbInputs()] = ' '
		for j := 0; j < c.NbOutputs(); j++ {
			val := cells[c.NbInputs()+j]
			if val < cover.OutputOff || val > cover.OutputDontCare {
				return cw.n, fmt.Errorf("%w: invalid output value %d for cube %d, output %d", ErrFormat, val, i, j)
			}
			row[c.NbInputs()+1+j] = outputChars[val]
		}
		row[len(row)-1] = '\n'
		if _, err := bw.Write(row); err != nil {
			return cw.n, fmt.Errorf("could not write PLA document: %w", err)
		}
	}
	bw.WriteString(".e\n")
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("could not write PLA document: %w", err)
	}
	return cw.n, nil
}

// String returns the PLA version of the document, or an empty string if it cannot be written.
func (d *Document) String() string {
	var sb strings.Builder
	if _, err := d.WriteTo(&sb); err != nil {
		return ""
	}
	return sb.String()
}
