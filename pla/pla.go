package pla

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/gopherpla/cover"
)

// ErrFormat is returned when a PLA document cannot be read or written.
var ErrFormat = errors.New("invalid PLA document")

const maxLineLen = 16 * 1024 * 1024 // Cube rows of wide covers can be very long.

// Names of the cover types a .type directive can declare.
var typeNames = map[string]cover.Type{
	"f":   cover.F,
	"r":   cover.R,
	"fd":  cover.FD,
	"fr":  cover.FR,
	"dr":  cover.DR,
	"fdr": cover.FDR,
}

// ParseType returns the cover type of the given .type name.
func ParseType(name string) (cover.Type, error) {
	typ, ok := typeNames[name]
	if !ok {
		return cover.None, fmt.Errorf("%w: unknown cover type %q", ErrFormat, name)
	}
	return typ, nil
}

var inputCodes = map[byte]int{'0': cover.InputZero, '1': cover.InputOne, '-': cover.InputDontCare}
var outputCodes = map[byte]int{'0': cover.OutputOff, '1': cover.OutputOn, '-': cover.OutputDontCare}

// A Document is a cover along with the metadata a PLA file can declare.
type Document struct {
	Cover        cover.Interface
	Type         cover.Type // cover.None if no .type line was given
	InputLabels  []string   // nil if no .ilb line was given
	OutputLabels []string   // nil if no .ob line was given
}

// parser holds the state of a parse in progress.
type parser struct {
	lineNo       int
	nbInputs     int
	nbOutputs    int
	typ          cover.Type
	inputLabels  []string
	outputLabels []string
	cubes        [][]int // input codes then output codes, in file order
}

func (p *parser) errorf(line, format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d %q: %s", ErrFormat, p.lineNo, line, fmt.Sprintf(format, args...))
}

// Parse parses a PLA document from r.
// Parsing stops at the first error; no partial document is ever returned.
func Parse(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	var p parser
	for sc.Scan() {
		p.lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if err := p.parseLine(line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read PLA document: %w", err)
	}
	return p.document()
}

func (p *parser) parseLine(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".i":
		if p.nbInputs != 0 {
			return p.errorf(line, ".i declared more than once")
		}
		n, err := p.parseCount(line, fields)
		if err != nil {
			return err
		}
		p.nbInputs = n
	case ".o":
		if p.nbOutputs != 0 {
			return p.errorf(line, ".o declared more than once")
		}
		n, err := p.parseCount(line, fields)
		if err != nil {
			return err
		}
		p.nbOutputs = n
	case ".p": // Advisory only
		if _, err := p.parseCount(line, fields); err != nil {
			return err
		}
	case ".ilb":
		if p.inputLabels != nil {
			return p.errorf(line, ".ilb declared more than once")
		}
		if len(fields) < 2 {
			return p.errorf(line, "syntax error")
		}
		p.inputLabels = append([]string{}, fields[1:]...)
	case ".ob":
		if p.outputLabels != nil {
			return p.errorf(line, ".ob declared more than once")
		}
		if len(fields) < 2 {
			return p.errorf(line, "syntax error")
		}
		p.outputLabels = append([]string{}, fields[1:]...)
	case ".type":
		if len(fields) != 2 {
			return p.errorf(line, "syntax error")
		}
		typ, ok := typeNames[fields[1]]
		if !ok {
			return p.errorf(line, "syntax error")
		}
		if p.typ != cover.None {
			return p.errorf(line, ".type declared more than once")
		}
		p.typ = typ
	case ".e", ".end":
		if len(fields) != 1 {
			return p.errorf(line, "syntax error")
		}
	default:
		if len(fields) != 2 || !isCubePart(fields[0]) || !isCubePart(fields[1]) {
			return p.errorf(line, "syntax error")
		}
		return p.parseCube(line, fields[0], fields[1])
	}
	return nil
}

// parseCount parses the argument of a .i, .o or .p directive.
func (p *parser) parseCount(line string, fields []string) (int, error) {
	if len(fields) != 2 || !isDigits(fields[1]) {
		return 0, p.errorf(line, "syntax error")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, p.errorf(line, "invalid count: %v", err)
	}
	if n < 1 && fields[0] != ".p" {
		return 0, p.errorf(line, "expected a count of at least 1, got %d", n)
	}
	return n, nil
}

func (p *parser) parseCube(line, inputs, outputs string) error {
	if p.nbInputs == 0 {
		return p.errorf(line, ".i declaration missing before cube")
	}
	if p.nbOutputs == 0 {
		return p.errorf(line, ".o declaration missing before cube")
	}
	if len(inputs) < p.nbInputs {
		return p.errorf(line, "expected %d inputs, got %d", p.nbInputs, len(inputs))
	}
	if len(outputs) < p.nbOutputs {
		return p.errorf(line, "expected %d outputs, got %d", p.nbOutputs, len(outputs))
	}
	row := make([]int, p.nbInputs+p.nbOutputs)
	for i := 0; i < p.nbInputs; i++ {
		row[i] = inputCodes[inputs[i]]
	}
	for i := 0; i < p.nbOutputs; i++ {
		row[p.nbInputs+i] = outputCodes[outputs[i]]
	}
	p.cubes = append(p.cubes, row)
	return nil
}

// document builds the cover once all cubes are known.
func (p *parser) document() (*Document, error) {
	if p.nbInputs == 0 {
		return nil, fmt.Errorf("%w: .i declaration missing", ErrFormat)
	}
	if p.nbOutputs == 0 {
		return nil, fmt.Errorf("%w: .o declaration missing", ErrFormat)
	}
	if len(p.cubes) == 0 {
		return nil, fmt.Errorf("%w: no cube found", ErrFormat)
	}
	c, err := cover.New(len(p.cubes), p.nbInputs, p.nbOutputs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	for i, row := range p.cubes {
		for j := 0; j < p.nbInputs; j++ {
			if err := c.SetInput(i, j, row[j]); err != nil {
				return nil, err
			}
		}
		for j := 0; j < p.nbOutputs; j++ {
			if err := c.SetOutput(i, j, row[p.nbInputs+j]); err != nil {
				return nil, err
			}
		}
	}
	return &Document{
		Cover:        c,
		Type:         p.typ,
		InputLabels:  p.inputLabels,
		OutputLabels: p.outputLabels,
	}, nil
}

func isCubePart(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' && s[i] != '-' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
