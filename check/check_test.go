package check

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gopherpla/cover"
	"github.com/crillab/gopherpla/pla"
)

func parse(t *testing.T, nbInputs, nbOutputs int, rows ...string) cover.Interface {
	t.Helper()
	text := fmt.Sprintf(".i %d\n.o %d\n%s\n", nbInputs, nbOutputs, strings.Join(rows, "\n"))
	doc, err := pla.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return doc.Cover
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name      string
		typ       cover.Type
		original  []string
		minimized []string
		ok        bool
	}{
		{"identity", cover.FD, []string{"10 1", "01 1"}, []string{"10 1", "01 1"}, true},
		{"merge", cover.F, []string{"11 1", "10 1"}, []string{"1- 1"}, true},
		{"none is fd", cover.None, []string{"11 1", "10 1"}, []string{"1- 1"}, true},
		{"missing cube", cover.F, []string{"11 1", "00 1"}, []string{"11 1"}, false},
		{"too large", cover.F, []string{"11 1"}, []string{"1- 1"}, false},
		{"dc allows growth", cover.FD, []string{"11 1", "10 -"}, []string{"1- 1"}, true},
		{"dc not required", cover.FD, []string{"11 1", "10 -"}, []string{"11 1"}, true},
		{"off cubes ignored with f", cover.F, []string{"11 1", "00 0"}, []string{"11 1"}, true},
		{"r", cover.R, []string{"11 0"}, []string{"0- 1", "-0 1"}, true},
		{"r meets off", cover.R, []string{"11 0"}, []string{"-- 1"}, false},
		{"r incomplete", cover.R, []string{"11 0"}, []string{"0- 1"}, false},
		{"dr", cover.DR, []string{"11 0", "10 -"}, []string{"0- 1"}, true},
		{"fr", cover.FR, []string{"00 1", "11 0"}, []string{"0- 1"}, true},
		{"fr meets off", cover.FR, []string{"00 1", "11 0"}, []string{"-- 1"}, false},
		{"fr incomplete", cover.FR, []string{"00 1", "01 1", "11 0"}, []string{"00 1"}, false},
		{"fdr", cover.FDR, []string{"00 1", "01 -", "11 0"}, []string{"0- 1"}, true},
		{"multi output", cover.FD, []string{"11 10", "10 11", "01 01"}, []string{"1- 10", "-1 01", "10 01"}, false},
		{"multi output ok", cover.FD, []string{"11 10", "10 11", "01 01"}, []string{"1- 10", "01 01", "10 01"}, true},
		{"tautology", cover.F, []string{"1- 1", "0- 1"}, []string{"-- 1"}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orig := parse(t, 2, len(strings.Fields(test.original[0])[1]), test.original...)
			minimized := parse(t, 2, orig.NbOutputs(), test.minimized...)
			err := Verify(orig, minimized, test.typ)
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMismatch)
			}
		})
	}
}

func TestVerifyShape(t *testing.T) {
	orig := parse(t, 2, 1, "11 1")
	minimized := parse(t, 3, 1, "111 1")
	assert.ErrorIs(t, Verify(orig, minimized, cover.F), ErrMismatch)
}

func TestVerifyInvalidType(t *testing.T) {
	orig := parse(t, 2, 1, "11 1")
	err := Verify(orig, orig, cover.D)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestVerifyIgnoresEmptyCubes(t *testing.T) {
	orig := parse(t, 2, 1, "11 1")
	minimized, err := cover.New(2, 2, 1)
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		require.NoError(t, minimized.SetInput(0, j, cover.InputOne))
	}
	require.NoError(t, minimized.SetOutput(0, 0, cover.OutputOn))
	// Second cube has unset inputs: it contains no point.
	require.NoError(t, minimized.SetOutput(1, 0, cover.OutputOn))
	assert.NoError(t, Verify(orig, minimized, cover.F))
}
