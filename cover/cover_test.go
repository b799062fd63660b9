package cover

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	tests := []struct {
		cubes, inputs, outputs int
		valid                  bool
	}{
		{1, 1, 1, true},
		{5, 3, 2, true},
		{0, 1, 1, false},
		{1, 0, 1, false},
		{1, 1, 0, false},
		{-3, 2, 2, false},
		{2, 2, -1, false},
	}
	for _, test := range tests {
		c, err := New(test.cubes, test.inputs, test.outputs)
		if !test.valid {
			require.ErrorIs(t, err, ErrInvalidShape, "shape (%d, %d, %d)", test.cubes, test.inputs, test.outputs)
			assert.Nil(t, c)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.cubes, c.NbCubes())
		assert.Equal(t, test.inputs, c.NbInputs())
		assert.Equal(t, test.outputs, c.NbOutputs())
		table, err := c.Snapshot()
		require.NoError(t, err)
		assert.Len(t, table, (test.inputs+test.outputs)*test.cubes)
		for _, cell := range table {
			assert.Zero(t, cell)
		}
	}
}

func TestNewShapeReportsDimension(t *testing.T) {
	_, err := New(3, 0, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input")
	assert.Contains(t, err.Error(), "got 0")
}

func TestCoverIndexing(t *testing.T) {
	c, err := New(3, 2, 2)
	require.NoError(t, err)
	for cube := -1; cube <= 3; cube++ {
		for pos := -1; pos <= 2; pos++ {
			inRange := cube >= 0 && cube < 3 && pos >= 0 && pos < 2
			name := fmt.Sprintf("cube=%d pos=%d", cube, pos)
			val := 1 + (cube+pos+2)%3
			errIn := c.SetInput(cube, pos, val)
			errOut := c.SetOutput(cube, pos, val-1)
			if !inRange {
				assert.ErrorIs(t, errIn, ErrIndexOutOfRange, name)
				assert.ErrorIs(t, errOut, ErrIndexOutOfRange, name)
				_, err := c.Input(cube, pos)
				assert.ErrorIs(t, err, ErrIndexOutOfRange, name)
				_, err = c.Output(cube, pos)
				assert.ErrorIs(t, err, ErrIndexOutOfRange, name)
				continue
			}
			require.NoError(t, errIn, name)
			require.NoError(t, errOut, name)
			got, err := c.Input(cube, pos)
			require.NoError(t, err)
			assert.Equal(t, val, got, name)
			got, err = c.Output(cube, pos)
			require.NoError(t, err)
			assert.Equal(t, val-1, got, name)
		}
	}
}

func TestCoverLayout(t *testing.T) {
	c, err := New(2, 2, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetInput(0, 0, InputOne))
	require.NoError(t, c.SetInput(0, 1, InputZero))
	require.NoError(t, c.SetOutput(0, 0, OutputOn))
	require.NoError(t, c.SetInput(1, 0, InputDontCare))
	require.NoError(t, c.SetInput(1, 1, InputOne))
	require.NoError(t, c.SetOutput(1, 0, OutputDontCare))
	table, err := c.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 1, 3, 2, 2}, table)
}

func TestSnapshotIsIndependent(t *testing.T) {
	c, err := New(1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetInput(0, 0, InputOne))
	table, err := c.Snapshot()
	require.NoError(t, err)
	table[0] = InputZero
	table[1] = OutputDontCare
	got, err := c.Input(0, 0)
	require.NoError(t, err)
	assert.Equal(t, InputOne, got)
	got, err = c.Output(0, 0)
	require.NoError(t, err)
	assert.Equal(t, OutputOff, got)
}

func TestClone(t *testing.T) {
	c, err := New(2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetInput(1, 0, InputDontCare))
	clone, err := Clone(c)
	require.NoError(t, err)
	assert.Equal(t, c.Shape, clone.Shape)
	require.NoError(t, c.SetInput(1, 0, InputZero))
	got, err := clone.Input(1, 0)
	require.NoError(t, err)
	assert.Equal(t, InputDontCare, got)
}

func TestType(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{None, "none"},
		{F, "f"},
		{R, "r"},
		{FD, "fd"},
		{FR, "fr"},
		{DR, "dr"},
		{FDR, "fdr"},
		{D, "d"},
		{Type(8), "Type(8)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.typ.String())
	}
	assert.True(t, FD.Has(F))
	assert.True(t, FD.Has(FD))
	assert.False(t, FD.Has(R))
	assert.False(t, F.Has(FD))
	assert.Equal(t, Type(3), FD)
}

func ExampleNew() {
	c, err := New(1, 2, 1)
	if err != nil {
		fmt.Printf("could not create cover: %v", err)
		return
	}
	_ = c.SetInput(0, 0, InputOne)
	_ = c.SetInput(0, 1, InputZero)
	_ = c.SetOutput(0, 0, OutputOn)
	table, _ := c.Snapshot()
	fmt.Println(c.Shape, table)
	// Output:
	// 1 cubes, 2 inputs, 1 outputs [2 1 1]
}
