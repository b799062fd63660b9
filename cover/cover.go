package cover

// Input cell codes.
const (
	InputUnset    = 0 // Never validly written
	InputZero     = 1 // Literal false
	InputOne      = 2 // Literal true
	InputDontCare = 3
)

// Output cell codes.
const (
	OutputOff      = 0
	OutputOn       = 1
	OutputDontCare = 2
)

// Interface is any cover, whatever owns its cells.
// Cover implements it, and so does the foreign-owned cover returned by the espresso package.
type Interface interface {
	NbCubes() int
	NbInputs() int
	NbOutputs() int
	// Input returns the code of the given input cell of the given cube.
	Input(cube, position int) (int, error)
	SetInput(cube, position, value int) error
	// Output returns the code of the given output cell of the given cube.
	Output(cube, position int) (int, error)
	SetOutput(cube, position, value int) error
	// Snapshot returns a copy of the whole row-major cell table.
	// Modifying the copy never affects the cover.
	Snapshot() ([]int, error)
}

// A Cover is a cover whose cells are allocated and reclaimed by Go.
type Cover struct {
	Shape
	data []int
}

// New returns a cover of nbCubes cubes, each holding nbInputs input cells and nbOutputs output cells.
// All cells are initialized to 0.
func New(nbCubes, nbInputs, nbOutputs int) (*Cover, error) {
	shape, err := NewShape(nbCubes, nbInputs, nbOutputs)
	if err != nil {
		return nil, err
	}
	return &Cover{Shape: shape, data: make([]int, shape.Len())}, nil
}

// Clone returns a self-owned copy of c.
func Clone(c Interface) (*Cover, error) {
	table, err := c.Snapshot()
	if err != nil {
		return nil, err
	}
	res, err := New(c.NbCubes(), c.NbInputs(), c.NbOutputs())
	if err != nil {
		return nil, err
	}
	copy(res.data, table)
	return res, nil
}

func (c *Cover) Input(cube, position int) (int, error) {
	idx, err := c.InputIndex(cube, position)
	if err != nil {
		return 0, err
	}
	return c.data[idx], nil
}

func (c *Cover) SetInput(cube, position, value int) error {
	idx, err := c.InputIndex(cube, position)
	if err != nil {
		return err
	}
	c.data[idx] = value
	return nil
}

func (c *Cover) Output(cube, position int) (int, error) {
	idx, err := c.OutputIndex(cube, position)
	if err != nil {
		return 0, err
	}
	return c.data[idx], nil
}

func (c *Cover) SetOutput(cube, position, value int) error {
	idx, err := c.OutputIndex(cube, position)
	if err != nil {
		return err
	}
	c.data[idx] = value
	return nil
}

// Snapshot never fails for a Cover.
func (c *Cover) Snapshot() ([]int, error) {
	res := make([]int, len(c.data))
	copy(res, c.data)
	return res, nil
}
