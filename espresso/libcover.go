package espresso

import (
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/crillab/gopherpla/cover"
)

// noCopy makes go vet's copylocks check report copies of the struct embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// A LibCover is a cover whose cells are owned by the engine that computed it.
// It can only be obtained from Minimize, and must be used through a pointer.
//
// A LibCover is either owned or released. Release frees the cells and moves it
// to the released state; after that, every method returns ErrReleased.
// A LibCover is not safe for concurrent use.
type LibCover struct {
	noCopy noCopy
	cover.Shape
	engine Engine
	logger *slog.Logger
	data   unsafe.Pointer // nil once released
	cells  []int32        // view over data
}

var _ cover.Interface = (*LibCover)(nil)

func newLibCover(engine Engine, resp Response, logger *slog.Logger) (*LibCover, error) {
	shape, err := cover.NewShape(int(resp.NbCubes), int(resp.NbInputs), int(resp.NbOutputs))
	if err != nil {
		return nil, err
	}
	c := &LibCover{
		Shape:  shape,
		engine: engine,
		logger: logger,
		data:   resp.Data,
		cells:  unsafe.Slice((*int32)(resp.Data), shape.Len()),
	}
	foreignCovers.Inc()
	runtime.SetFinalizer(c, (*LibCover).finalize)
	return c, nil
}

// Released returns true iff Release was called.
func (c *LibCover) Released() bool {
	return c.data == nil
}

// Release frees the cells of c. It must be called exactly once;
// subsequent calls return ErrReleased and free nothing.
func (c *LibCover) Release() error {
	if c.data == nil {
		return ErrReleased
	}
	runtime.SetFinalizer(c, nil)
	c.free()
	return nil
}

func (c *LibCover) free() {
	data := c.data
	c.data = nil
	c.cells = nil
	c.engine.Free(data)
	foreignCovers.Dec()
}

// finalize frees the cells of a cover that became unreachable without being released.
func (c *LibCover) finalize() {
	if c.data == nil {
		return
	}
	c.logger.Warn("foreign cover was never released", "cubes", c.NbCubes(), "inputs", c.NbInputs(), "outputs", c.NbOutputs())
	c.free()
}

func (c *LibCover) Input(cube, position int) (int, error) {
	if c.data == nil {
		return 0, ErrReleased
	}
	idx, err := c.InputIndex(cube, position)
	if err != nil {
		return 0, err
	}
	val := int(c.cells[idx])
	runtime.KeepAlive(c)
	return val, nil
}

func (c *LibCover) SetInput(cube, position, value int) error {
	if c.data == nil {
		return ErrReleased
	}
	idx, err := c.InputIndex(cube, position)
	if err != nil {
		return err
	}
	c.cells[idx] = int32(value)
	runtime.KeepAlive(c)
	return nil
}

func (c *LibCover) Output(cube, position int) (int, error) {
	if c.data == nil {
		return 0, ErrReleased
	}
	idx, err := c.OutputIndex(cube, position)
	if err != nil {
		return 0, err
	}
	val := int(c.cells[idx])
	runtime.KeepAlive(c)
	return val, nil
}

func (c *LibCover) SetOutput(cube, position, value int) error {
	if c.data == nil {
		return ErrReleased
	}
	idx, err := c.OutputIndex(cube, position)
	if err != nil {
		return err
	}
	c.cells[idx] = int32(value)
	runtime.KeepAlive(c)
	return nil
}

// Snapshot copies the cells of c into Go memory.
func (c *LibCover) Snapshot() ([]int, error) {
	if c.data == nil {
		return nil, ErrReleased
	}
	res := make([]int, len(c.cells))
	for i, val := range c.cells {
		res[i] = int(val)
	}
	runtime.KeepAlive(c)
	return res, nil
}
