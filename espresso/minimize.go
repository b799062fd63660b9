package espresso

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/crillab/gopherpla/check"
	"github.com/crillab/gopherpla/cover"
)

var (
	// ErrInvalidArgument is returned when a minimization request is not valid.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEngine is returned when the engine did not produce a usable cover.
	ErrEngine = errors.New("espresso engine error")
	// ErrReleased is returned when a LibCover is used after being released.
	ErrReleased = errors.New("cover already released")
	// ErrNoNative is returned by NativeEngine when the library was not linked in.
	ErrNoNative = errors.New("native espresso engine not available, build with cgo and -tags espresso")
)

const tracerName = "github.com/crillab/gopherpla/espresso"

// engineMu serializes all calls into engines, whichever Minimizer makes them:
// the Espresso library keeps its solver state in globals.
var engineMu sync.Mutex

// call invokes the engine while holding engineMu.
func call(engine Engine, req Request) Response {
	start := time.Now()
	engineMu.Lock()
	defer engineMu.Unlock()
	lockWait.Observe(time.Since(start).Seconds())
	start = time.Now()
	defer func() { callDuration.Observe(time.Since(start).Seconds()) }()
	return engine.Espresso(req)
}

// A Minimizer minimizes covers with a given engine.
// It is safe for concurrent use, although calls into the engine never overlap.
type Minimizer struct {
	engine Engine
	logger *slog.Logger
	tracer trace.Tracer
	verify bool
}

// An Option configures a Minimizer.
type Option func(*Minimizer)

// WithLogger sets the logger. By default, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Minimizer) { m.logger = logger }
}

// WithTracerProvider sets the provider of the tracer spanning engine calls.
// By default, the global provider is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(m *Minimizer) { m.tracer = tp.Tracer(tracerName) }
}

// WithVerify makes the minimizer check each result against its input with check.Verify.
func WithVerify(verify bool) Option {
	return func(m *Minimizer) { m.verify = verify }
}

// New returns a minimizer using the given engine.
func New(engine Engine, opts ...Option) *Minimizer {
	m := &Minimizer{
		engine: engine,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var (
	defaultOnce      sync.Once
	defaultMinimizer *Minimizer
	defaultErr       error
)

// Minimize minimizes c with the native engine. See Minimizer.Minimize.
func Minimize(ctx context.Context, c cover.Interface, typ cover.Type) (*LibCover, error) {
	defaultOnce.Do(func() {
		var engine Engine
		engine, defaultErr = NativeEngine()
		if defaultErr == nil {
			defaultMinimizer = New(engine)
		}
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultMinimizer.Minimize(ctx, c, typ)
}

// request checks c and typ and builds the corresponding request.
func request(c cover.Interface, typ cover.Type) (Request, error) {
	if c == nil {
		return Request{}, fmt.Errorf("%w: nil cover", ErrInvalidArgument)
	}
	if c.NbCubes() < 1 || c.NbInputs() < 1 || c.NbOutputs() < 1 {
		return Request{}, fmt.Errorf("%w: expected at least 1 cube, input and output, got %d, %d and %d",
			ErrInvalidArgument, c.NbCubes(), c.NbInputs(), c.NbOutputs())
	}
	if typ&^cover.FDR != 0 || (!typ.Has(cover.F) && !typ.Has(cover.R)) {
		return Request{}, fmt.Errorf("%w: expected type in [f, r, fd, fr, dr, fdr], got %v", ErrInvalidArgument, typ)
	}
	table, err := c.Snapshot()
	if err != nil {
		return Request{}, fmt.Errorf("%w: could not read cover: %v", ErrInvalidArgument, err)
	}
	if len(table) != (c.NbInputs()+c.NbOutputs())*c.NbCubes() {
		return Request{}, fmt.Errorf("%w: expected %d cells, got %d",
			ErrInvalidArgument, (c.NbInputs()+c.NbOutputs())*c.NbCubes(), len(table))
	}
	data := make([]int32, len(table))
	for i, val := range table {
		if val < math.MinInt32 || val > math.MaxInt32 {
			return Request{}, fmt.Errorf("%w: cell %d: value %d out of range", ErrInvalidArgument, i, val)
		}
		data[i] = int32(val)
	}
	return Request{
		NbCubes:   int32(c.NbCubes()),
		NbInputs:  int32(c.NbInputs()),
		NbOutputs: int32(c.NbOutputs()),
		Data:      data,
		Type:      int32(typ),
	}, nil
}

// invoke pins the request data and calls the engine once.
func (m *Minimizer) invoke(req Request) Response {
	var pinner runtime.Pinner
	pinner.Pin(&req.Data[0])
	defer pinner.Unpin()
	return call(m.engine, req)
}

// Minimize returns a logically equivalent, (near) minimal set of cubes representing
// the ON-set of the function described by c, without containing any point of its OFF-set.
// typ indicates which sets c describes; cover.None stands for cover.FD.
// typ must contain F or R.
//
// The engine is called exactly once, never concurrently with another call, and the call cannot be
// interrupted: ctx is only used to carry the trace span.
// On success, the caller owns the returned cover and must release it.
func (m *Minimizer) Minimize(ctx context.Context, c cover.Interface, typ cover.Type) (*LibCover, error) {
	if typ == cover.None {
		typ = cover.FD
	}
	req, err := request(c, typ)
	if err != nil {
		callsTotal.WithLabelValues(resultInvalidArgument).Inc()
		return nil, err
	}
	callID := uuid.NewString()
	logger := m.logger.With("call_id", callID)
	_, span := m.tracer.Start(ctx, "espresso.Minimize", trace.WithAttributes(
		attribute.String("espresso.call_id", callID),
		attribute.String("espresso.type", typ.String()),
		attribute.Int("espresso.cubes", int(req.NbCubes)),
		attribute.Int("espresso.inputs", int(req.NbInputs)),
		attribute.Int("espresso.outputs", int(req.NbOutputs)),
	))
	defer span.End()
	fail := func(result string, err error) (*LibCover, error) {
		callsTotal.WithLabelValues(result).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Debug("minimization failed", "error", err)
		return nil, err
	}

	logger.Debug("minimizing cover", "cubes", req.NbCubes, "inputs", req.NbInputs, "outputs", req.NbOutputs, "type", typ.String())
	cubesIn.Observe(float64(req.NbCubes))
	start := time.Now()
	resp := m.invoke(req)
	if resp.Data == nil {
		return fail(resultNoResult, fmt.Errorf("%w: native call produced no result", ErrEngine))
	}
	res, err := newLibCover(m.engine, resp, m.logger)
	if err != nil {
		m.engine.Free(resp.Data)
		return fail(resultBadResult, fmt.Errorf("%w: %v", ErrEngine, err))
	}
	if res.NbInputs() != c.NbInputs() || res.NbOutputs() != c.NbOutputs() {
		err := fmt.Errorf("%w: expected %d inputs and %d outputs, got %d and %d",
			ErrEngine, c.NbInputs(), c.NbOutputs(), res.NbInputs(), res.NbOutputs())
		_ = res.Release()
		return fail(resultBadResult, err)
	}
	if m.verify {
		if err := check.Verify(c, res, typ); err != nil {
			_ = res.Release()
			return fail(resultMismatch, fmt.Errorf("%w: result verification failed: %v", ErrEngine, err))
		}
	}
	callsTotal.WithLabelValues(resultOK).Inc()
	cubesOut.Observe(float64(res.NbCubes()))
	span.SetAttributes(attribute.Int("espresso.result_cubes", res.NbCubes()))
	logger.Debug("cover minimized", "cubes", res.NbCubes(), "duration", time.Since(start))
	return res, nil
}
