package espresso

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// fakeEngine is an engine whose result is computed by a Go function.
// It records requests and frees, and detects overlapping calls.
type fakeEngine struct {
	// minimize computes the result; the request is echoed if nil.
	// A nil result makes the call fail.
	minimize func(req Request) (nbCubes int32, data []int32)
	// dims, if non nil, overrides the dimensions of the response.
	dims  *[3]int32
	delay time.Duration

	active     int32
	overlapped int32

	mu       sync.Mutex
	requests []Request
	buffers  map[unsafe.Pointer][]int32
	frees    map[unsafe.Pointer]int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		buffers: make(map[unsafe.Pointer][]int32),
		frees:   make(map[unsafe.Pointer]int),
	}
}

func (e *fakeEngine) Espresso(req Request) Response {
	if atomic.AddInt32(&e.active, 1) > 1 {
		atomic.StoreInt32(&e.overlapped, 1)
	}
	defer atomic.AddInt32(&e.active, -1)
	if e.delay > 0 {
		time.Sleep(e.delay)
	}
	saved := req
	saved.Data = append([]int32{}, req.Data...)
	e.mu.Lock()
	e.requests = append(e.requests, saved)
	e.mu.Unlock()

	nbCubes, data := req.NbCubes, append([]int32{}, req.Data...)
	if e.minimize != nil {
		nbCubes, data = e.minimize(req)
	}
	if data == nil {
		return Response{}
	}
	resp := Response{NbCubes: nbCubes, NbInputs: req.NbInputs, NbOutputs: req.NbOutputs}
	if e.dims != nil {
		resp.NbCubes, resp.NbInputs, resp.NbOutputs = e.dims[0], e.dims[1], e.dims[2]
	}
	if len(data) == 0 {
		data = make([]int32, 1)
	}
	resp.Data = unsafe.Pointer(&data[0])
	e.mu.Lock()
	e.buffers[resp.Data] = data
	e.mu.Unlock()
	return resp
}

func (e *fakeEngine) Free(data unsafe.Pointer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.frees[data]++
}

func (e *fakeEngine) nbRequests() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.requests)
}

func (e *fakeEngine) lastRequest() Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.requests[len(e.requests)-1]
}

// freeCount returns how many times the buffer of c was freed.
func (e *fakeEngine) freeCount(data unsafe.Pointer) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frees[data]
}

// allFreedOnce returns true iff every buffer ever returned was freed exactly once.
func (e *fakeEngine) allFreedOnce() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for ptr := range e.buffers {
		if e.frees[ptr] != 1 {
			return false
		}
	}
	return len(e.frees) == len(e.buffers)
}
