package espresso

import "unsafe"

// A Request is the cover handed to an engine. It mirrors the native net_cover_t.
type Request struct {
	NbCubes   int32
	NbInputs  int32
	NbOutputs int32
	Data      []int32 // (NbInputs+NbOutputs)*NbCubes cells, row-major
	Type      int32   // cover.Type flags
}

// A Response is the cover computed by an engine.
// Data points to memory owned by the engine, laid out as in Request.
// A nil Data means the call failed.
type Response struct {
	NbCubes   int32
	NbInputs  int32
	NbOutputs int32
	Data      unsafe.Pointer
}

// Engine is the call contract of the external minimizer.
type Engine interface {
	// Espresso minimizes the cover described by req.
	// It is never called concurrently, and req.Data is not valid after it returns.
	Espresso(req Request) Response
	// Free releases the Data of a successful Response.
	// It may be called while another goroutine is in Espresso.
	Free(data unsafe.Pointer)
}
