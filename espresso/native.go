//go:build cgo && espresso

package espresso

/*
#cgo LDFLAGS: -lespresso

typedef struct {
	int ncubes;
	int ninputs;
	int noutput;
	int *data;
} net_cover_t;

extern net_cover_t espressonet(net_cover_t cover, int intype);
extern void espressonet_free(int *data);
*/
import "C"

import "unsafe"

type nativeEngine struct{}

// NativeEngine returns the engine backed by the linked Espresso library.
func NativeEngine() (Engine, error) {
	return nativeEngine{}, nil
}

func (nativeEngine) Espresso(req Request) Response {
	in := C.net_cover_t{
		ncubes:  C.int(req.NbCubes),
		ninputs: C.int(req.NbInputs),
		noutput: C.int(req.NbOutputs),
		data:    (*C.int)(unsafe.Pointer(&req.Data[0])),
	}
	out := C.espressonet(in, C.int(req.Type))
	return Response{
		NbCubes:   int32(out.ncubes),
		NbInputs:  int32(out.ninputs),
		NbOutputs: int32(out.noutput),
		Data:      unsafe.Pointer(out.data),
	}
}

func (nativeEngine) Free(data unsafe.Pointer) {
	C.espressonet_free((*C.int)(data))
}
