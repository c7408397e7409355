//go:build cuda

// Package native wraps the CUDA runtime error and stream primitives via cgo.
package native

/*
#cgo LDFLAGS: -lcudart

// Minimal CUDA runtime forward declarations to avoid requiring headers at compile time.
// Linker will still require libcudart when building with the cuda tag.
typedef void* cudaStream_t;
typedef int cudaError_t;

extern const char* cudaGetErrorName(cudaError_t err);
extern const char* cudaGetErrorString(cudaError_t err);
extern cudaError_t cudaGetLastError(void);
extern cudaError_t cudaPeekAtLastError(void);
extern cudaError_t cudaGetDeviceCount(int* count);
extern cudaError_t cudaStreamCreate(cudaStream_t* stream);
extern cudaError_t cudaStreamDestroy(cudaStream_t stream);
extern cudaError_t cudaStreamSynchronize(cudaStream_t stream);

static const char* cuprojCudaGetErrorName(cudaError_t err) {
	return cudaGetErrorName(err);
}

static const char* cuprojCudaGetErrorString(cudaError_t err) {
	return cudaGetErrorString(err);
}

static int cuprojCudaGetLastError(void) {
	return (int)cudaGetLastError();
}

static int cuprojCudaPeekAtLastError(void) {
	return (int)cudaPeekAtLastError();
}

static int cuprojCudaGetDeviceCount(int* out) {
	cudaError_t err = cudaGetDeviceCount(out);
	return (int)err;
}

static int cuprojCudaStreamCreate(cudaStream_t* out) {
	cudaError_t err = cudaStreamCreate(out);
	return (int)err;
}

static int cuprojCudaStreamDestroy(cudaStream_t stream) {
	cudaError_t err = cudaStreamDestroy(stream);
	return (int)err;
}

static int cuprojCudaStreamSynchronize(cudaStream_t stream) {
	cudaError_t err = cudaStreamSynchronize(stream);
	return (int)err;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

// Runtime exposes the device runtime through the cuerr.Runtime surface.
// Stream handles are the raw cudaStream_t pointers.
type Runtime struct{}

func New() *Runtime {
	return &Runtime{}
}

func (*Runtime) ErrorName(status cuerr.Status) string {
	return C.GoString(C.cuprojCudaGetErrorName(C.cudaError_t(status)))
}

func (*Runtime) ErrorString(status cuerr.Status) string {
	return C.GoString(C.cuprojCudaGetErrorString(C.cudaError_t(status)))
}

func (*Runtime) GetLastError() cuerr.Status {
	return cuerr.Status(C.cuprojCudaGetLastError())
}

func (*Runtime) PeekAtLastError() cuerr.Status {
	return cuerr.Status(C.cuprojCudaPeekAtLastError())
}

func (*Runtime) StreamSynchronize(stream cuerr.Stream) cuerr.Status {
	return cuerr.Status(C.cuprojCudaStreamSynchronize(C.cudaStream_t(unsafe.Pointer(stream))))
}

func (*Runtime) StreamCreate() (cuerr.Stream, error) {
	var stream C.cudaStream_t
	if err := cudaErr(C.cuprojCudaStreamCreate(&stream)); err != nil {
		return 0, err
	}
	return cuerr.Stream(uintptr(unsafe.Pointer(stream))), nil
}

func (*Runtime) StreamDestroy(stream cuerr.Stream) error {
	if stream == 0 {
		return nil
	}
	return cudaErr(C.cuprojCudaStreamDestroy(C.cudaStream_t(unsafe.Pointer(stream))))
}

func DeviceCount() (int, error) {
	var count C.int
	if err := cudaErr(C.cuprojCudaGetDeviceCount(&count)); err != nil {
		return 0, err
	}
	return int(count), nil
}

func cudaErr(code C.int) error {
	if code == 0 {
		return nil
	}
	msg := C.GoString(C.cuprojCudaGetErrorString(C.cudaError_t(code)))
	return fmt.Errorf("cuda runtime error %d: %s", int(code), msg)
}
