package cuerr

import "sync"

// Status is a CUDA runtime status code.
type Status int32

// Success is the canonical status of a completed runtime call.
const Success Status = 0

// Stream is an opaque handle to a CUDA execution stream.
type Stream uintptr

// Runtime is the slice of the CUDA runtime this package consumes: status
// decoding, the sticky process-wide last-error flag, and stream
// synchronization. The cgo backend provides the real runtime; the cudart
// package provides a host-side emulation with the same semantics.
//
// The last-error flag is reset-on-read external state. This package adds no
// locking around it beyond what the runtime itself serializes.
type Runtime interface {
	// ErrorName returns the symbolic name of a status (cudaGetErrorName).
	ErrorName(Status) string
	// ErrorString returns a description of a status (cudaGetErrorString).
	ErrorString(Status) string
	// GetLastError returns the sticky last error and clears it.
	GetLastError() Status
	// PeekAtLastError returns the sticky last error without clearing it.
	PeekAtLastError() Status
	// StreamSynchronize blocks until all work enqueued on the stream has
	// completed, returning the first failure observed on it.
	StreamSynchronize(Stream) Status
}

var (
	activeMu sync.RWMutex
	active   Runtime
)

// RegisterRuntime installs the runtime consulted by CudaTry and CheckCuda.
// Passing nil clears it; without a runtime the guards still classify
// failures, but cannot decode status codes or clear the last-error flag.
func RegisterRuntime(r Runtime) {
	activeMu.Lock()
	active = r
	activeMu.Unlock()
}

// CurrentRuntime returns the registered runtime, or nil.
func CurrentRuntime() Runtime {
	activeMu.RLock()
	r := active
	activeMu.RUnlock()
	return r
}
