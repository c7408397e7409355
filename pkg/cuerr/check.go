package cuerr

import (
	"fmt"
	"runtime"
)

// Expects checks a precondition. It returns nil when cond is true, and a
// *LogicError locating the caller otherwise. reason should be a short
// literal description of the expectation; cond must be side-effect free.
//
//	if err := cuerr.Expects(len(dst) == len(src), "length mismatch"); err != nil {
//		return err
//	}
func Expects(cond bool, reason string) error {
	if cond {
		return nil
	}
	file, line := locate(1)
	return &LogicError{msg: fmt.Sprintf("cuProj failure at: %s:%d: %s", file, line, reason)}
}

// Fail reports that an erroneous code path has been taken, such as the
// default arm of a switch that is exhaustive in valid usage. It always
// returns a *LogicError locating the caller.
func Fail(reason string) error {
	file, line := locate(1)
	return &LogicError{msg: fmt.Sprintf("cuProj failure at: %s:%d: %s", file, line, reason)}
}

// CudaTry guards a single CUDA runtime call; status must be the value just
// returned by that call. Success yields nil. Any other status first clears
// the runtime's sticky last-error flag, so the failure is not attributed
// again to a later unrelated check, and is then translated into a
// *CudaError locating the guard's call site.
func CudaTry(status Status) error {
	if status == Success {
		return nil
	}
	file, line := locate(1)
	return cudaTryAt(status, file, line)
}

// CheckCuda checks for CUDA errors after asynchronous work has been
// enqueued on stream. Under the cudadebug build tag it first synchronizes
// the stream, pinning a fault to the operation that produced it; release
// builds query only the deferred-error flag and skip the wait.
func CheckCuda(stream Stream) error {
	r := CurrentRuntime()
	if r == nil {
		return nil
	}
	if debugSync {
		if status := r.StreamSynchronize(stream); status != Success {
			file, line := locate(1)
			return cudaTryAt(status, file, line)
		}
	}
	if status := r.PeekAtLastError(); status != Success {
		file, line := locate(1)
		return cudaTryAt(status, file, line)
	}
	return nil
}

func cudaTryAt(status Status, file string, line int) error {
	r := CurrentRuntime()
	if r != nil {
		r.GetLastError()
	}
	return newCudaError(r, status, file, line)
}

// newCudaError translates a foreign status code into the library's own
// taxonomy. The symbolic name and description come from the runtime's own
// decoders when one is registered.
func newCudaError(r Runtime, status Status, file string, line int) *CudaError {
	name := "unrecognized error code"
	desc := "unrecognized error code"
	if r != nil {
		name = r.ErrorName(status)
		desc = r.ErrorString(status)
	}
	return &CudaError{
		Status: status,
		msg: fmt.Sprintf("CUDA error encountered at: %s:%d: %d %s %s",
			file, line, int32(status), name, desc),
	}
}

// locate reports the file and line skip frames above the caller.
func locate(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}
	return file, line
}
