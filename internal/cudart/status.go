package cudart

import "github.com/cuproj-go/cuproj/pkg/cuerr"

// Status values mirror the cudaError_t codes of the real runtime, so
// diagnostics read the same against the emulation and against a device.
const (
	Success cuerr.Status = 0

	ErrInvalidValue          cuerr.Status = 1
	ErrMemoryAllocation      cuerr.Status = 2
	ErrInvalidConfiguration  cuerr.Status = 9
	ErrInvalidDevice         cuerr.Status = 101
	ErrInvalidResourceHandle cuerr.Status = 400
	ErrNotReady              cuerr.Status = 600
	ErrIllegalAddress        cuerr.Status = 700
	ErrAssert                cuerr.Status = 710
	ErrLaunchFailure         cuerr.Status = 719
)

var statusNames = map[cuerr.Status]string{
	Success:                  "cudaSuccess",
	ErrInvalidValue:          "cudaErrorInvalidValue",
	ErrMemoryAllocation:      "cudaErrorMemoryAllocation",
	ErrInvalidConfiguration:  "cudaErrorInvalidConfiguration",
	ErrInvalidDevice:         "cudaErrorInvalidDevice",
	ErrInvalidResourceHandle: "cudaErrorInvalidResourceHandle",
	ErrNotReady:              "cudaErrorNotReady",
	ErrIllegalAddress:        "cudaErrorIllegalAddress",
	ErrAssert:                "cudaErrorAssert",
	ErrLaunchFailure:         "cudaErrorLaunchFailure",
}

var statusStrings = map[cuerr.Status]string{
	Success:                  "no error",
	ErrInvalidValue:          "invalid argument",
	ErrMemoryAllocation:      "out of memory",
	ErrInvalidConfiguration:  "invalid configuration argument",
	ErrInvalidDevice:         "invalid device ordinal",
	ErrInvalidResourceHandle: "invalid resource handle",
	ErrNotReady:              "device not ready",
	ErrIllegalAddress:        "an illegal memory access was encountered",
	ErrAssert:                "device-side assert triggered",
	ErrLaunchFailure:         "unspecified launch failure",
}

// ErrorName returns the symbolic name of a status, matching the output of
// cudaGetErrorName for the codes the emulation can produce.
func ErrorName(s cuerr.Status) string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unrecognized error code"
}

// ErrorString returns the description of a status, matching the output of
// cudaGetErrorString for the codes the emulation can produce.
func ErrorString(s cuerr.Status) string {
	if desc, ok := statusStrings[s]; ok {
		return desc
	}
	return "unrecognized error code"
}
