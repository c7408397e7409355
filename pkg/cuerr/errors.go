package cuerr

// LogicError reports a violated precondition or invariant detected in host
// code. It is constructed by Expects and Fail rather than directly; the
// message already carries the originating file and line.
type LogicError struct {
	msg string
}

func (e *LogicError) Error() string { return e.msg }

// CudaError reports a failure surfaced by the CUDA runtime. It is
// constructed only by the runtime-call guards; the message embeds file,
// line, the raw status code, its symbolic name, and its description.
type CudaError struct {
	// Status is the raw runtime status code that produced the error.
	Status Status

	msg string
}

func (e *CudaError) Error() string { return e.msg }
