// Package cuerr is the error-signaling core of cuproj. It classifies every
// failure into one of two kinds and converts CUDA runtime status codes into
// diagnosable errors at the boundary between the library and the runtime.
//
// LogicError reports violated preconditions, invariants, and deliberately
// unreachable code paths detected in host code. CudaError reports failures
// surfaced by the CUDA runtime itself, including deferred errors from
// asynchronous work enqueued earlier. Both kinds carry the originating file
// and line in their message, so an unhandled failure is always traceable to
// its exact call site.
//
// The package is a pure detect-and-report layer: no retries, no suppression,
// no recovery policy.
package cuerr
