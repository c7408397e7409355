// Package cudart is a host-side emulation of the slice of the CUDA runtime
// cuproj consumes: execution streams as ordered work queues, a sticky
// process-wide last-error flag, and status decoding. Kernels are Go closures
// executed by a per-stream worker; a panicking kernel is treated as a
// device-side assert and surfaces as cudaErrorAssert on a later status
// check, reproducing the deferred fault model of the real runtime.
package cudart

import (
	"fmt"
	"os"
	"sync"

	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

// Kernel is a unit of work enqueued on a stream.
type Kernel func() cuerr.Status

// Runtime emulates the CUDA runtime on the host. The zero value is not
// usable; construct with New.
type Runtime struct {
	mu      sync.Mutex
	last    cuerr.Status
	streams map[cuerr.Stream]*stream
	nextID  cuerr.Stream
}

type stream struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Kernel
	pending int
	status  cuerr.Status
	closed  bool
}

// New returns an emulated runtime with no streams.
func New() *Runtime {
	return &Runtime{streams: make(map[cuerr.Stream]*stream)}
}

var (
	defaultOnce sync.Once
	defaultRT   *Runtime
)

// Default returns the process-wide emulated runtime, registering it as the
// active cuerr runtime on first use.
func Default() *Runtime {
	defaultOnce.Do(func() {
		defaultRT = New()
		cuerr.RegisterRuntime(defaultRT)
	})
	return defaultRT
}

// StreamCreate creates an execution stream backed by a worker goroutine.
func (r *Runtime) StreamCreate() (cuerr.Stream, cuerr.Status) {
	s := &stream{}
	s.cond = sync.NewCond(&s.mu)

	r.mu.Lock()
	r.nextID++
	h := r.nextID
	r.streams[h] = s
	r.mu.Unlock()

	go r.serve(s)
	return h, Success
}

// StreamDestroy unregisters a stream. Work already enqueued is drained by
// the worker before it exits.
func (r *Runtime) StreamDestroy(h cuerr.Stream) cuerr.Status {
	r.mu.Lock()
	s, ok := r.streams[h]
	delete(r.streams, h)
	r.mu.Unlock()
	if !ok {
		r.recordError(ErrInvalidResourceHandle)
		return ErrInvalidResourceHandle
	}

	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
	return Success
}

// Launch enqueues a kernel on a stream. Kernels on one stream execute in
// submission order; across streams ordering is unspecified.
func (r *Runtime) Launch(h cuerr.Stream, k Kernel) cuerr.Status {
	if k == nil {
		r.recordError(ErrInvalidValue)
		return ErrInvalidValue
	}
	s := r.lookup(h)
	if s == nil {
		r.recordError(ErrInvalidResourceHandle)
		return ErrInvalidResourceHandle
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		r.recordError(ErrInvalidResourceHandle)
		return ErrInvalidResourceHandle
	}
	s.queue = append(s.queue, k)
	s.pending++
	s.cond.Signal()
	s.mu.Unlock()
	return Success
}

// StreamSynchronize blocks until all work enqueued on the stream has
// completed and returns the first failure observed on it. A stream that has
// failed stays failed, as on the real runtime.
func (r *Runtime) StreamSynchronize(h cuerr.Stream) cuerr.Status {
	s := r.lookup(h)
	if s == nil {
		r.recordError(ErrInvalidResourceHandle)
		return ErrInvalidResourceHandle
	}

	s.mu.Lock()
	for s.pending > 0 {
		s.cond.Wait()
	}
	st := s.status
	s.mu.Unlock()
	return st
}

// GetLastError returns the sticky last error and clears it.
func (r *Runtime) GetLastError() cuerr.Status {
	r.mu.Lock()
	st := r.last
	r.last = Success
	r.mu.Unlock()
	return st
}

// PeekAtLastError returns the sticky last error without clearing it.
func (r *Runtime) PeekAtLastError() cuerr.Status {
	r.mu.Lock()
	st := r.last
	r.mu.Unlock()
	return st
}

// ErrorName implements cuerr.Runtime.
func (r *Runtime) ErrorName(s cuerr.Status) string { return ErrorName(s) }

// ErrorString implements cuerr.Runtime.
func (r *Runtime) ErrorString(s cuerr.Status) string { return ErrorString(s) }

// Assert is the device-side counterpart of cuerr.Expects for code running
// inside a kernel: a kernel cannot raise a structured error, so a violated
// expectation halts the work unit and the host observes cudaErrorAssert on
// a later status check.
func Assert(cond bool, reason string) {
	if !cond {
		panic("assertion failed: " + reason)
	}
}

func (r *Runtime) lookup(h cuerr.Stream) *stream {
	r.mu.Lock()
	s := r.streams[h]
	r.mu.Unlock()
	return s
}

func (r *Runtime) recordError(st cuerr.Status) {
	r.mu.Lock()
	if r.last == Success {
		r.last = st
	}
	r.mu.Unlock()
}

func (r *Runtime) serve(s *stream) {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		k := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		st := runKernel(k)

		// Record the sticky error before waking synchronizers, so a
		// failure is never observable on the stream but absent from
		// the last-error flag.
		if st != Success {
			r.recordError(st)
		}

		s.mu.Lock()
		s.pending--
		if st != Success && s.status == Success {
			s.status = st
		}
		s.cond.Broadcast()
		s.mu.Unlock()
	}
}

func runKernel(k Kernel) (st cuerr.Status) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "cuproj device assert: %v\n", rec)
			st = ErrAssert
		}
	}()
	return k()
}
