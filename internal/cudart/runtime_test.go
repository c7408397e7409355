package cudart

import (
	"errors"
	"strings"
	"testing"

	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

func newStream(t *testing.T, rt *Runtime) cuerr.Stream {
	t.Helper()
	h, st := rt.StreamCreate()
	if st != Success {
		t.Fatalf("StreamCreate: status %d", st)
	}
	t.Cleanup(func() { rt.StreamDestroy(h) })
	return h
}

func TestStreamExecutesInSubmissionOrder(t *testing.T) {
	t.Parallel()
	rt := New()
	h := newStream(t, rt)

	var got []int
	for i := 0; i < 16; i++ {
		if st := rt.Launch(h, func() cuerr.Status {
			got = append(got, i)
			return Success
		}); st != Success {
			t.Fatalf("Launch %d: status %d", i, st)
		}
	}
	if st := rt.StreamSynchronize(h); st != Success {
		t.Fatalf("StreamSynchronize: status %d", st)
	}
	if len(got) != 16 {
		t.Fatalf("executed %d kernels, want 16", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("kernel order: got %v", got)
		}
	}
	if st := rt.PeekAtLastError(); st != Success {
		t.Fatalf("sticky error after clean run: %d", st)
	}
}

func TestKernelFailureIsDeferred(t *testing.T) {
	t.Parallel()
	rt := New()
	h := newStream(t, rt)

	if st := rt.Launch(h, func() cuerr.Status { return ErrLaunchFailure }); st != Success {
		t.Fatalf("Launch: status %d", st)
	}
	if st := rt.StreamSynchronize(h); st != ErrLaunchFailure {
		t.Fatalf("StreamSynchronize: got %d, want %d", st, ErrLaunchFailure)
	}
	if st := rt.PeekAtLastError(); st != ErrLaunchFailure {
		t.Fatalf("PeekAtLastError: got %d, want %d", st, ErrLaunchFailure)
	}
	// Peek must not clear.
	if st := rt.PeekAtLastError(); st != ErrLaunchFailure {
		t.Fatalf("PeekAtLastError cleared the flag: %d", st)
	}
	if st := rt.GetLastError(); st != ErrLaunchFailure {
		t.Fatalf("GetLastError: got %d, want %d", st, ErrLaunchFailure)
	}
	if st := rt.GetLastError(); st != Success {
		t.Fatalf("GetLastError did not clear: %d", st)
	}
}

func TestAssertHaltsWorkUnit(t *testing.T) {
	t.Parallel()
	rt := New()
	h := newStream(t, rt)

	ran := false
	if st := rt.Launch(h, func() cuerr.Status {
		Assert(false, "zone in range")
		ran = true
		return Success
	}); st != Success {
		t.Fatalf("Launch: status %d", st)
	}
	if st := rt.StreamSynchronize(h); st != ErrAssert {
		t.Fatalf("StreamSynchronize: got %d, want %d", st, ErrAssert)
	}
	if ran {
		t.Fatal("kernel continued past a failed assertion")
	}
}

func TestInvalidStreamHandle(t *testing.T) {
	t.Parallel()
	rt := New()

	if st := rt.Launch(cuerr.Stream(99), func() cuerr.Status { return Success }); st != ErrInvalidResourceHandle {
		t.Fatalf("Launch on bogus handle: got %d", st)
	}
	if st := rt.StreamSynchronize(cuerr.Stream(99)); st != ErrInvalidResourceHandle {
		t.Fatalf("StreamSynchronize on bogus handle: got %d", st)
	}
	if st := rt.GetLastError(); st != ErrInvalidResourceHandle {
		t.Fatalf("sticky error: got %d, want %d", st, ErrInvalidResourceHandle)
	}
}

func TestDestroyedStreamRejectsWork(t *testing.T) {
	t.Parallel()
	rt := New()
	h, st := rt.StreamCreate()
	if st != Success {
		t.Fatalf("StreamCreate: status %d", st)
	}
	if st := rt.StreamDestroy(h); st != Success {
		t.Fatalf("StreamDestroy: status %d", st)
	}
	if st := rt.StreamDestroy(h); st != ErrInvalidResourceHandle {
		t.Fatalf("double destroy: got %d", st)
	}
	if st := rt.Launch(h, func() cuerr.Status { return Success }); st != ErrInvalidResourceHandle {
		t.Fatalf("Launch after destroy: got %d", st)
	}
}

func TestStatusDecoding(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status cuerr.Status
		name   string
		desc   string
	}{
		{Success, "cudaSuccess", "no error"},
		{ErrInvalidValue, "cudaErrorInvalidValue", "invalid argument"},
		{ErrInvalidDevice, "cudaErrorInvalidDevice", "invalid device ordinal"},
		{ErrAssert, "cudaErrorAssert", "device-side assert triggered"},
		{cuerr.Status(123456), "unrecognized error code", "unrecognized error code"},
	}
	for _, tc := range cases {
		if got := ErrorName(tc.status); got != tc.name {
			t.Errorf("ErrorName(%d): got %q, want %q", tc.status, got, tc.name)
		}
		if got := ErrorString(tc.status); got != tc.desc {
			t.Errorf("ErrorString(%d): got %q, want %q", tc.status, got, tc.desc)
		}
	}
}

func TestGuardsAgainstEmulatedRuntime(t *testing.T) {
	rt := New()
	cuerr.RegisterRuntime(rt)
	t.Cleanup(func() { cuerr.RegisterRuntime(nil) })

	h := newStream(t, rt)
	if st := rt.Launch(h, func() cuerr.Status { return ErrIllegalAddress }); st != Success {
		t.Fatalf("Launch: status %d", st)
	}

	err := cuerr.CudaTry(rt.StreamSynchronize(h))
	if err == nil {
		t.Fatal("CudaTry returned nil for a failed stream")
	}
	var cudaErr *cuerr.CudaError
	if !errors.As(err, &cudaErr) {
		t.Fatalf("expected *cuerr.CudaError, got %T", err)
	}
	if !strings.Contains(err.Error(), "700 cudaErrorIllegalAddress an illegal memory access was encountered") {
		t.Fatalf("decode missing in %q", err.Error())
	}
	// The guard cleared the sticky flag, so a fresh stream checks clean.
	clean := newStream(t, rt)
	if err := cuerr.CheckCuda(clean); err != nil {
		t.Fatalf("CheckCuda after clear: %v", err)
	}
}
