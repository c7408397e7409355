package proj

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cuproj-go/cuproj/internal/cudart"
	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

func newWGS84ToUTM33(t *testing.T) *Transformer {
	t.Helper()
	tr, err := NewTransformer("EPSG:4326", "EPSG:32633")
	if err != nil {
		t.Fatalf("NewTransformer: %v", err)
	}
	return tr
}

func TestTransformForwardAndBack(t *testing.T) {
	tr := newWGS84ToUTM33(t)

	src := []Coord{
		{X: 15, Y: 0},
		{X: 14.5, Y: 46.05},
		{X: 16.37, Y: 48.21},
	}
	projected := make([]Coord, len(src))
	if err := tr.Transform(Forward, projected, src); err != nil {
		t.Fatalf("forward: %v", err)
	}
	if math.Abs(projected[0].X-500000) > 1e-6 || math.Abs(projected[0].Y) > 1e-6 {
		t.Fatalf("central meridian point: got %+v", projected[0])
	}

	back := make([]Coord, len(src))
	if err := tr.Transform(Inverse, back, projected); err != nil {
		t.Fatalf("inverse: %v", err)
	}
	for i := range src {
		if math.Abs(back[i].X-src[i].X) > 1e-7 || math.Abs(back[i].Y-src[i].Y) > 1e-7 {
			t.Fatalf("round trip %d: got %+v, want %+v", i, back[i], src[i])
		}
	}
}

func TestTransformLargeBatchInPlace(t *testing.T) {
	tr := newWGS84ToUTM33(t)

	const n = 3000 // spans multiple kernel launches
	coords := make([]Coord, n)
	want := make([]Coord, n)
	for i := range coords {
		coords[i] = Coord{X: 12 + float64(i%600)/100, Y: -80 + float64(i)/20}
		want[i] = coords[i]
	}
	if err := tr.Transform(Forward, coords, coords); err != nil {
		t.Fatalf("forward in place: %v", err)
	}
	if err := tr.Transform(Inverse, coords, coords); err != nil {
		t.Fatalf("inverse in place: %v", err)
	}
	for i := range coords {
		if math.Abs(coords[i].X-want[i].X) > 1e-7 || math.Abs(coords[i].Y-want[i].Y) > 1e-7 {
			t.Fatalf("round trip %d: got %+v, want %+v", i, coords[i], want[i])
		}
	}
}

func TestTransformPreconditions(t *testing.T) {
	tr := newWGS84ToUTM33(t)

	cases := []struct {
		name   string
		dir    Direction
		dst    []Coord
		src    []Coord
		reason string
	}{
		{"nil source", Forward, make([]Coord, 1), nil, "source coordinates must not be nil"},
		{"nil destination", Forward, nil, make([]Coord, 1), "destination coordinates must not be nil"},
		{"length mismatch", Forward, make([]Coord, 2), make([]Coord, 3), "destination length must match source length"},
		{"bad direction", Direction(99), make([]Coord, 1), make([]Coord, 1), "unknown transform direction"},
	}
	for _, tc := range cases {
		err := tr.Transform(tc.dir, tc.dst, tc.src)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var logicErr *cuerr.LogicError
		if !errors.As(err, &logicErr) {
			t.Fatalf("%s: expected *cuerr.LogicError, got %T (%v)", tc.name, err, err)
		}
		if !strings.Contains(err.Error(), tc.reason) {
			t.Fatalf("%s: %q does not mention %q", tc.name, err.Error(), tc.reason)
		}
		if !strings.HasPrefix(err.Error(), "cuProj failure at: ") {
			t.Fatalf("%s: unexpected message prefix %q", tc.name, err.Error())
		}
	}
}

func TestTransformDeviceAssert(t *testing.T) {
	tr := newWGS84ToUTM33(t)

	cases := []struct {
		name string
		src  []Coord
	}{
		{"nan coordinate", []Coord{{X: math.NaN(), Y: 10}}},
		{"latitude out of range", []Coord{{X: 15, Y: 95}}},
	}
	for _, tc := range cases {
		dst := make([]Coord, len(tc.src))
		err := tr.Transform(Forward, dst, tc.src)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var cudaErr *cuerr.CudaError
		if !errors.As(err, &cudaErr) {
			t.Fatalf("%s: expected *cuerr.CudaError, got %T (%v)", tc.name, err, err)
		}
		if cudaErr.Status != cudart.ErrAssert {
			t.Fatalf("%s: status %d, want %d", tc.name, cudaErr.Status, cudart.ErrAssert)
		}
		if !strings.Contains(err.Error(), "device-side assert triggered") {
			t.Fatalf("%s: decode missing in %q", tc.name, err.Error())
		}
		// The guard cleared the sticky flag for subsequent work.
		if st := cudart.Default().PeekAtLastError(); st != cudart.Success {
			t.Fatalf("%s: sticky error left set: %d", tc.name, st)
		}
	}
}

func TestTransformEmptyBatch(t *testing.T) {
	tr := newWGS84ToUTM33(t)
	if err := tr.Transform(Forward, []Coord{}, []Coord{}); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
}

func TestNewTransformerRejectsSameKind(t *testing.T) {
	for _, pair := range [][2]string{
		{"EPSG:4326", "EPSG:4326"},
		{"EPSG:32633", "EPSG:32733"},
	} {
		_, err := NewTransformer(pair[0], pair[1])
		if err == nil {
			t.Fatalf("NewTransformer(%s, %s): expected error", pair[0], pair[1])
		}
		var logicErr *cuerr.LogicError
		if !errors.As(err, &logicErr) {
			t.Fatalf("expected *cuerr.LogicError, got %T", err)
		}
	}
}

func TestProjectedSourceForward(t *testing.T) {
	tr, err := NewTransformer("EPSG:32633", "EPSG:4326")
	if err != nil {
		t.Fatalf("NewTransformer: %v", err)
	}
	dst := make([]Coord, 1)
	if err := tr.Transform(Forward, dst, []Coord{{X: 500000, Y: 0}}); err != nil {
		t.Fatalf("forward: %v", err)
	}
	if math.Abs(dst[0].X-15) > 1e-9 || math.Abs(dst[0].Y) > 1e-9 {
		t.Fatalf("unprojected central meridian point: got %+v", dst[0])
	}
}
