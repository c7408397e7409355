package proj

import (
	"math"

	"github.com/cuproj-go/cuproj/internal/cudart"
	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

// Direction selects which way a Transformer maps coordinates.
type Direction int

const (
	// Forward maps from the source CRS to the target CRS.
	Forward Direction = iota
	// Inverse maps from the target CRS back to the source CRS.
	Inverse
)

// Coord is a coordinate pair: lon/lat in degrees on the geodetic side,
// easting/northing in meters on the projected side.
type Coord struct {
	X float64
	Y float64
}

// chunkSize is the number of coordinates handed to one kernel launch.
const chunkSize = 1024

// Transformer converts coordinate batches between a geodetic CRS and a UTM
// CRS. It is safe for concurrent use; each Transform call runs on its own
// stream.
type Transformer struct {
	src CRS
	dst CRS
	tm  transverseMercator
	rt  *cudart.Runtime
}

// NewTransformer builds a transformer between two CRS strings, one geodetic
// and one projected, e.g. ("EPSG:4326", "EPSG:32633").
func NewTransformer(srcCRS, dstCRS string) (*Transformer, error) {
	src, err := ParseCRS(srcCRS)
	if err != nil {
		return nil, err
	}
	dst, err := ParseCRS(dstCRS)
	if err != nil {
		return nil, err
	}
	if err := cuerr.Expects(src.Geographic != dst.Geographic, "transform must pair a geodetic CRS with a projected CRS"); err != nil {
		return nil, err
	}

	utm := src
	if src.Geographic {
		utm = dst
	}
	return &Transformer{
		src: src,
		dst: dst,
		tm:  newUTM(utm.Zone, utm.South),
		rt:  cudart.Default(),
	}, nil
}

// Source returns the source CRS.
func (t *Transformer) Source() CRS { return t.src }

// Target returns the target CRS.
func (t *Transformer) Target() CRS { return t.dst }

// Transform maps src into dst, in the given direction. dst and src must
// have equal length and may alias.
func (t *Transformer) Transform(dir Direction, dst, src []Coord) error {
	if err := cuerr.Expects(src != nil, "source coordinates must not be nil"); err != nil {
		return err
	}
	if err := cuerr.Expects(dst != nil, "destination coordinates must not be nil"); err != nil {
		return err
	}
	if err := cuerr.Expects(len(dst) == len(src), "destination length must match source length"); err != nil {
		return err
	}

	var project bool
	switch dir {
	case Forward:
		project = t.src.Geographic
	case Inverse:
		project = !t.src.Geographic
	default:
		return cuerr.Fail("unknown transform direction")
	}
	if len(src) == 0 {
		return nil
	}

	stream, st := t.rt.StreamCreate()
	if err := cuerr.CudaTry(st); err != nil {
		return err
	}
	defer t.rt.StreamDestroy(stream)

	for start := 0; start < len(src); start += chunkSize {
		end := min(start+chunkSize, len(src))
		in := src[start:end]
		out := dst[start:end]
		st := t.rt.Launch(stream, func() cuerr.Status {
			t.runChunk(project, out, in)
			return cudart.Success
		})
		if err := cuerr.CudaTry(st); err != nil {
			return err
		}
	}

	if err := cuerr.CudaTry(t.rt.StreamSynchronize(stream)); err != nil {
		return err
	}
	return cuerr.CheckCuda(stream)
}

const degToRad = math.Pi / 180

// runChunk is the kernel body. It runs inside a stream work unit, so its
// assertions halt the unit rather than raise.
func (t *Transformer) runChunk(project bool, dst, src []Coord) {
	for i, c := range src {
		cudart.Assert(!math.IsNaN(c.X) && !math.IsNaN(c.Y), "coordinate must be finite")
		if project {
			cudart.Assert(c.Y >= -90 && c.Y <= 90, "latitude within [-90, 90]")
			x, y := t.tm.forward(c.X*degToRad, c.Y*degToRad)
			dst[i] = Coord{X: x, Y: y}
		} else {
			lon, lat := t.tm.inverse(c.X, c.Y)
			dst[i] = Coord{X: lon / degToRad, Y: lat / degToRad}
		}
	}
}
