package proj

// Ellipsoid describes a reference ellipsoid by semi-major axis (meters) and
// flattening.
type Ellipsoid struct {
	A float64
	F float64
}

// WGS84 is the ellipsoid underlying every CRS this package supports.
var WGS84 = Ellipsoid{A: 6378137.0, F: 1 / 298.257223563}

// E2 returns the squared first eccentricity.
func (e Ellipsoid) E2() float64 {
	return e.F * (2 - e.F)
}

// Ep2 returns the squared second eccentricity.
func (e Ellipsoid) Ep2() float64 {
	e2 := e.E2()
	return e2 / (1 - e2)
}
