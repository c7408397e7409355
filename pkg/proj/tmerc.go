package proj

import "math"

// Universal Transverse Mercator parameters.
const (
	utmScaleFactor   = 0.9996
	utmFalseEasting  = 500000.0
	utmFalseNorthing = 10000000.0
)

// transverseMercator evaluates the Transverse Mercator projection with the
// usual series expansions (Snyder, Map Projections: A Working Manual,
// equations 8-9..8-25). Angles are radians, distances meters.
type transverseMercator struct {
	ell  Ellipsoid
	lon0 float64
	k0   float64
	fe   float64
	fn   float64
}

func newUTM(zone int, south bool) transverseMercator {
	tm := transverseMercator{
		ell:  WGS84,
		lon0: float64(zone*6-183) * math.Pi / 180,
		k0:   utmScaleFactor,
		fe:   utmFalseEasting,
	}
	if south {
		tm.fn = utmFalseNorthing
	}
	return tm
}

// forward maps geodetic lon/lat to easting/northing.
func (tm transverseMercator) forward(lon, lat float64) (float64, float64) {
	e2 := tm.ell.E2()
	ep2 := tm.ell.Ep2()

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)

	n := tm.ell.A / math.Sqrt(1-e2*sinLat*sinLat)
	t := tanLat * tanLat
	c := ep2 * cosLat * cosLat
	a := (lon - tm.lon0) * cosLat

	a2 := a * a
	a3 := a2 * a
	a4 := a2 * a2
	a5 := a4 * a
	a6 := a4 * a2
	m := tm.meridianArc(lat)

	x := tm.k0*n*(a+(1-t+c)*a3/6+(5-18*t+t*t+72*c-58*ep2)*a5/120) + tm.fe
	y := tm.k0*(m+n*tanLat*(a2/2+(5-t+9*c+4*c*c)*a4/24+(61-58*t+t*t+600*c-330*ep2)*a6/720)) + tm.fn
	return x, y
}

// inverse maps easting/northing back to geodetic lon/lat.
func (tm transverseMercator) inverse(x, y float64) (float64, float64) {
	e2 := tm.ell.E2()
	ep2 := tm.ell.Ep2()
	e4 := e2 * e2
	e6 := e4 * e2

	m := (y - tm.fn) / tm.k0
	mu := m / (tm.ell.A * (1 - e2/4 - 3*e4/64 - 5*e6/256))

	sqrt1e2 := math.Sqrt(1 - e2)
	e1 := (1 - sqrt1e2) / (1 + sqrt1e2)
	e1p2 := e1 * e1
	e1p3 := e1p2 * e1
	e1p4 := e1p2 * e1p2

	phi1 := mu +
		(3*e1/2-27*e1p3/32)*math.Sin(2*mu) +
		(21*e1p2/16-55*e1p4/32)*math.Sin(4*mu) +
		(151*e1p3/96)*math.Sin(6*mu) +
		(1097*e1p4/512)*math.Sin(8*mu)

	sin1 := math.Sin(phi1)
	cos1 := math.Cos(phi1)
	tan1 := math.Tan(phi1)

	c1 := ep2 * cos1 * cos1
	t1 := tan1 * tan1
	oneMinus := 1 - e2*sin1*sin1
	n1 := tm.ell.A / math.Sqrt(oneMinus)
	r1 := tm.ell.A * (1 - e2) / (oneMinus * math.Sqrt(oneMinus))
	d := (x - tm.fe) / (n1 * tm.k0)

	d2 := d * d
	d3 := d2 * d
	d4 := d2 * d2
	d5 := d4 * d
	d6 := d4 * d2

	lat := phi1 - (n1*tan1/r1)*(d2/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*d4/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d6/720)
	lon := tm.lon0 + (d-(1+2*t1+c1)*d3/6+
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d5/120)/cos1
	return lon, lat
}

// meridianArc returns the distance along the meridian from the equator.
func (tm transverseMercator) meridianArc(lat float64) float64 {
	e2 := tm.ell.E2()
	e4 := e2 * e2
	e6 := e4 * e2
	return tm.ell.A * ((1-e2/4-3*e4/64-5*e6/256)*lat -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*lat) +
		(15*e4/256+45*e6/1024)*math.Sin(4*lat) -
		(35*e6/3072)*math.Sin(6*lat))
}
