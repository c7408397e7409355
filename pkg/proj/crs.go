package proj

import (
	"strconv"
	"strings"

	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

// CRS identifies a supported coordinate reference system.
type CRS struct {
	// Code is the EPSG code.
	Code int
	// Zone is the UTM zone, 0 for geodetic CRSs.
	Zone int
	// South is true for southern-hemisphere UTM zones.
	South bool
	// Geographic is true for the geodetic lon/lat CRS.
	Geographic bool
}

// ParseCRS parses an "authority:code" CRS string. Supported systems are
// EPSG:4326 (WGS84 geodetic) and EPSG:32601-32660 / EPSG:32701-32760
// (WGS84 UTM north / south).
func ParseCRS(s string) (CRS, error) {
	authority, codeStr, found := strings.Cut(strings.TrimSpace(s), ":")
	if err := cuerr.Expects(found, "CRS must have the form authority:code"); err != nil {
		return CRS{}, err
	}
	if err := cuerr.Expects(strings.EqualFold(authority, "EPSG"), "only the EPSG authority is supported"); err != nil {
		return CRS{}, err
	}
	code, convErr := strconv.Atoi(codeStr)
	if err := cuerr.Expects(convErr == nil, "EPSG code must be numeric"); err != nil {
		return CRS{}, err
	}

	switch {
	case code == 4326:
		return CRS{Code: code, Geographic: true}, nil
	case code >= 32601 && code <= 32660:
		return CRS{Code: code, Zone: code - 32600}, nil
	case code >= 32701 && code <= 32760:
		return CRS{Code: code, Zone: code - 32700, South: true}, nil
	default:
		return CRS{}, cuerr.Expects(false, "unsupported EPSG code: only WGS84 geodetic and WGS84 UTM are supported")
	}
}
