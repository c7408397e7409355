package api

// TransformRequest is the body of POST /v1/transform. Coordinates are
// [x, y] pairs: lon/lat degrees on the geodetic side, easting/northing
// meters on the projected side.
type TransformRequest struct {
	SourceCRS   string       `json:"source_crs"`
	TargetCRS   string       `json:"target_crs"`
	Direction   string       `json:"direction,omitempty"`
	Coordinates [][2]float64 `json:"coordinates"`
}

type TransformResponse struct {
	ID          string       `json:"id"`
	SourceCRS   string       `json:"source_crs"`
	TargetCRS   string       `json:"target_crs"`
	Direction   string       `json:"direction"`
	Coordinates [][2]float64 `json:"coordinates"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Backends string `json:"backends"`
}

type ErrorBody struct {
	Message string `json:"message,omitempty"`
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
}
