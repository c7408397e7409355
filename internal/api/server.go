// Package api serves coordinate transforms over HTTP.
package api

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/cuproj-go/cuproj/internal/backend"
	"github.com/cuproj-go/cuproj/internal/logger"
	"github.com/cuproj-go/cuproj/pkg/proj"
)

type Server struct {
	log logger.Logger
}

func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{log: log}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/healthz", s.handleHealthz)
	e.POST("/v1/transform", s.handleTransform)
}

func (s *Server) handleHealthz(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, HealthResponse{
		Status:   "ok",
		Backends: backend.Available(),
	})
}

func (s *Server) handleTransform(c *echo.Context) error {
	req, err := decodeJSON[TransformRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	if req.SourceCRS == "" || req.TargetCRS == "" {
		return writeBadRequest(c, "source_crs and target_crs are required")
	}

	dir := proj.Forward
	direction := req.Direction
	switch direction {
	case "":
		direction = "forward"
	case "forward":
	case "inverse":
		dir = proj.Inverse
	default:
		return writeBadRequest(c, fmt.Sprintf("unknown direction %q (expected forward or inverse)", req.Direction))
	}

	tr, err := proj.NewTransformer(req.SourceCRS, req.TargetCRS)
	if err != nil {
		return writeTransformError(c, err)
	}

	coords := make([]proj.Coord, len(req.Coordinates))
	for i, p := range req.Coordinates {
		coords[i] = proj.Coord{X: p[0], Y: p[1]}
	}
	out := make([]proj.Coord, len(coords))
	if err := tr.Transform(dir, out, coords); err != nil {
		s.log.Error("transform failed", "source", req.SourceCRS, "target", req.TargetCRS, "error", err)
		return writeTransformError(c, err)
	}

	resp := TransformResponse{
		ID:          "txf-" + uuid.NewString(),
		SourceCRS:   req.SourceCRS,
		TargetCRS:   req.TargetCRS,
		Direction:   direction,
		Coordinates: make([][2]float64, len(out)),
	}
	for i, p := range out {
		resp.Coordinates[i] = [2]float64{p.X, p.Y}
	}
	s.log.Info("transform", "id", resp.ID, "source", req.SourceCRS, "target", req.TargetCRS, "count", len(out))
	return writeJSON(c, http.StatusOK, resp)
}
