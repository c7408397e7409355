package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	NewServer(nil).Register(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	e := newTestEcho()
	rec := doJSON(t, e, http.MethodGet, "/v1/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var health HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" {
		t.Fatalf("health status: %q", health.Status)
	}
	if !strings.Contains(health.Backends, "cpu") {
		t.Fatalf("backends missing cpu: %q", health.Backends)
	}
}

func TestTransformForward(t *testing.T) {
	e := newTestEcho()
	rec := doJSON(t, e, http.MethodPost, "/v1/transform",
		`{"source_crs":"EPSG:4326","target_crs":"EPSG:32633","coordinates":[[15,0],[14.5,46.05]]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp TransformResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.ID, "txf-") {
		t.Fatalf("response id: %q", resp.ID)
	}
	if resp.Direction != "forward" {
		t.Fatalf("direction: %q", resp.Direction)
	}
	if len(resp.Coordinates) != 2 {
		t.Fatalf("coordinate count: %d", len(resp.Coordinates))
	}
	if math.Abs(resp.Coordinates[0][0]-500000) > 1e-6 {
		t.Fatalf("central meridian easting: %v", resp.Coordinates[0][0])
	}
}

func TestTransformRoundTripViaInverse(t *testing.T) {
	e := newTestEcho()
	rec := doJSON(t, e, http.MethodPost, "/v1/transform",
		`{"source_crs":"EPSG:4326","target_crs":"EPSG:32633","direction":"inverse","coordinates":[[500000,0]]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp TransformResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if math.Abs(resp.Coordinates[0][0]-15) > 1e-9 || math.Abs(resp.Coordinates[0][1]) > 1e-9 {
		t.Fatalf("inverse of false easting origin: %v", resp.Coordinates[0])
	}
}

func TestTransformBadRequests(t *testing.T) {
	e := newTestEcho()
	cases := []struct {
		name string
		body string
		want string
	}{
		{"malformed body", `{`, "malformed JSON body"},
		{"missing crs", `{"coordinates":[[1,2]]}`, "source_crs and target_crs are required"},
		{"bad direction", `{"source_crs":"EPSG:4326","target_crs":"EPSG:32633","direction":"sideways","coordinates":[]}`, "unknown direction"},
		{"unsupported crs", `{"source_crs":"EPSG:4326","target_crs":"EPSG:3857","coordinates":[]}`, "unsupported EPSG code"},
		{"same kind", `{"source_crs":"EPSG:4326","target_crs":"EPSG:4326","coordinates":[]}`, "geodetic CRS with a projected CRS"},
	}
	for _, tc := range cases {
		rec := doJSON(t, e, http.MethodPost, "/v1/transform", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status got %d body=%s", tc.name, rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), tc.want) {
			t.Fatalf("%s: body %q does not mention %q", tc.name, rec.Body.String(), tc.want)
		}
	}
}

func TestTransformDeviceFaultIsServerError(t *testing.T) {
	e := newTestEcho()
	rec := doJSON(t, e, http.MethodPost, "/v1/transform",
		`{"source_crs":"EPSG:4326","target_crs":"EPSG:32633","coordinates":[[15,95]]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "cuda_error") {
		t.Fatalf("error type missing in %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "device-side assert triggered") {
		t.Fatalf("decode missing in %s", rec.Body.String())
	}
}
