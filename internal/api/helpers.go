package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	data, err := io.ReadAll(r)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, newInvalidRequest("malformed JSON body")
	}
	return v, nil
}

func writeJSON(c *echo.Context, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res.WriteHeader(status)
	_, err = res.Write(data)
	return err
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg, "")
}

func writeError(c *echo.Context, status int, errType, msg, code string) error {
	return writeJSON(c, status, map[string]any{
		"error": ErrorBody{
			Message: msg,
			Type:    errType,
			Code:    code,
		},
	})
}

// writeTransformError maps the library's failure taxonomy onto HTTP:
// precondition violations are the caller's fault, runtime failures are
// ours.
func writeTransformError(c *echo.Context, err error) error {
	var logicErr *cuerr.LogicError
	if errors.As(err, &logicErr) {
		return writeBadRequest(c, err.Error())
	}
	var cudaErr *cuerr.CudaError
	if errors.As(err, &cudaErr) {
		return writeError(c, http.StatusInternalServerError, "cuda_error", err.Error(),
			strconv.Itoa(int(cudaErr.Status)))
	}
	return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "")
}
