//go:build !cuda

package backend

import (
	"errors"

	"github.com/cuproj-go/cuproj/internal/backend/cpu"
)

const cudaEnabled = false

var errCUDAUnavailable = errors.New("cuda backend is not available in this build")

func newCPU() (Backend, error) {
	return cpu.New()
}

func newCUDA() (Backend, error) {
	return nil, errCUDAUnavailable
}
