//go:build cuda

package backend

import (
	"github.com/cuproj-go/cuproj/internal/backend/cpu"
	"github.com/cuproj-go/cuproj/internal/backend/cuda"
)

const cudaEnabled = true

func newCPU() (Backend, error) {
	return cpu.New()
}

func newCUDA() (Backend, error) {
	return cuda.New()
}
