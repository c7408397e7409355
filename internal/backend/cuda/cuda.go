//go:build cuda

package cuda

import (
	"fmt"

	"github.com/cuproj-go/cuproj/internal/backend/cuda/native"
	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

type Backend struct {
	rt *native.Runtime
}

func New() (*Backend, error) {
	count, err := native.DeviceCount()
	if err != nil {
		return nil, fmt.Errorf("cuda device query failed: %w", err)
	}
	if count < 1 {
		return nil, fmt.Errorf("no cuda devices detected")
	}
	return &Backend{rt: native.New()}, nil
}

func (b *Backend) Name() string {
	return "cuda"
}

func (b *Backend) Runtime() cuerr.Runtime {
	return b.rt
}

func (b *Backend) DeviceCount() (int, error) {
	return native.DeviceCount()
}
