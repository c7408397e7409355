// Package cpu provides the host backend: the emulated cudart runtime with
// a single virtual device.
package cpu

import (
	"github.com/cuproj-go/cuproj/internal/cudart"
	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

type Backend struct {
	rt *cudart.Runtime
}

func New() (*Backend, error) {
	return &Backend{rt: cudart.Default()}, nil
}

func (b *Backend) Name() string {
	return "cpu"
}

func (b *Backend) Runtime() cuerr.Runtime {
	return b.rt
}

func (b *Backend) DeviceCount() (int, error) {
	return 1, nil
}
