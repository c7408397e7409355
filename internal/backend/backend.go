// Package backend selects the CUDA runtime implementation the library
// reports errors through: the real device runtime when compiled with the
// cuda build tag, or the host emulation otherwise.
package backend

import (
	"fmt"
	"strings"

	"github.com/cuproj-go/cuproj/pkg/cuerr"
)

const (
	CPU  = "cpu"
	CUDA = "cuda"
	Auto = "auto"
)

// Backend supplies a runtime and reports the devices behind it.
type Backend interface {
	Name() string
	Runtime() cuerr.Runtime
	DeviceCount() (int, error)
}

// Normalize canonicalizes a backend name, defaulting empty to Auto.
func Normalize(name string) (string, error) {
	b := strings.ToLower(strings.TrimSpace(name))
	if b == "" {
		return Auto, nil
	}
	switch b {
	case CPU, CUDA, Auto:
		return b, nil
	default:
		return "", fmt.Errorf("unknown backend %q (expected auto, cpu, or cuda)", name)
	}
}

// Has reports whether a backend is compiled into this binary.
func Has(name string) bool {
	switch name {
	case CPU:
		return true
	case CUDA:
		return cudaEnabled
	default:
		return false
	}
}

// Available returns a comma-separated list of compiled-in backends.
func Available() string {
	entries := []string{CPU}
	if Has(CUDA) {
		entries = append(entries, CUDA)
	}
	return strings.Join(entries, ",")
}

// Select resolves a backend by name and registers its runtime as the
// active cuerr runtime. Auto prefers CUDA when compiled in and usable.
func Select(name string) (Backend, error) {
	normalized, err := Normalize(name)
	if err != nil {
		return nil, err
	}

	var b Backend
	switch normalized {
	case CPU:
		b, err = newCPU()
	case CUDA:
		b, err = newCUDA()
	case Auto:
		if cudaEnabled {
			if b, err = newCUDA(); err == nil {
				break
			}
		}
		b, err = newCPU()
	}
	if err != nil {
		return nil, err
	}
	cuerr.RegisterRuntime(b.Runtime())
	return b, nil
}
