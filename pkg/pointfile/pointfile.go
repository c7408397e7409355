// Package pointfile implements the CPF coordinate batch container.
//
// CPF is a single-file, memory-mappable format for flat lists of
// lon/lat or easting/northing pairs. It carries data only and never
// implies which CRS the coordinates are expressed in.
package pointfile

import "errors"

// CPF global constants must never change.
const (
	// MagicCPF is the file magic for all CPF containers.
	// It is encoded as "CPF\0".
	MagicCPF = "CPF\x00"

	// Current Major Version: Any change indicates a breaking format change.
	CurrentMajor uint16 = 1

	// Current Minor Version: Versions may add new optional header fields.
	CurrentMinor uint16 = 0
)

var (
	ErrInvalidMagic     = errors.New("invalid CPF magic")
	ErrUnsupportedMajor = errors.New("unsupported CPF major version")
	ErrCorruptFile      = errors.New("corrupt CPF file")
)

// Header is the fixed-size CPF file header. All fields are little-endian
// on disk.
type Header struct {
	Magic      [4]byte
	Major      uint16
	Minor      uint16
	HeaderSize uint32
	PairCount  uint32
	FileSize   uint64
}

func (h *Header) Valid() bool {
	if string(h.Magic[:]) != MagicCPF {
		return false
	}
	if h.HeaderSize < headerSize {
		return false
	}
	return true
}

func (h *Header) Compatible() bool {
	return h.Major == CurrentMajor
}
