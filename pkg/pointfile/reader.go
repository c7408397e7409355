package pointfile

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

type File struct {
	Data    []byte
	Header  *Header
	mmapped bool
}

// Open maps a CPF file read-only and validates its structure.
// If mmap is unavailable, it falls back to ReadAt-based loading.
// The returned file must be closed to release any mapping.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size64 := stat.Size()
	if size64 < 0 {
		return nil, ErrCorruptFile
	}
	if size64 > int64(int(^uint(0)>>1)) {
		// cannot index this file safely as []byte on this architecture.
		return nil, ErrCorruptFile
	}
	size := int(size64)
	if size < headerSize {
		return nil, ErrCorruptFile
	}

	// Prefer mmap where available for zero-copy pair access.
	data, err := unix.Mmap(
		int(f.Fd()),
		0,
		size,
		unix.PROT_READ,
		unix.MAP_SHARED,
	)
	if err == nil {
		pf, parseErr := parseFileData(data, true)
		if parseErr != nil {
			_ = unix.Munmap(data)
			return nil, parseErr
		}
		return pf, nil
	}

	// Fallback path that does not require mmap support.
	data, err = readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return parseFileData(data, false)
}

// OpenReaderAt loads and validates a CPF from a random-access reader without mmap.
func OpenReaderAt(r io.ReaderAt, size int64) (*File, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, ErrCorruptFile
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return parseFileData(data, false)
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrCorruptFile
	}
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

func parseFileData(data []byte, mmapped bool) (*File, error) {
	if len(data) < headerSize {
		return nil, ErrCorruptFile
	}
	hdr, ok := decodeHeader(data[:headerSize])
	if !ok {
		return nil, ErrCorruptFile
	}
	if !hdr.Valid() {
		return nil, ErrInvalidMagic
	}
	if !hdr.Compatible() {
		return nil, ErrUnsupportedMajor
	}
	if hdr.FileSize != uint64(len(data)) {
		return nil, ErrCorruptFile
	}
	if uint64(hdr.HeaderSize) > uint64(len(data)) {
		return nil, ErrCorruptFile
	}

	// Pair payload bounds check.
	payload := uint64(hdr.PairCount) * pairSize
	end := uint64(hdr.HeaderSize) + payload
	if end < uint64(hdr.HeaderSize) || end != uint64(len(data)) {
		return nil, ErrCorruptFile
	}

	return &File{
		Data:    data,
		Header:  &hdr,
		mmapped: mmapped,
	}, nil
}

// Close releases file resources and any mmap backing.
func (f *File) Close() error {
	if f == nil {
		return nil
	}
	if f.Data != nil {
		var err error
		if f.mmapped {
			err = unix.Munmap(f.Data)
		}
		f.Data = nil
		f.Header = nil
		f.mmapped = false
		return err
	}
	f.Header = nil
	f.mmapped = false
	return nil
}

// Count returns the number of coordinate pairs in the file.
func (f *File) Count() int {
	if f == nil || f.Header == nil {
		return 0
	}
	return int(f.Header.PairCount)
}

// Pair returns the i-th coordinate pair.
func (f *File) Pair(i int) (x, y float64) {
	off := int(f.Header.HeaderSize) + i*pairSize
	x = math.Float64frombits(binary.LittleEndian.Uint64(f.Data[off:]))
	y = math.Float64frombits(binary.LittleEndian.Uint64(f.Data[off+8:]))
	return x, y
}

// Pairs decodes every coordinate pair into a fresh slice.
// The result does not alias the mapping and stays valid after Close.
func (f *File) Pairs() [][2]float64 {
	n := f.Count()
	out := make([][2]float64, n)
	for i := 0; i < n; i++ {
		x, y := f.Pair(i)
		out[i] = [2]float64{x, y}
	}
	return out
}
