package pointfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

const writerBufPairs = 4096

// Write stores the given coordinate pairs as a CPF file at path,
// replacing any existing file.
func Write(path string, pairs [][2]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFile(f, pairs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteFile writes the pairs to an already-open file. The file is
// truncated first so the on-disk size always matches header.FileSize.
func WriteFile(f *os.File, pairs [][2]float64) error {
	if f == nil {
		return errors.New("pointfile: nil file")
	}
	if uint64(len(pairs)) > uint64(^uint32(0)) {
		return fmt.Errorf("pointfile: %d pairs exceed the format limit", len(pairs))
	}

	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	var header Header
	copy(header.Magic[:], MagicCPF)
	header.Major = CurrentMajor
	header.Minor = CurrentMinor
	header.HeaderSize = headerSize
	header.PairCount = uint32(len(pairs))
	header.FileSize = headerSize + uint64(len(pairs))*pairSize

	var hdrBuf [headerSize]byte
	if !encodeHeader(hdrBuf[:], header) {
		return errors.New("pointfile: encode header failed")
	}
	if err := writeFull(f, hdrBuf[:]); err != nil {
		return err
	}

	// Batch pair encoding to keep write syscalls off the per-pair path.
	buf := make([]byte, 0, writerBufPairs*pairSize)
	for _, p := range pairs {
		var pairBuf [pairSize]byte
		binary.LittleEndian.PutUint64(pairBuf[0:8], math.Float64bits(p[0]))
		binary.LittleEndian.PutUint64(pairBuf[8:16], math.Float64bits(p[1]))
		buf = append(buf, pairBuf[:]...)
		if len(buf) == cap(buf) {
			if err := writeFull(f, buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if err := writeFull(f, buf); err != nil {
			return err
		}
	}

	return f.Sync()
}

func writeFull(f *os.File, p []byte) error {
	for len(p) > 0 {
		n, err := f.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
