package pointfile

import "encoding/binary"

const (
	headerSize = 24
	pairSize   = 16
)

func decodeHeader(b []byte) (Header, bool) {
	if len(b) < headerSize {
		return Header{}, false
	}
	var h Header
	copy(h.Magic[:], b[0:4])
	h.Major = binary.LittleEndian.Uint16(b[4:6])
	h.Minor = binary.LittleEndian.Uint16(b[6:8])
	h.HeaderSize = binary.LittleEndian.Uint32(b[8:12])
	h.PairCount = binary.LittleEndian.Uint32(b[12:16])
	h.FileSize = binary.LittleEndian.Uint64(b[16:24])
	return h, true
}

func encodeHeader(b []byte, h Header) bool {
	if len(b) < headerSize {
		return false
	}
	copy(b[0:4], h.Magic[:])
	binary.LittleEndian.PutUint16(b[4:6], h.Major)
	binary.LittleEndian.PutUint16(b[6:8], h.Minor)
	binary.LittleEndian.PutUint32(b[8:12], h.HeaderSize)
	binary.LittleEndian.PutUint32(b[12:16], h.PairCount)
	binary.LittleEndian.PutUint64(b[16:24], h.FileSize)
	return true
}
