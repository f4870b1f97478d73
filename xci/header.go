package xci

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	XciHeaderLength          = 512   // Only this much of the file is ever read for sizing
	XciSectorSize            = 512   // Padding start is stored in sectors of this size
	XciCapacityCodeIndex     = 0x10D // "Index into header for" capacity code (1 byte)
	XciPaddingStartSectorIdx = 0x118 // "" sector where padding begins (4 bytes, little endian)
)

// The only header fields the size math cares about. Nothing else in the
// header is interpreted.
type XciHeader struct {
	CapacityCode       uint8
	PaddingStartSector uint32
}

// Parse the sizing fields out of raw header data. Data must be at least
// XciHeaderLength long.
func ParseHeader(data []byte) (*XciHeader, error) {
	if len(data) < XciHeaderLength {
		return nil, &TruncatedHeaderError{Expected: XciHeaderLength, Found: len(data)}
	}
	return &XciHeader{
		CapacityCode:       data[XciCapacityCodeIndex],
		PaddingStartSector: binary.LittleEndian.Uint32(data[XciPaddingStartSectorIdx : XciPaddingStartSectorIdx+4]),
	}, nil
}

// Read exactly one header from the reader (starting wherever it currently is)
func ReadHeader(r io.Reader) (*XciHeader, error) {
	data := make([]byte, XciHeaderLength)
	read, err := io.ReadFull(r, data)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &TruncatedHeaderError{Expected: XciHeaderLength, Found: read}
		}
		return nil, err
	}
	return ParseHeader(data)
}

// Write the sizing fields into an existing header buffer. Useful for building
// test images; the rest of the buffer is left alone.
func (h *XciHeader) WriteInto(data []byte) error {
	if len(data) < XciHeaderLength {
		return &TruncatedHeaderError{Expected: XciHeaderLength, Found: len(data)}
	}
	data[XciCapacityCodeIndex] = h.CapacityCode
	binary.LittleEndian.PutUint32(data[XciPaddingStartSectorIdx:XciPaddingStartSectorIdx+4], h.PaddingStartSector)
	return nil
}

// Byte offset where padding begins
func (h *XciHeader) PaddingOffset() int64 {
	return PaddingOffset(h.PaddingStartSector)
}
