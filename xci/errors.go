package xci

import (
	"fmt"
)

// The input path doesn't exist (or isn't a regular file)
type FileNotFoundError struct {
	Path string
}

func (m *FileNotFoundError) Error() string {
	return fmt.Sprintf("XCI cannot be found: %s", m.Path)
}

// The file ended before a full header could be read
type TruncatedHeaderError struct {
	Expected int
	Found    int
}

func (m *TruncatedHeaderError) Error() string {
	return fmt.Sprintf("Not enough data for XCI header: expected %d bytes, found %d", m.Expected, m.Found)
}

// The header's capacity code isn't one we know how to size
type UnknownCapacityError struct {
	Code uint8
}

func (m *UnknownCapacityError) Error() string {
	return fmt.Sprintf("Could not determine cart size from code 0x%02X. Sizes supported: 2G, 4G, 8G, 16G, 32G", m.Code)
}

// The file is neither validly trimmed nor validly padded
type SizeOutOfRangeError struct {
	Size          int64
	PaddingOffset int64
	CartCapacity  int64
}

func (m *SizeOutOfRangeError) Error() string {
	return fmt.Sprintf("File size %d is outside the valid range [%d, %d]", m.Size, m.PaddingOffset, m.CartCapacity)
}

// Something other than 0xFF was found where only padding should be. We
// purposefully don't say where.
type UnexpectedPaddingDataError struct {
	Path string
}

func (m *UnexpectedPaddingDataError) Error() string {
	return fmt.Sprintf("Unexpected data found in padding of %s! Refusing to trim", m.Path)
}
