package xci

import (
	"bytes"
	"fmt"
)

const (
	DefaultChunkSize     = 100 * MiB // Verify and pad work in chunks of this size
	DefaultHashBlockSize = 1 * MiB   // Digest reads real file data in blocks of this size
	PaddingByte          = 0xFF
)

// Run action once per chunk such that exactly length bytes are covered. All
// chunks are chunkSize except the last, which holds whatever remains
// (length mod chunkSize). A zero remainder produces no final call. Stops at
// the first error.
func EachChunk(length int64, chunkSize int, action func(size int) error) error {
	if chunkSize <= 0 {
		return fmt.Errorf("Invalid chunk size %d", chunkSize)
	}
	if length < 0 {
		return fmt.Errorf("Invalid range length %d", length)
	}
	full := length / int64(chunkSize)
	remainder := int(length % int64(chunkSize))
	for i := int64(0); i < full; i++ {
		if err := action(chunkSize); err != nil {
			return err
		}
	}
	if remainder > 0 {
		return action(remainder)
	}
	return nil
}

// The largest buffer EachChunk will ever ask for, so callers don't allocate
// a whole chunk for a tiny range
func ChunkBufferSize(length int64, chunkSize int) int {
	if length < int64(chunkSize) {
		return int(length)
	}
	return chunkSize
}

// Generate a block of padding (0xFF) of the given length
func MakePadding(length int) []byte {
	return bytes.Repeat([]byte{PaddingByte}, length)
}

// Whether the whole of data is padding. reference must be at least as long
// as data and entirely padding.
func IsPadding(data []byte, reference []byte) bool {
	return bytes.Equal(data, reference[:len(data)])
}
