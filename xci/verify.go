package xci

import (
	"io"
	"log"
	"os"
)

// Check that everything from the padding offset to the end of the file is
// padding. Only the bytes that actually exist are checked; for a fully padded
// file that's the whole [PaddingOffset, CartCapacity) range. Returns
// UnexpectedPaddingDataError on the first chunk with anything else in it.
func VerifyPadding(facts *CartFacts, chunkSize int) error {
	file, err := os.Open(facts.Path)
	if err != nil {
		return err
	}
	defer file.Close()
	return VerifyPaddingFrom(file, facts, chunkSize)
}

// Same as VerifyPadding, but for an already open file
func VerifyPaddingFrom(file io.ReadSeeker, facts *CartFacts, chunkSize int) error {
	length := facts.ExcessPadding()
	log.Printf("Checking %d bytes of padding in %s\n", length, facts.Path)
	if _, err := file.Seek(facts.PaddingOffset, io.SeekStart); err != nil {
		return err
	}
	bufsize := ChunkBufferSize(length, chunkSize)
	reference := MakePadding(bufsize)
	buffer := make([]byte, bufsize)
	rwep := NewReadWriteErrorPass(readOnly{file})
	return EachChunk(length, chunkSize, func(size int) error {
		rwep.ReadPass(buffer[:size])
		if err := rwep.IsPass(); err != nil {
			return err
		}
		if !IsPadding(buffer[:size], reference) {
			return &UnexpectedPaddingDataError{Path: facts.Path}
		}
		return nil
	})
}

// Lets plain readers use ReadWriteErrorPass. Writing is always an error.
type readOnly struct {
	io.Reader
}

func (readOnly) Write([]byte) (int, error) {
	return 0, os.ErrPermission
}
