package xci

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"log"
	"os"
)

const (
	DigestLabelTrimmed = "trimmed"
	DigestLabelPadded  = "padded"
)

// One reported hash, along with the size of the content it covers
type DigestEntry struct {
	Label string
	Size  int64
	Hash  string
}

// Get a fresh hasher by name (md5, sha1, sha256)
func NewHash(name string) (hash.Hash, error) {
	switch name {
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("Unknown hash type %s", name)
	}
}

func hashString(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}

// Hash the file described by facts. A trimmed (or partially padded) file gets
// two hashes: the file as it is, and the file as it would be after padding,
// computed by feeding padding to the hash past the end of the real data. A
// fully padded file only gets the one.
func Digest(facts *CartFacts, options *Options) ([]DigestEntry, error) {
	file, err := os.Open(facts.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DigestFrom(file, facts, options)
}

// Same as Digest, but reading from an already open file (from the start)
func DigestFrom(file io.Reader, facts *CartFacts, options *Options) ([]DigestEntry, error) {
	asis, err := NewHash(options.Hash)
	if err != nil {
		return nil, err
	}
	padded, _ := NewHash(options.Hash)
	both := io.MultiWriter(asis, padded)

	log.Printf("Hashing %d bytes of %s (%s)\n", facts.ActualSize, facts.Path, options.Hash)
	buffer := make([]byte, ChunkBufferSize(facts.ActualSize, options.HashBlockSize))
	rwep := NewReadWriteErrorPass(readOnly{file})
	err = EachChunk(facts.ActualSize, options.HashBlockSize, func(size int) error {
		rwep.ReadPass(buffer[:size])
		if err := rwep.IsPass(); err != nil {
			return err
		}
		_, err := both.Write(buffer[:size])
		return err
	})
	if err != nil {
		return nil, err
	}

	if facts.IsPadded() {
		return []DigestEntry{
			{Label: DigestLabelPadded, Size: facts.ActualSize, Hash: hashString(padded)},
		}, nil
	}

	missing := facts.MissingPadding()
	log.Printf("Hashing %d bytes of virtual padding\n", missing)
	if _, err := WritePadding(padded, missing, options.ChunkSize); err != nil {
		return nil, err
	}
	return []DigestEntry{
		{Label: DigestLabelTrimmed, Size: facts.ActualSize, Hash: hashString(asis)},
		{Label: DigestLabelPadded, Size: facts.CartCapacity, Hash: hashString(padded)},
	}, nil
}
