package xci

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"
)

// Small chunks so tests cross plenty of chunk boundaries
const testChunkSize = 1000

func testOptions() *Options {
	return &Options{
		ChunkSize:     testChunkSize,
		HashBlockSize: 333,
		Hash:          "sha256",
	}
}

// A header claiming a 4G cart whose data ends at paddingOffset
func testHeader(t *testing.T, paddingOffset int64) []byte {
	if paddingOffset < XciHeaderLength || paddingOffset%XciSectorSize != 0 {
		t.Fatalf("Bad test padding offset %d", paddingOffset)
	}
	data := make([]byte, XciHeaderLength)
	copy(data[0x100:], "HEAD")
	header := XciHeader{
		CapacityCode:       0xF0,
		PaddingStartSector: uint32((paddingOffset - XciSectorSize) / XciSectorSize),
	}
	if err := header.WriteInto(data); err != nil {
		t.Fatalf("Couldn't write test header: %s", err)
	}
	return data
}

// Generate a cart image: header, random (never 0xFF) data up to
// paddingOffset, then padding up to size
func makeCartData(t *testing.T, paddingOffset int64, size int64) []byte {
	data := make([]byte, paddingOffset)
	_, err := rand.Read(data)
	if err != nil {
		t.Fatalf("Error generating random bytes! %s", err)
	}
	for i := range data {
		if data[i] == PaddingByte {
			data[i] = 0x5A
		}
	}
	copy(data, testHeader(t, paddingOffset))
	return append(data, bytes.Repeat([]byte{PaddingByte}, int(size-paddingOffset))...)
}

// Write a generated cart to a new file in a temp folder and return the path
// along with what was written
func writeTestCart(t *testing.T, name string, paddingOffset int64, size int64) (string, []byte) {
	path := filepath.Join(t.TempDir(), name)
	data := makeCartData(t, paddingOffset, size)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Couldn't write test cart %s: %s", path, err)
	}
	return path, data
}

// Facts for a tiny cart. Real capacities are gigabytes, which is no good for
// tests that actually touch the padding.
func testFacts(path string, paddingOffset int64, capacity int64, size int64) *CartFacts {
	return &CartFacts{
		Path:          path,
		CapacityCode:  0xF0,
		NominalGiB:    4,
		PaddingOffset: paddingOffset,
		CartCapacity:  capacity,
		ActualSize:    size,
	}
}

func readTestCart(t *testing.T, path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Couldn't read back %s: %s", path, err)
	}
	return data
}
