package xci

import (
	"fmt"
	"os"
)

// Everything the reconciliation steps need to know about one cart file. Built
// once per run from the live file and never modified; copy mode produces a
// new value for the copy with WithTarget.
type CartFacts struct {
	Path          string
	CapacityCode  uint8
	NominalGiB    int   // Nominal cart size class
	PaddingOffset int64 // First byte of padding (exclusive end of real data)
	CartCapacity  int64 // Size of a fully padded file
	ActualSize    int64 // Size on disk when inspected
}

// Combine an already-read header with the file's size. Does NOT validate
// the size range; call CheckRange for that.
func NewCartFacts(path string, header *XciHeader, size int64) (*CartFacts, error) {
	nominal, capacity, err := ResolveCapacity(header.CapacityCode)
	if err != nil {
		return nil, err
	}
	return &CartFacts{
		Path:          path,
		CapacityCode:  header.CapacityCode,
		NominalGiB:    nominal,
		PaddingOffset: header.PaddingOffset(),
		CartCapacity:  capacity,
		ActualSize:    size,
	}, nil
}

// Read the header from the file at path and produce validated facts. The file
// is only held open for the header read.
func InspectFile(path string) (*CartFacts, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FileNotFoundError{Path: path}
		}
		return nil, err
	}
	if !stat.Mode().IsRegular() {
		return nil, &FileNotFoundError{Path: path}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	header, err := ReadHeader(file)
	if err != nil {
		return nil, err
	}
	facts, err := NewCartFacts(path, header, stat.Size())
	if err != nil {
		return nil, err
	}
	if err := facts.CheckRange(); err != nil {
		return nil, err
	}
	return facts, nil
}

// Files smaller than the data or larger than the cart are in neither a
// trimmed nor a padded state, and nothing more should be inferred.
func (f *CartFacts) CheckRange() error {
	if f.ActualSize < f.PaddingOffset || f.ActualSize > f.CartCapacity {
		return &SizeOutOfRangeError{
			Size:          f.ActualSize,
			PaddingOffset: f.PaddingOffset,
			CartCapacity:  f.CartCapacity,
		}
	}
	return nil
}

func (f *CartFacts) IsTrimmed() bool {
	return f.ActualSize == f.PaddingOffset
}

func (f *CartFacts) IsPadded() bool {
	return f.ActualSize == f.CartCapacity
}

// Bytes that a pad would have to add
func (f *CartFacts) MissingPadding() int64 {
	return f.CartCapacity - f.ActualSize
}

// Bytes that a trim would remove
func (f *CartFacts) ExcessPadding() int64 {
	return f.ActualSize - f.PaddingOffset
}

func (f *CartFacts) DataSizeGiB() float64 {
	return SizeGiB(f.PaddingOffset)
}

// The same cart facts, but for a different file (usually a copy) of the given size
func (f *CartFacts) WithTarget(path string, size int64) *CartFacts {
	result := *f
	result.Path = path
	result.ActualSize = size
	return &result
}

func (f *CartFacts) String() string {
	return fmt.Sprintf("%s (%dG cart, data %d, capacity %d, size %d)",
		f.Path, f.NominalGiB, f.PaddingOffset, f.CartCapacity, f.ActualSize)
}
