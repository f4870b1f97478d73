package xci

import (
	"io"
	"log"
	"os"
)

// Append padding to the file described by facts until it is exactly
// CartCapacity bytes. In copy mode the whole file is first copied to a
// _padded file and only the copy grows.
func Pad(facts *CartFacts, options *Options) (*Result, error) {
	result := newResult(facts, ModePad)
	if facts.IsPadded() {
		log.Printf("%s is already padded\n", facts.Path)
		result.Status = StatusAlreadyPadded
		return result, nil
	}
	target := facts
	if options.Copy {
		dst, err := DerivedPath(facts.Path, PaddedSuffix)
		if err != nil {
			return nil, err
		}
		copied, err := CopyCartFile(facts.Path, dst, facts.ActualSize)
		if err != nil {
			return nil, err
		}
		target = facts.WithTarget(dst, copied)
	}
	log.Printf("Padding %s with %d bytes\n", target.Path, target.MissingPadding())
	size, err := appendPadding(target, options.ChunkSize)
	if err != nil {
		return nil, err
	}
	result.Target = target.Path
	result.FinalSize = size
	result.Status = StatusPadded
	return result, nil
}

func appendPadding(facts *CartFacts, chunkSize int) (int64, error) {
	file, err := os.OpenFile(facts.Path, os.O_RDWR, 0)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	// Always write from the size we were told about, not wherever the file ends
	if _, err := file.Seek(facts.ActualSize, io.SeekStart); err != nil {
		return 0, err
	}
	written, err := WritePadding(file, facts.MissingPadding(), chunkSize)
	if err != nil {
		return 0, err
	}
	log.Printf("Wrote %d padding bytes to %s\n", written, facts.Path)
	stat, err := file.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

// Write length bytes of padding to w, one chunk at a time. Returns the
// amount written.
func WritePadding(w io.Writer, length int64, chunkSize int) (int64, error) {
	padding := MakePadding(ChunkBufferSize(length, chunkSize))
	rwep := NewReadWriteErrorPass(writeOnly{w})
	var written int64
	err := EachChunk(length, chunkSize, func(size int) error {
		written += int64(rwep.WritePass(padding[:size]))
		return rwep.IsPass()
	})
	return written, err
}

// Lets plain writers use ReadWriteErrorPass. Reading is always an error.
type writeOnly struct {
	io.Writer
}

func (writeOnly) Read([]byte) (int, error) {
	return 0, os.ErrPermission
}
