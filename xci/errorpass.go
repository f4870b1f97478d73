package xci

import (
	"io"
)

// Reader/writer wrapper which keeps the first error it sees and skips all
// further work once one happens. Reads and writes always go until the whole
// slice is filled (or written), so callers can chain several calls and check
// IsPass once at the end.
type ReadWriteErrorPass struct {
	rw  io.ReadWriter
	err error
}

func NewReadWriteErrorPass(rw io.ReadWriter) *ReadWriteErrorPass {
	return &ReadWriteErrorPass{rw: rw}
}

func (rwep *ReadWriteErrorPass) loopError(b []byte, f func([]byte) (int, error)) (int, error) {
	if rwep.err != nil {
		return 0, rwep.err
	}
	total := 0
	for total < len(b) {
		count, err := f(b[total:])
		total += count
		if err != nil {
			if err == io.EOF && total < len(b) {
				err = io.ErrUnexpectedEOF
			}
			if total < len(b) {
				rwep.err = err
				return total, err
			}
		} else if count == 0 {
			rwep.err = io.ErrNoProgress
			return total, rwep.err
		}
	}
	return total, nil
}

// Write the entire buffer, unless an error already happened
func (rwep *ReadWriteErrorPass) Write(b []byte) (int, error) {
	return rwep.loopError(b, rwep.rw.Write)
}

// Fill the entire buffer, unless an error already happened. Hitting the end
// of the stream early is an error.
func (rwep *ReadWriteErrorPass) Read(b []byte) (int, error) {
	return rwep.loopError(b, rwep.rw.Read)
}

func (rwep *ReadWriteErrorPass) WritePass(b []byte) int {
	val, _ := rwep.Write(b)
	return val
}

func (rwep *ReadWriteErrorPass) ReadPass(b []byte) int {
	val, _ := rwep.Read(b)
	return val
}

func (rwep *ReadWriteErrorPass) IsPass() error {
	return rwep.err
}
