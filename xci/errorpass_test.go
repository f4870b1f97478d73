package xci

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

// Hands out one byte per read to make sure the pass keeps going
type trickleReadWriter struct {
	io.Reader
	bytes.Buffer
}

func (t *trickleReadWriter) Read(b []byte) (int, error) {
	return iotest.OneByteReader(t.Reader).Read(b)
}

func TestReadWriteErrorPass_FillsBuffer(t *testing.T) {
	rw := &trickleReadWriter{Reader: bytes.NewReader([]byte("ABCDEFGH"))}
	rwep := NewReadWriteErrorPass(rw)
	buf := make([]byte, 5)
	require.Equal(t, 5, rwep.ReadPass(buf))
	require.Equal(t, "ABCDE", string(buf))
	require.NoError(t, rwep.IsPass())
	require.Equal(t, 3, rwep.WritePass([]byte("xyz")))
	require.Equal(t, "xyz", rw.Buffer.String())
}

func TestReadWriteErrorPass_ShortReadSticks(t *testing.T) {
	rwep := NewReadWriteErrorPass(readOnly{bytes.NewReader([]byte("AB"))})
	buf := make([]byte, 5)
	rwep.ReadPass(buf)
	require.ErrorIs(t, rwep.IsPass(), io.ErrUnexpectedEOF)
	// Everything after the first error is skipped
	require.Equal(t, 0, rwep.ReadPass(buf))
	require.ErrorIs(t, rwep.IsPass(), io.ErrUnexpectedEOF)
}

func TestReadWriteErrorPass_WriteOnly(t *testing.T) {
	var out bytes.Buffer
	rwep := NewReadWriteErrorPass(writeOnly{&out})
	rwep.WritePass([]byte("hello"))
	require.NoError(t, rwep.IsPass())
	rwep.ReadPass(make([]byte, 1))
	require.Error(t, rwep.IsPass())
}
