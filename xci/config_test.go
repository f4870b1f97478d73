package xci

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	require.Equal(t, 100*1024*1024, o.ChunkSize)
	require.Equal(t, 1024*1024, o.HashBlockSize)
	require.Equal(t, "sha256", o.Hash)
	require.False(t, o.Copy)
}

func TestParseOptions(t *testing.T) {
	raw := `
chunk_size = 4096
hash = "MD5"
copy = true
`
	o, err := ParseOptions([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, 4096, o.ChunkSize)
	require.Equal(t, DefaultHashBlockSize, o.HashBlockSize)
	require.Equal(t, "md5", o.Hash)
	require.True(t, o.Copy)
}

func TestParseOptions_Bad(t *testing.T) {
	_, err := ParseOptions([]byte(`hash = "crc32"`))
	require.Error(t, err)
	_, err = ParseOptions([]byte(`chunk_size = = 3`))
	require.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "none.toml")

	o, err := LoadOptions(missing, false)
	require.NoError(t, err)
	require.Equal(t, DefaultOptions(), o)

	_, err = LoadOptions(missing, true)
	require.Error(t, err)

	path := filepath.Join(dir, "xcigotools.toml")
	require.NoError(t, os.WriteFile(path, []byte("hash_block_size = 512\n"), 0644))
	o, err = LoadOptions(path, true)
	require.NoError(t, err)
	require.Equal(t, 512, o.HashBlockSize)
}
