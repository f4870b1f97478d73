package xci

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDerivedPath(t *testing.T) {
	check := func(path string, suffix string, expected string) {
		result, err := DerivedPath(path, suffix)
		if err != nil {
			t.Fatalf("%s: unexpected error %s", path, err)
		}
		if result != expected {
			t.Fatalf("%s: Expected %s, got %s", path, expected, result)
		}
	}
	check("game.xci", TrimmedSuffix, "game_trimmed.xci")
	check("game.xci", PaddedSuffix, "game_padded.xci")
	check("/roms/My Game [v0].xci", TrimmedSuffix, "/roms/My Game [v0]_trimmed.xci")
	check("a.XCI", PaddedSuffix, "a_padded.XCI")
	if _, err := DerivedPath(".xci", TrimmedSuffix); err == nil {
		t.Fatalf("Expected error for path with nothing but an extension")
	}
	if _, err := DerivedPath("x", TrimmedSuffix); err == nil {
		t.Fatalf("Expected error for too-short path")
	}
}

func TestCopyCartFile_Metadata(t *testing.T) {
	path, data := writeTestCart(t, "game.xci", 1024, 3000)
	mtime := time.Date(2018, 5, 22, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	require.NoError(t, os.Chmod(path, 0600))

	dst := filepath.Join(filepath.Dir(path), "copy.xci")
	copied, err := CopyCartFile(path, dst, int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), copied)
	require.Equal(t, data, readTestCart(t, dst))

	stat, err := os.Stat(dst)
	require.NoError(t, err)
	require.True(t, stat.ModTime().Equal(mtime), "modification time not copied: %s", stat.ModTime())
	require.Equal(t, os.FileMode(0600), stat.Mode().Perm())
}

func TestCopyCartFile_Prefix(t *testing.T) {
	path, data := writeTestCart(t, "game.xci", 1024, 3000)
	dst := filepath.Join(filepath.Dir(path), "prefix.xci")
	copied, err := CopyCartFile(path, dst, 1024)
	require.NoError(t, err)
	require.Equal(t, int64(1024), copied)
	require.Equal(t, data[:1024], readTestCart(t, dst))
}

func TestCopyCartFile_Errors(t *testing.T) {
	path, _ := writeTestCart(t, "game.xci", 1024, 3000)
	_, err := CopyCartFile(path, path, 10)
	require.Error(t, err)
	_, err = CopyCartFile(path, path+".2", 5000)
	require.Error(t, err)
}
