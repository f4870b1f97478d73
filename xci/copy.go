package xci

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	TrimmedSuffix   = "_trimmed"
	PaddedSuffix    = "_padded"
	ExtensionLength = 4 // ".xci"
)

// Produce the path for a copy: the final ExtensionLength characters are
// assumed to be the extension, and the suffix goes just before them.
// game.xci -> game_trimmed.xci
func DerivedPath(path string, suffix string) (string, error) {
	if len(path) <= ExtensionLength {
		return "", fmt.Errorf("Path %s too short to derive a %s copy", path, suffix)
	}
	cut := len(path) - ExtensionLength
	return path[:cut] + suffix + path[cut:], nil
}

// Copy the first length bytes of src to dst (truncating dst if it exists),
// then carry over the permission bits and modification time. Returns the
// number of bytes copied.
func CopyCartFile(src string, dst string, length int64) (int64, error) {
	sabs, err := filepath.Abs(src)
	if err != nil {
		return 0, err
	}
	dabs, err := filepath.Abs(dst)
	if err != nil {
		return 0, err
	}
	if sabs == dabs {
		return 0, fmt.Errorf("Refusing to copy %s onto itself", src)
	}
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	stat, err := in.Stat()
	if err != nil {
		return 0, err
	}
	if length > stat.Size() {
		return 0, fmt.Errorf("Can't copy %d bytes from %s, only %d available", length, src, stat.Size())
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, stat.Mode().Perm())
	if err != nil {
		return 0, err
	}
	copied, err := io.CopyN(out, in, length)
	if err != nil {
		out.Close()
		return copied, fmt.Errorf("Couldn't copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return copied, err
	}
	// Metadata is best effort; some filesystems just won't have it
	if err := os.Chmod(dst, stat.Mode().Perm()); err != nil {
		log.Printf("WARN: couldn't copy permissions to %s: %s\n", dst, err)
	}
	if err := os.Chtimes(dst, stat.ModTime(), stat.ModTime()); err != nil {
		log.Printf("WARN: couldn't copy modification time to %s: %s\n", dst, err)
	}
	log.Printf("Copied %d bytes from %s to %s\n", copied, src, dst)
	return copied, nil
}
