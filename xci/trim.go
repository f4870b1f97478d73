package xci

import (
	"log"
	"os"
)

// Remove the padding from the file described by facts, leaving exactly
// PaddingOffset bytes. With check set, the padding is verified first and
// the file is left alone if anything but padding is found. In copy mode, the
// original is never touched: the data is copied to a _trimmed file instead.
func Trim(facts *CartFacts, options *Options, check bool) (*Result, error) {
	mode := ModeTrim
	if !check {
		mode = ModeQuickTrim
	}
	result := newResult(facts, mode)
	if facts.IsTrimmed() {
		log.Printf("%s is already trimmed\n", facts.Path)
		result.Status = StatusAlreadyTrimmed
		return result, nil
	}
	if check {
		if err := VerifyPadding(facts, options.ChunkSize); err != nil {
			return nil, err
		}
	}
	target := facts
	if options.Copy {
		dst, err := DerivedPath(facts.Path, TrimmedSuffix)
		if err != nil {
			return nil, err
		}
		// No point copying the padding just to cut it off again
		copied, err := CopyCartFile(facts.Path, dst, facts.PaddingOffset)
		if err != nil {
			return nil, err
		}
		target = facts.WithTarget(dst, copied)
	}
	log.Printf("Trimming %s to %d bytes\n", target.Path, target.PaddingOffset)
	size, err := truncateFile(target.Path, target.PaddingOffset)
	if err != nil {
		return nil, err
	}
	result.Target = target.Path
	result.FinalSize = size
	result.Status = StatusTrimmed
	return result, nil
}

// Shorten the file at path to exactly size bytes and report the size after
func truncateFile(path string, size int64) (int64, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	if err := file.Truncate(size); err != nil {
		return 0, err
	}
	stat, err := file.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}
