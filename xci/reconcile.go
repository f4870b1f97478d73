package xci

import (
	"fmt"
	"log"
	"strings"
)

type Mode int

const (
	ModeInfo Mode = iota
	ModeTrim
	ModeQuickTrim
	ModePad
	ModeDigest
)

var modeNames = []string{"info", "trim", "quicktrim", "pad", "digest"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("Unknown mode %s", name)
}

// Inspect the file at path and perform the requested mode on it. Header and
// size problems are caught before anything mode-specific happens.
func Reconcile(path string, mode Mode, options *Options) (*Result, error) {
	opts := Options{}
	if options != nil {
		opts = *options
	}
	opts.ReasonableDefaults()
	options = &opts
	facts, err := InspectFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("ROM  Size: %5d GiB\n", facts.NominalGiB)
	log.Printf("Trim Size: %5.2f GiB\n", facts.DataSizeGiB())

	switch mode {
	case ModeInfo:
		result := newResult(facts, mode)
		result.Status = StatusInspected
		return result, nil
	case ModeTrim:
		return Trim(facts, options, true)
	case ModeQuickTrim:
		return Trim(facts, options, false)
	case ModePad:
		return Pad(facts, options)
	case ModeDigest:
		digests, err := Digest(facts, options)
		if err != nil {
			return nil, err
		}
		result := newResult(facts, mode)
		result.Status = StatusDigested
		result.Digests = digests
		return result, nil
	default:
		return nil, fmt.Errorf("Unknown mode %s", mode)
	}
}
