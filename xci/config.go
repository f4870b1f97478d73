package xci

// NOTE: this is the only place in the package that knows about toml. The
// rest of the package only ever sees a filled-in Options.
import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
)

const (
	DefaultConfigFile = "xcigotools.toml"
	DefaultHash       = "sha256"
)

// Tunables for a single run. Anything left at its zero value gets a
// reasonable default.
type Options struct {
	ChunkSize     int    `toml:"chunk_size"`      // Verify/pad chunk size in bytes
	HashBlockSize int    `toml:"hash_block_size"` // Digest read block size in bytes
	Hash          string `toml:"hash"`            // md5, sha1 or sha256
	Copy          bool   `toml:"copy"`            // Work on a copy instead of in place
}

func DefaultOptions() *Options {
	o := &Options{}
	o.ReasonableDefaults()
	return o
}

func (o *Options) ReasonableDefaults() {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.HashBlockSize <= 0 {
		o.HashBlockSize = DefaultHashBlockSize
	}
	if o.Hash == "" {
		o.Hash = DefaultHash
	}
	o.Hash = strings.ToLower(o.Hash)
}

// Parse options from toml text. Unset fields get defaults.
func ParseOptions(raw []byte) (*Options, error) {
	var o Options
	if err := toml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("Couldn't parse config: %w", err)
	}
	o.ReasonableDefaults()
	if _, err := NewHash(o.Hash); err != nil {
		return nil, err
	}
	return &o, nil
}

// Load options from the given toml file. If required is false, a missing
// file just means defaults.
func LoadOptions(path string, required bool) (*Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !required && os.IsNotExist(err) {
			return DefaultOptions(), nil
		}
		return nil, err
	}
	log.Printf("Loading config from %s\n", path)
	return ParseOptions(raw)
}
