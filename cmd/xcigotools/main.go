package main

import (
	"log"

	"github.com/alecthomas/kong"

	"github.com/randomouscrap98/xcigotools/xci"
)

const (
	AppVersion = "0.2.0"
)

var cli struct {
	Infile    string           `arg:"" type:"path" help:"Path to XCI rom file"`
	Trim      bool             `short:"t" xor:"mode" help:"Trim excess bytes (checks padding first)"`
	Quicktrim bool             `short:"q" xor:"mode" help:"Trim without safety check for unexpected game data"`
	Pad       bool             `short:"p" xor:"mode" help:"Restore excess bytes"`
	Digest    bool             `short:"d" xor:"mode" help:"Hash the rom, including the hash it would have when padded"`
	Info      bool             `short:"i" xor:"mode" help:"Only report cart and trim size"`
	Copy      bool             `short:"c" help:"Trim or pad a copy (_trimmed/_padded) instead of the original"`
	Hash      string           `help:"Digest hash: md5, sha1 or sha256 (default sha256)"`
	Chunksize int              `help:"Bytes per chunk when verifying or padding (default 100MiB)"`
	Config    string           `default:"${defaultconfig}" help:"TOML file with default options"`
	Version   kong.VersionFlag `help:"Show version information"`
}

// Map the mode flags onto exactly one mode
func selectedMode() (xci.Mode, int) {
	mode := xci.ModeInfo
	count := 0
	flags := []struct {
		set  bool
		mode xci.Mode
	}{
		{cli.Info, xci.ModeInfo},
		{cli.Trim, xci.ModeTrim},
		{cli.Quicktrim, xci.ModeQuickTrim},
		{cli.Pad, xci.ModePad},
		{cli.Digest, xci.ModeDigest},
	}
	for _, f := range flags {
		if f.set {
			mode = f.mode
			count++
		}
	}
	return mode, count
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("xcigotools"),
		kong.ShortUsageOnError(),
		kong.Description("Trim or pad XCI rom files"),
		kong.Vars{
			"version":       AppVersion,
			"defaultconfig": xci.DefaultConfigFile,
		},
	)
	mode, count := selectedMode()
	if count != 1 {
		ctx.Fatalf("must select exactly one of --trim, --quicktrim, --pad, --digest, --info")
	}

	options, err := xci.LoadOptions(cli.Config, cli.Config != xci.DefaultConfigFile)
	fatalIfErr(cli.Config, "load config", err)
	if cli.Copy {
		options.Copy = true
	}
	if cli.Hash != "" {
		options.Hash = cli.Hash
	}
	if cli.Chunksize > 0 {
		options.ChunkSize = cli.Chunksize
	}

	log.Printf("XCI Trimmer %s: %s %s\n", AppVersion, mode, cli.Infile)
	result, err := xci.Reconcile(cli.Infile, mode, options)
	fatalIfErr(cli.Infile, mode.String(), err)
	log.Printf("Done! %s is %s\n", result.Target, result.Status)
	PrintJson(result)
}
