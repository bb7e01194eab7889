// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"utec/internal/cliutil"
	"utec/internal/config"
)

// Alignment input formats.
const (
	FormatAuto = "auto"
	FormatPAF  = "paf"
	FormatSAM  = "sam"
	FormatBAM  = "bam"
)

// Options holds all CLI flags and arguments.
type Options struct {
	config.Params

	AlnFile string
	SeqFile string

	Format     string
	Output     string
	ConfigFile string
	Quiet      bool
	Version    bool

	// LegacyMatchFlag is set when the deprecated -m spelling of
	// --min-match-len was used.
	LegacyMatchFlag bool
}

// ParseArgs registers all flags on fs with defaults taken from base, parses
// argv (flags and positionals may be interleaved) and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string, base config.Params) (Options, error) {
	opt := Options{Params: base}
	var help, examples bool

	// Filters
	fs.IntVar(&opt.MinReadLen, "min-read-len", base.MinReadLen, "min read length")
	fs.IntVar(&opt.MinReadLen, "l", base.MinReadLen, "alias of --min-read-len")
	fs.IntVar(&opt.MinBlockLen, "min-aln-len", base.MinBlockLen, "min alignment block length")
	fs.IntVar(&opt.MinBlockLen, "b", base.MinBlockLen, "alias of --min-aln-len")
	fs.Float64Var(&opt.MinIdentity, "min-identity", base.MinIdentity, "min identity")
	fs.Float64Var(&opt.MinIdentity, "d", base.MinIdentity, "alias of --min-identity")
	fs.IntVar(&opt.MaxClipLen, "max-clip-len", base.MaxClipLen, "max clip length")
	fs.IntVar(&opt.MaxClipLen, "c", base.MaxClipLen, "alias of --max-clip-len")

	// Correction
	fs.IntVar(&opt.MinMatchLen, "min-match-len", base.MinMatchLen, "min match length")
	fs.IntVar(&opt.MinMatchLen, "s", base.MinMatchLen, "alias of --min-match-len")
	fs.IntVar(&opt.MinMatchLen, "m", base.MinMatchLen, "alias of --min-match-len")
	fs.Float64Var(&opt.MaxRatio0, "max-ratio", base.MaxRatio0, "initial ratio for haplotype filtering")
	fs.Float64Var(&opt.MaxRatio0, "r", base.MaxRatio0, "alias of --max-ratio")
	fs.BoolVar(&opt.SoftMask, "soft-mask", base.SoftMask, "emit corrected bases in lower case")
	fs.BoolVar(&opt.KeepGoing, "keep-going", base.KeepGoing, "skip failing reads")
	fs.BoolVar(&opt.KeepGoing, "k", base.KeepGoing, "alias of --keep-going")

	// Input/Output
	fs.StringVar(&opt.Format, "format", FormatAuto, "alignment format")
	fs.StringVar(&opt.Format, "f", FormatAuto, "alias of --format")
	fs.StringVar(&opt.Output, "output", "fasta", "output format")
	fs.StringVar(&opt.Output, "o", "fasta", "alias of --output")
	fs.BoolVar(&opt.Debug, "debug", base.Debug, "print support summaries")
	fs.BoolVar(&opt.Debug, "D", base.Debug, "alias of --debug")
	fs.StringVar(&opt.ConfigFile, "config", "", "TOML parameter file")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&help, "h", false, "alias of --help")
	fs.BoolVar(&examples, "examples", false, "print usage examples")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "m" {
			opt.LegacyMatchFlag = true
		}
	})

	// Validation
	if len(posArgs) != 2 {
		return opt, fmt.Errorf("expected <alignments> and <sequences>, got %d argument(s)", len(posArgs))
	}
	opt.AlnFile, opt.SeqFile = posArgs[0], posArgs[1]
	if opt.AlnFile == "-" && opt.SeqFile == "-" {
		return opt, errors.New("only one of <alignments> and <sequences> may be read from stdin")
	}
	switch opt.Format {
	case FormatAuto, FormatPAF, FormatSAM, FormatBAM:
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	switch opt.Output {
	case "fasta", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if err := opt.Params.Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}
