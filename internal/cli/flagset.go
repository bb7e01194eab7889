package cli

import (
	"flag"
	"fmt"
	"io"

	"utec/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError and the tool's
// usage text. Each parse gets its own FlagSet.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs.Output(), fs, name) }
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet, name string) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – overlap-based long-read error correction\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage: %s [options] <map-with-cs.paf|.sam|.bam> <seq.fa|seq.fq>\n", name)

	fmt.Fprintln(out, "\nFilters:")
	fmt.Fprintf(out, "  -l, --min-read-len int      Min read length [%s]\n", def("min-read-len"))
	fmt.Fprintf(out, "  -b, --min-aln-len int       Min alignment block length [%s]\n", def("min-aln-len"))
	fmt.Fprintf(out, "  -d, --min-identity float    Min identity [%s]\n", def("min-identity"))
	fmt.Fprintf(out, "  -c, --max-clip-len int      Max clip length [%s]\n", def("max-clip-len"))

	fmt.Fprintln(out, "\nCorrection:")
	fmt.Fprintf(out, "  -s, --min-match-len int     Min match length [%s] (-m is accepted as an alias)\n", def("min-match-len"))
	fmt.Fprintf(out, "  -r, --max-ratio float       Initial ratio for haplotype filtering [%s]\n", def("max-ratio"))
	fmt.Fprintf(out, "      --soft-mask             Emit corrected bases in lower case [%s]\n", def("soft-mask"))
	fmt.Fprintf(out, "  -k, --keep-going            Skip reads that fail instead of aborting [%s]\n", def("keep-going"))

	fmt.Fprintln(out, "\nInput/Output:")
	fmt.Fprintf(out, "  -f, --format string         Alignment format: auto | paf | sam | bam [%s]\n", def("format"))
	fmt.Fprintf(out, "  -o, --output string         Output: fasta | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "  -D, --debug                 Print support summaries instead of sequences [%s]\n", def("debug"))
	fmt.Fprintln(out, "      --config file           TOML parameter file (UTEC_* env vars override it)")

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "      --examples              Print usage examples and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
