// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"utec/internal/appcore"
	"utec/internal/cli"
	"utec/internal/cmdutil"
	"utec/internal/config"
	"utec/internal/version"
	"utec/internal/writers"
)

// finish flushes outw and maps a flush failure onto the exit code.
func finish(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("utec")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}, config.Default())
		fs.SetOutput(outw)
		fs.Usage()
		return finish(outw, stderr, 0)
	}

	// First pass: find --config and handle -h/-v before touching files.
	opts, err := cli.ParseArgs(fs, argv, config.Default())
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return finish(outw, stderr, 0)
		}
		if errors.Is(err, cli.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw, "utec")
			return finish(outw, stderr, 0)
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintln(stderr, "run 'utec -h' for usage")
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "utec version %s\n", version.Version)
		return finish(outw, stderr, 0)
	}

	// Second pass: flags on top of defaults, config file and environment.
	params, err := config.Load(opts.ConfigFile, config.Default())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	fs = cli.NewFlagSet("utec")
	fs.SetOutput(io.Discard)
	if opts, err = cli.ParseArgs(fs, argv, params); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if opts.LegacyMatchFlag {
		cmdutil.Warnf(stderr, opts.Quiet, "-m is deprecated, use -s or --min-match-len")
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		AlnFile: opts.AlnFile,
		SeqFile: opts.SeqFile,
		Format:  opts.Format,
		Output:  opts.Output,
		Params:  opts.Params,
		Quiet:   opts.Quiet,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
