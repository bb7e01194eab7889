// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var warnPrefix = color.New(color.FgYellow, color.Bold)

// Warnf writes one "WARN: ..." line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{warnPrefix.Sprint("WARN:")}, a...)...)
}
