// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"utec/internal/app"
	"utec/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// read returns n deterministic bases.
func read(n int) string {
	return strings.Repeat("ACGTTGCA", n/8+1)[:n]
}

// pafLine builds one alignment of read q (length qlen) over [qs,qe) against
// an overlapping read with a perfectly matching target span.
func pafLine(q string, qlen, qs, qe int, target, cs string) string {
	n := qe - qs
	l := fmt.Sprintf("%s\t%d\t%d\t%d\t+\t%s\t%d\t0\t%d\t%d\t%d\t60", q, qlen, qs, qe, target, n, n, n, n)
	if cs != "" {
		l += "\tcs:Z:" + cs
	}
	return l + "\n"
}

// lax lowers the thresholds so that short synthetic reads pass.
var lax = []string{"-l", "0", "-b", "0", "-c", "1000"}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = app.Run(append(append([]string{}, lax...), args...), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestCorrectsSubstitution(t *testing.T) {
	seq := read(100)
	aln := write(t, "aln.paf", pafLine("r1", 100, 0, 100, "o1", ":60*tc:39"))
	fa := write(t, "reads.fa", ">r1\n"+seq+"\n")

	code, out, errOut := run(t, aln, fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := ">r1\n" + seq[:60] + "C" + seq[61:] + "\n"
	if out != want {
		t.Fatalf("got\n%s\nwant\n%s", out, want)
	}
}

func TestSoftMask(t *testing.T) {
	seq := read(100)
	aln := write(t, "aln.paf", pafLine("r1", 100, 0, 100, "o1", ":60*tc:39"))
	fa := write(t, "reads.fa", ">r1\n"+seq+"\n")

	_, out, _ := run(t, "--soft-mask", aln, fa)
	if !strings.Contains(out, seq[:60]+"c"+seq[61:]) {
		t.Fatalf("soft-masked base missing: %q", out)
	}
}

func TestTwoCleanOverlapsReproduceRead(t *testing.T) {
	seq := read(150)
	aln := write(t, "aln.paf",
		pafLine("r1", 150, 0, 100, "o1", ":100")+
			pafLine("r1", 150, 50, 150, "o2", ":100"))
	fa := write(t, "reads.fq", "@r1 extra\n"+seq+"\n+\n"+strings.Repeat("I", 150)+"\n")

	code, out, errOut := run(t, aln, fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != ">r1\n"+seq+"\n" {
		t.Fatalf("read not reproduced: %q", out)
	}
}

func TestDebugTable(t *testing.T) {
	seq := read(150)
	aln := write(t, "aln.paf",
		pafLine("r1", 150, 0, 100, "o1", ":100")+
			pafLine("r1", 150, 50, 150, "o2", ":100"))
	fa := write(t, "reads.fa", ">r1\n"+seq+"\n")

	code, out, _ := run(t, "-D", aln, fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := ">r1\t150\t2\n" +
		"0\t100\t0\t0\t0\t0\t0\t1\t100\to1\n" +
		"50\t150\t1\t0\t0\t0\t0\t1\t100\to2\n"
	if out != want {
		t.Fatalf("got\n%s\nwant\n%s", out, want)
	}
}

func TestJSONLOutput(t *testing.T) {
	seq := read(100)
	aln := write(t, "aln.paf", pafLine("r1", 100, 0, 100, "o1", ":100"))
	fa := write(t, "reads.fa", ">r1\n"+seq+"\n")

	code, out, _ := run(t, "-o", "jsonl", aln, fa)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var v api.CorrectedReadV1
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	if v.Name != "r1" || v.Seq != seq || v.Start != 0 || v.End != 100 || len(v.Support) != 1 {
		t.Fatalf("unexpected record %+v", v)
	}
}

func TestMissingDifferenceStringWarns(t *testing.T) {
	seq := read(150)
	aln := write(t, "aln.paf",
		pafLine("r1", 150, 0, 100, "o1", ":100")+
			pafLine("r1", 150, 50, 150, "o2", ""))
	fa := write(t, "reads.fa", ">r1\n"+seq+"\n")

	code, out, errOut := run(t, aln, fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(errOut, "no cs tag") {
		t.Fatalf("missing warning, stderr=%q", errOut)
	}
	// The cs-less alignment owns [100,150) but replays nothing.
	if out != ">r1\n"+seq[:100]+"\n" {
		t.Fatalf("got %q", out)
	}

	_, _, quiet := run(t, "-q", aln, fa)
	if quiet != "" {
		t.Fatalf("quiet run wrote %q", quiet)
	}
}

func TestStrictVersusKeepGoing(t *testing.T) {
	aln := write(t, "aln.paf",
		pafLine("r1", 100, 0, 100, "o1", ":50")+
			pafLine("r2", 100, 0, 100, "o1", ":100"))
	fa := write(t, "reads.fa", ">r1\n"+read(100)+"\n>r2\n"+read(100)+"\n")

	code, out, errOut := run(t, aln, fa)
	if code != 3 || out != "" || !strings.Contains(errOut, "inconsistent") {
		t.Fatalf("strict: exit %d out %q err %q", code, out, errOut)
	}

	code, out, errOut = run(t, "-k", aln, fa)
	if code != 0 {
		t.Fatalf("keep-going: exit %d: %s", code, errOut)
	}
	if out != ">r2\n"+read(100)+"\n" {
		t.Fatalf("keep-going output %q", out)
	}
	if !strings.Contains(errOut, `skipping read "r1"`) || !strings.Contains(errOut, "1 read(s) skipped") {
		t.Fatalf("keep-going stderr %q", errOut)
	}
}

func TestStreamOrderingViolation(t *testing.T) {
	aln := write(t, "aln.paf",
		pafLine("r2", 100, 0, 100, "o1", ":100")+
			pafLine("r1", 100, 0, 100, "o1", ":100"))
	fa := write(t, "reads.fa", ">r1\n"+read(100)+"\n>r2\n"+read(100)+"\n")

	code, out, errOut := run(t, aln, fa)
	if code != 3 || !strings.Contains(errOut, "not in the same order") {
		t.Fatalf("exit %d err %q", code, errOut)
	}
	if out != ">r2\n"+read(100)+"\n" {
		t.Fatalf("reads before the violation must still be written, got %q", out)
	}
}

func TestLengthMismatchIsFatal(t *testing.T) {
	aln := write(t, "aln.paf", pafLine("r1", 100, 0, 100, "o1", ":100"))
	fa := write(t, "reads.fa", ">r1\n"+read(90)+"\n")
	if code, _, errOut := run(t, aln, fa); code != 3 || !strings.Contains(errOut, "length mismatch") {
		t.Fatalf("exit %d err %q", code, errOut)
	}
}

func TestGzipInputs(t *testing.T) {
	seq := read(100)
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	zw.Write([]byte(">r1\n" + seq + "\n"))
	zw.Close()
	fa := write(t, "reads.fa.gz", gz.String())
	aln := write(t, "aln.paf", pafLine("r1", 100, 0, 100, "o1", ":100"))

	if code, out, errOut := run(t, aln, fa); code != 0 || out != ">r1\n"+seq+"\n" {
		t.Fatalf("exit %d out %q err %q", code, out, errOut)
	}
}

func TestShortReadsAreSkipped(t *testing.T) {
	aln := write(t, "aln.paf", pafLine("r1", 100, 0, 100, "o1", ":100"))
	fa := write(t, "reads.fa", ">r1\n"+read(100)+"\n")
	if code, out, _ := run(t, "-l", "101", aln, fa); code != 0 || out != "" {
		t.Fatalf("exit %d out %q", code, out)
	}
}

func TestConfigFileAndEnvironment(t *testing.T) {
	aln := write(t, "aln.paf", pafLine("r1", 100, 0, 100, "o1", ":100"))
	fa := write(t, "reads.fa", ">r1\n"+read(100)+"\n")
	cfg := write(t, "utec.toml", "min_rlen = 0\nmin_blen = 0\nmax_clip_len = 1000\n")

	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--config", cfg, aln, fa}, &out, &errBuf); code != 0 || out.Len() == 0 {
		t.Fatalf("config run: exit %d out %q err %q", code, out.String(), errBuf.String())
	}

	t.Setenv("UTEC_MIN_RLEN", "500")
	out.Reset()
	if code := app.Run([]string{"--config", cfg, aln, fa}, &out, &errBuf); code != 0 || out.Len() != 0 {
		t.Fatalf("env must override file: exit %d out %q", code, out.String())
	}

	out.Reset()
	if code := app.Run([]string{"--config", cfg, "-l", "0", aln, fa}, &out, &errBuf); code != 0 || out.Len() == 0 {
		t.Fatalf("flag must override env: exit %d", code)
	}
}

func TestBadConfigIsUsageError(t *testing.T) {
	cfg := write(t, "utec.toml", "min_rlen = 0\nbogus = 1\n")
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--config", cfg, "a.paf", "r.fa"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestLegacyMatchFlagWarns(t *testing.T) {
	aln := write(t, "aln.paf", pafLine("r1", 100, 0, 100, "o1", ":100"))
	fa := write(t, "reads.fa", ">r1\n"+read(100)+"\n")
	code, _, errOut := run(t, "-m", "7", aln, fa)
	if code != 0 || !strings.Contains(errOut, "-m is deprecated") {
		t.Fatalf("exit %d err %q", code, errOut)
	}
}

func TestUsageAndErrors(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run(nil, &out, &errBuf); code != 0 || !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("no-arg run: exit %d out %q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--examples"}, &out, &errBuf); code != 0 || !strings.Contains(out.String(), "quickstart") {
		t.Fatalf("examples: exit %d out %q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--version"}, &out, &errBuf); code != 0 || !strings.HasPrefix(out.String(), "utec version") {
		t.Fatalf("version: exit %d out %q", code, out.String())
	}
	if code := app.Run([]string{"only-one.paf"}, &out, &errBuf); code != 2 {
		t.Fatalf("missing positional: exit %d", code)
	}
	if code := app.Run([]string{"--bogus", "a", "b"}, &out, &errBuf); code != 2 {
		t.Fatalf("unknown flag: exit %d", code)
	}
	if code := app.Run([]string{"missing.paf", "missing.fa"}, &out, &errBuf); code != 3 {
		t.Fatalf("missing files: exit %d", code)
	}
}
