package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/idelchi/dirnuke/internal/dirnuke"
	"github.com/idelchi/dirnuke/internal/roots"
)

func exampleRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]int{"x": 100, "y": 50, filepath.Join("sub", "z"): 25}

	for name, size := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := New("test").Command()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestScanTable(t *testing.T) {
	root := exampleRoot(t)

	stdout, stderr, err := execute(t, "--scan", root)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	for _, want := range []string{
		"1 valid entries detected",
		"SCANNING: Finished, 175 B total (3 files ok, 0 files/dirs failed)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout lacks %q:\n%s", want, stdout)
		}
	}

	if stderr != "" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestScanAndNukeJSON(t *testing.T) {
	root := exampleRoot(t)
	config := filepath.Join(t.TempDir(), "roots.txt")

	if err := os.WriteFile(config, []byte("# test\n"+root+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "--scan", "--nuke", "--output", "json", "--config", config)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	decoder := json.NewDecoder(strings.NewReader(stdout))

	for _, phase := range []string{"scan", "nuke"} {
		var report struct {
			Phase string          `json:"phase"`
			Total dirnuke.Summary `json:"total"`
		}

		if err := decoder.Decode(&report); err != nil {
			t.Fatalf("decoding %s report: %v\n%s", phase, err, stdout)
		}

		if report.Phase != phase {
			t.Errorf("phase = %q, expected %q", report.Phase, phase)
		}

		if want := (dirnuke.Summary{Bytes: 175, Succeeded: 3}); report.Total != want {
			t.Errorf("%s total = %+v, expected %+v", phase, report.Total, want)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "x")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("x should be gone after nuke: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "sub")); err != nil {
		t.Errorf("sub should remain after nuke: %v", err)
	}
}

func TestNestedRootsFailBeforeAnyChange(t *testing.T) {
	root := exampleRoot(t)

	_, _, err := execute(t, "--nuke", root, filepath.Join(root, "sub"))
	if !errors.Is(err, roots.ErrNestedRoots) {
		t.Fatalf("expected nesting conflict, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "x")); err != nil {
		t.Errorf("nothing may be removed on validation failure: %v", err)
	}
}

func TestQuietPrintsNothing(t *testing.T) {
	stdout, stderr, err := execute(t, "--scan", "--quiet", exampleRoot(t), filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout %q, stderr %q", stdout, stderr)
	}
}

func TestQuietKeepsDiagnostics(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions are not enforced")
	}

	root := exampleRoot(t)
	sub := filepath.Join(root, "sub")

	if err := os.Chmod(sub, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(sub, 0o755) })

	stdout, stderr, err := execute(t, "--scan", "--quiet", root)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if stdout != "" {
		t.Errorf("expected empty stdout, got %q", stdout)
	}

	canonical, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}

	if want := "Error processing '" + filepath.Join(canonical, "sub") + "': walk failed"; !strings.Contains(stderr, want) {
		t.Errorf("stderr %q lacks %q", stderr, want)
	}

	if strings.Contains(stderr, clearLine) {
		t.Errorf("no progress line may be drawn in quiet mode: %q", stderr)
	}
}

func TestFlagErrors(t *testing.T) {
	root := t.TempDir()

	tests := map[string][]string{
		"no action":        {root},
		"no roots":         {"--scan"},
		"config and paths": {"--scan", "--config", "roots.txt", root},
		"bad output":       {"--scan", "--output", "yaml", root},
		"missing config":   {"--scan", "--config", filepath.Join(root, "missing.txt")},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := execute(t, args...); err == nil {
				t.Errorf("expected error for %v", args)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}

	if strings.TrimSpace(stdout) != "test" {
		t.Errorf("version = %q, expected %q", stdout, "test")
	}
}

func TestProgressLineKeepsDiagnosticsApart(t *testing.T) {
	var out, errOut bytes.Buffer

	now := time.Unix(0, 0)
	line := newProgressLine(dirnuke.Scan, &out, &errOut, true, time.Second)
	line.now = func() time.Time { return now }

	line.Update(1, 2048)
	line.Update(2, 4096) // throttled

	if got := out.String(); got != clearLine+"SCANNING: 1 files, 2.0 KiB" {
		t.Fatalf("first draw = %q", got)
	}

	out.Reset()
	line.Failure(dirnuke.Outcome{Path: "/r/f", Err: os.ErrPermission, Kind: dirnuke.FailureRemove})

	if got := errOut.String(); got != "Error processing '/r/f': remove failed: permission denied\n" {
		t.Errorf("diagnostic = %q", got)
	}

	// Cleared before the diagnostic, redrawn with the latest state after it.
	if got := out.String(); got != clearLine+clearLine+"SCANNING: 2 files, 4.0 KiB" {
		t.Errorf("redraw = %q", got)
	}

	out.Reset()
	line.Finish(dirnuke.Summary{})

	if out.String() != clearLine {
		t.Errorf("finish = %q, expected a cleared line", out.String())
	}
}
