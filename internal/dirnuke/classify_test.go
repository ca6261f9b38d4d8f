package dirnuke

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// brokenEntry is a regular file whose metadata cannot be read.
type brokenEntry struct{ err error }

func (b brokenEntry) Name() string               { return "broken" }
func (b brokenEntry) IsDir() bool                { return false }
func (b brokenEntry) Type() fs.FileMode          { return 0 }
func (b brokenEntry) Info() (fs.FileInfo, error) { return nil, b.err }

func TestClassify(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "file"), 42)
	writeFile(t, filepath.Join(root, "dir", "inner"), 1)

	if err := os.Symlink(filepath.Join(root, "file"), filepath.Join(root, "file-link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if err := os.Symlink(filepath.Join(root, "dir"), filepath.Join(root, "dir-link")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		class Class
		size  int64
	}{
		"file":      {Eligible, 42},
		"dir":       {Skip, 0},
		"file-link": {Skip, 0},
		"dir-link":  {Skip, 0},
	}

	for _, entry := range entries {
		want, ok := tests[entry.Name()]
		if !ok {
			t.Fatalf("unexpected entry %q", entry.Name())
		}

		got := Classify(entry)
		if got.Class != want.class || got.Size != want.size || got.Err != nil {
			t.Errorf("Classify(%q) = %v/%d/%v, expected %v/%d", entry.Name(), got.Class, got.Size, got.Err, want.class, want.size)
		}
	}
}

func TestClassifyUnreadable(t *testing.T) {
	got := Classify(brokenEntry{err: fs.ErrPermission})

	if got.Class != Unreadable {
		t.Fatalf("Classify = %v, expected unreadable", got.Class)
	}

	if !errors.Is(got.Err, fs.ErrPermission) {
		t.Errorf("error = %v, expected permission error", got.Err)
	}
}

func TestOutcomeReason(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
		vanished bool
	}{
		{success("/r/a", 3), "", false},
		{failure("/r/a", FailureRemove, fs.ErrPermission), "remove failed: permission denied", false},
		{failure("/r/a", FailureStat, fs.ErrNotExist), "vanished during stat: file does not exist", true},
	}

	for _, tt := range tests {
		if got := tt.outcome.Reason(); got != tt.expected {
			t.Errorf("Reason() = %q, expected %q", got, tt.expected)
		}

		if got := tt.outcome.Vanished(); got != tt.vanished {
			t.Errorf("Vanished() = %v, expected %v", got, tt.vanished)
		}
	}
}

func TestAggregateCountsFailuresAsProcessed(t *testing.T) {
	in := make(chan Outcome, 4)
	in <- success("/r/a", 10)
	in <- failure("/r/b", FailureStat, fs.ErrPermission)
	in <- success("/s/c", 5)
	close(in)

	display := &recordingDisplay{}
	total := aggregate(in, display)

	if want := (Summary{Bytes: 15, Succeeded: 2, Failed: 1}); total != want {
		t.Errorf("total = %+v, expected %+v", total, want)
	}

	if display.last != [2]int64{3, 15} {
		t.Errorf("last update = %v, expected [3 15]", display.last)
	}

	if len(display.failures) != 1 || display.failures[0].Path != "/r/b" {
		t.Errorf("failures = %v", display.failures)
	}
}
