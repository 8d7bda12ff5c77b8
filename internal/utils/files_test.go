package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSafeWriteFileCreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "compare.png")
	if err := SafeWriteFile(path, []byte("x")); err != nil {
		t.Fatalf("SafeWriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "x" {
		t.Fatalf("read back: %q %v", b, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestPrettyJSON(t *testing.T) {
	b, err := PrettyJSON(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "\n  \"a\": 1") {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestOutputPath(t *testing.T) {
	if got := OutputPath("out", "a.png"); got != filepath.Join("out", "a.png") {
		t.Fatalf("got %q", got)
	}
	if got := OutputPath("out", "sub/a.png"); got != "sub/a.png" {
		t.Fatalf("got %q", got)
	}
	if got := OutputPath("", "a.png"); got != "a.png" {
		t.Fatalf("got %q", got)
	}
}
