package runlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPath(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	got := Path("plots", "resonator A", now)
	want := filepath.Join("plots", "2024-Mar-05", "14:07:09: resonator A")
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLogWrite(t *testing.T) {
	var echo bytes.Buffer
	dir := filepath.Join(t.TempDir(), "2024-Mar-05", "run")

	l := New(dir, &echo)
	l.Printf("Set \t wr (GHz)\n")
	l.Printf("%d \t %.4f\n", 0, 5.0)

	want := "Set \t wr (GHz)\n0 \t 5.0000\n"
	if echo.String() != want {
		t.Fatalf("echo mismatch: got %q want %q", echo.String(), want)
	}
	if len(l.Lines()) != 2 {
		t.Fatalf("line count mismatch: got %d want 2", len(l.Lines()))
	}

	if err := l.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "log.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != want {
		t.Fatalf("log.txt mismatch: got %q want %q", got, want)
	}
}
