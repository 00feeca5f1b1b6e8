package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadersRoundTripBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	want := "1\n2\n3\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, newReader := range []func() Reader{NewDiskReader, NewMmapReader} {
		r := newReader()
		if err := r.Open(path); err != nil {
			t.Fatalf("Open: %v", err)
		}
		if got := string(r.Bytes()); got != want {
			t.Errorf("Bytes() = %q, want %q", got, want)
		}
		if r.Size() != int64(len(want)) {
			t.Errorf("Size() = %d, want %d", r.Size(), len(want))
		}
		if err := r.Open(path); err == nil {
			t.Errorf("Open while already open should fail")
		}
		if err := r.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}
}

func TestReadersEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, newReader := range []func() Reader{NewDiskReader, NewMmapReader} {
		r := newReader()
		if err := r.Open(path); err != nil {
			t.Fatalf("Open: %v", err)
		}
		if r.Size() != 0 {
			t.Errorf("Size() = %d, want 0", r.Size())
		}
		if err := r.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}
}
