// Package corpus drives bulk, concurrent round-trip verification of
// internal/fastfloat against newline-delimited files of decimal
// literals: one fast-path parse and one slow-path parse per line,
// compared bit-for-bit, with duplicate literals folded together.
package corpus

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Reader exposes a corpus file's bytes either copied into memory or
// mapped read-only, mirroring the two strategies the BRC solver this
// package is adapted from offered for its input files.
type Reader interface {
	Open(filename string) error
	Close() error
	Size() int64
	Bytes() []byte
}

type diskReader struct {
	filename string
	data     []byte
}

// NewDiskReader returns a Reader that reads the whole corpus file into
// a heap-allocated buffer up front.
func NewDiskReader() Reader {
	return &diskReader{}
}

func (r *diskReader) Open(filename string) error {
	if r.data != nil {
		return fmt.Errorf("corpus: file already open")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("corpus: cannot read file: %w", err)
	}
	r.filename = filename
	r.data = data
	return nil
}

func (r *diskReader) Close() error {
	r.data = nil
	return nil
}

func (r *diskReader) Size() int64 {
	return int64(len(r.data))
}

func (r *diskReader) Bytes() []byte {
	return r.data
}

type mmapReader struct {
	filename string
	data     []byte
}

// NewMmapReader returns a Reader backed by a read-only mmap of the
// corpus file, via golang.org/x/sys/unix rather than the standard
// library's syscall package.
func NewMmapReader() Reader {
	return &mmapReader{}
}

func (r *mmapReader) Open(filename string) error {
	if r.data != nil {
		return fmt.Errorf("corpus: file already open")
	}
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("corpus: cannot open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("corpus: cannot stat file: %w", err)
	}
	size := info.Size()
	if size == 0 {
		r.filename = filename
		r.data = []byte{}
		return nil
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return fmt.Errorf("corpus: cannot mmap file: %w", err)
	}
	r.filename = filename
	r.data = data
	return nil
}

func (r *mmapReader) Close() error {
	if r.data == nil || len(r.data) == 0 {
		r.data = nil
		return nil
	}
	err := unix.Munmap(r.data)
	r.data = nil
	return err
}

func (r *mmapReader) Size() int64 {
	return int64(len(r.data))
}

func (r *mmapReader) Bytes() []byte {
	return r.data
}
