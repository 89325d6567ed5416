//go:build unix

package smx

import (
	"bytes"
	"os"

	"golang.org/x/sys/unix"
)

// ReadFile reads a whole file. The file is memory-mapped while it is
// parsed; if mapping fails, it is read into memory instead.
func ReadFile(name string) (*Container, Endianness, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	size := stat.Size()
	if size == 0 || size != int64(int(size)) {
		return readFileFallback(name)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return readFileFallback(name)
	}
	defer func() { _ = unix.Munmap(data) }()

	// section data is copied out of the mapping by the reader
	return ReadContainer(bytes.NewReader(data))
}
