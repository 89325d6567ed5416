package smx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Format constants, shared by the read and write paths.
const (
	// Magic is the file magic number ("FFPS" when stored little-endian).
	Magic uint32 = 0x53504646
	// Version is the only format version this package reads and writes.
	Version uint16 = 0x0102

	// HeaderSize is the encoded size of a Header.
	HeaderSize = 4 + 2 + 1 + 4 + 4 + 1 + 4 + 4
	// SectionInfoSize is the encoded size of a SectionInfo record.
	SectionInfoSize = 4 + 4 + 4
	// MaxSections is the maximum number of sections in one file.
	MaxSections = 1<<8 - 1
)

var (
	// ErrTooManySections is returned when writing more than MaxSections sections.
	ErrTooManySections = fmt.Errorf("smx: too many sections, at most %d are supported", MaxSections)
	// ErrInvalidName is returned when writing a section name that contains a NUL byte.
	ErrInvalidName = errors.New("smx: section name contains a NUL byte")
	// ErrSizeOverflow is returned when an offset or size does not fit the 32-bit header fields.
	ErrSizeOverflow = errors.New("smx: size overflow")
	// ErrBadLayout is returned when the header offsets describe an impossible layout.
	ErrBadLayout = errors.New("smx: bad header layout")

	errClosed = errors.New("smx: writer is closed")
)

// --------------------------------------------------------------------

// Endianness is the byte order of a file.
type Endianness uint8

// Supported byte orders.
const (
	Little Endianness = iota
	Big
)

// ByteOrder returns the encoding/binary byte order.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endianness) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "Endianness(" + strconv.Itoa(int(e)) + ")"
	}
}

// ParseEndianness parses "little"/"le" or "big"/"be".
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	}
	return 0, fmt.Errorf("smx: unknown byte order %q", s)
}

// --------------------------------------------------------------------

// Compression is the compression type stored in the header.
type Compression byte

// Supported compression types.
const (
	CompressionNone Compression = iota
	CompressionZlib
)

func (c Compression) isValid() bool {
	return c == CompressionNone || c == CompressionZlib
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZlib:
		return "zlib"
	default:
		return "unknown"
	}
}

// CompressionLevel selects how the payload is compressed on write.
// Every level other than NoCompression produces a zlib payload.
type CompressionLevel int

// Compression levels.
const (
	DefaultCompression CompressionLevel = -1
	NoCompression      CompressionLevel = 0
	BestSpeed          CompressionLevel = 1
	DefaultLevel       CompressionLevel = 6
	BestCompression    CompressionLevel = 9
	UberCompression    CompressionLevel = 10
)

// Compression returns the header compression type for this level.
func (l CompressionLevel) Compression() Compression {
	if l == NoCompression {
		return CompressionNone
	}
	return CompressionZlib
}

func (l CompressionLevel) isValid() bool {
	return l >= DefaultCompression && l <= UberCompression
}

// zlibLevel maps l onto the deflater's level range.
func (l CompressionLevel) zlibLevel() int {
	if l > BestCompression {
		return int(BestCompression)
	}
	return int(l)
}

func (l CompressionLevel) String() string {
	switch l {
	case DefaultCompression:
		return "default"
	case NoCompression:
		return "none"
	case BestSpeed:
		return "fast"
	case BestCompression:
		return "best"
	case UberCompression:
		return "uber"
	default:
		return strconv.Itoa(int(l))
	}
}

// ParseCompressionLevel parses a level name (none, fast, default, best, uber)
// or a number between -1 and 10.
func ParseCompressionLevel(s string) (CompressionLevel, error) {
	switch strings.ToLower(s) {
	case "none", "no", "off":
		return NoCompression, nil
	case "fast", "speed":
		return BestSpeed, nil
	case "default":
		return DefaultLevel, nil
	case "best":
		return BestCompression, nil
	case "uber":
		return UberCompression, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || !CompressionLevel(n).isValid() {
		return 0, fmt.Errorf("smx: invalid compression level %q", s)
	}
	return CompressionLevel(n), nil
}
