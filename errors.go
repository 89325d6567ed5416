package smx

import "fmt"

// MagicError is returned when a file does not start with the SMX magic
// number in either byte order.
type MagicError struct {
	Magic [4]byte
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("smx: wrong magic number: % x", e.Magic[:])
}

// VersionError is returned for an unsupported format version.
type VersionError struct {
	Version uint16
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("smx: unsupported version: 0x%04x", e.Version)
}

// CompressionError is returned for an unknown compression type.
type CompressionError struct {
	Type byte
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("smx: unsupported compression type: 0x%02x", e.Type)
}

// DecompressError is returned when the compressed payload is corrupt or
// truncated.
type DecompressError struct {
	Err error
}

func (e *DecompressError) Error() string { return "smx: decompression error: " + e.Err.Error() }
func (e *DecompressError) Unwrap() error { return e.Err }

// DiskSizeError is returned when the stored payload length does not match
// the length implied by the header's disk size.
type DiskSizeError struct {
	Expected int64 // disk size - payload offset
	Actual   int64 // bytes found after the payload offset
}

func (e *DiskSizeError) Error() string {
	return fmt.Sprintf("smx: compressed payload is not at disk size (expected 0x%08x, actual 0x%08x)", e.Expected, e.Actual)
}

// ImageSizeError is returned when the decompressed image is not as long as
// the header declares.
type ImageSizeError struct {
	Declared uint32
	Actual   int64
}

func (e *ImageSizeError) Error() string {
	return fmt.Sprintf("smx: whole file is not at declared image size (declared 0x%08x, actual 0x%08x)", e.Declared, e.Actual)
}

// SectionNameOffsetError is returned when a section's name offset points
// outside the string table.
type SectionNameOffsetError struct {
	Section         int
	NameOffset      uint32
	StringTableSize int
}

func (e *SectionNameOffsetError) Error() string {
	return fmt.Sprintf("smx: section #%d has invalid offset 0x%04x into string table of size 0x%04x", e.Section, e.NameOffset, e.StringTableSize)
}

// WriterError wraps an error returned by a Sink.
type WriterError struct {
	Err error
}

func (e *WriterError) Error() string { return "smx: writer-indicated error: " + e.Err.Error() }
func (e *WriterError) Unwrap() error { return e.Err }

// DuplicateNameError is returned by NewSectionList when two entries share
// a name.
type DuplicateNameError struct {
	First, Second int
	Name          string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("smx: sections #%d and #%d share the name %q", e.First, e.Second, e.Name)
}
