package smx

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// WriterOptions define writer specific options.
type WriterOptions struct {
	// ByteOrder of all integers in the file.
	// Default: Little.
	ByteOrder Endianness

	// Compression level of the payload. Every level except NoCompression
	// produces a zlib-compressed payload.
	// Default: NoCompression.
	Compression CompressionLevel
}

func (o *WriterOptions) norm() *WriterOptions {
	var oo WriterOptions
	if o != nil {
		oo = *o
	}

	if oo.ByteOrder != Big {
		oo.ByteOrder = Little
	}
	if !oo.Compression.isValid() {
		oo.Compression = DefaultLevel
	}

	return &oo
}

// Write encodes the sections of src into w.
//
// The whole file is laid out in memory first, so nothing is written to w
// unless src is valid. Errors from w are returned unwrapped.
func Write(w io.Writer, src SectionMap, o *WriterOptions) error {
	o = o.norm()
	order := o.ByteOrder.ByteOrder()

	if src.Len() > MaxSections {
		return ErrTooManySections
	}

	var strtab StringTable
	var payload []byte
	infos := make([]SectionInfo, 0, src.Len())
	for name, data := range src.All() {
		if strings.IndexByte(name, 0) > -1 {
			return ErrInvalidName
		}
		if len(infos) == MaxSections {
			return ErrTooManySections
		}
		if uint64(len(payload))+uint64(len(data)) > math.MaxUint32 {
			return ErrSizeOverflow
		}

		infos = append(infos, SectionInfo{
			NameOffset: uint32(strtab.Insert(name)),
			DataOffset: uint32(len(payload)), // relative until the layout is known
			Length:     uint32(len(data)),
		})
		payload = append(payload, data...)
	}

	stored := payload
	if o.Compression.Compression() == CompressionZlib {
		var err error
		if stored, err = deflate(payload, o.Compression); err != nil {
			return err
		}
	}

	strtabOffset := uint64(HeaderSize + len(infos)*SectionInfoSize)
	payloadOffset := strtabOffset + uint64(strtab.Len())
	diskSize := payloadOffset + uint64(len(stored))
	imageSize := payloadOffset + uint64(len(payload))
	if diskSize > math.MaxUint32 || imageSize > math.MaxUint32 {
		return ErrSizeOverflow
	}

	hdr := Header{
		Magic:             Magic,
		Version:           Version,
		Compression:       o.Compression.Compression(),
		DiskSize:          uint32(diskSize),
		ImageSize:         uint32(imageSize),
		SectionCount:      uint8(len(infos)),
		StringTableOffset: uint32(strtabOffset),
		PayloadOffset:     uint32(payloadOffset),
	}

	head := make([]byte, payloadOffset)
	hdr.EncodeTo(head, order)
	for i := range infos {
		info := infos[i]
		info.DataOffset += hdr.PayloadOffset
		info.EncodeTo(head[hdr.SectionInfoOffset(i):], order)
	}
	copy(head[strtabOffset:], strtab.Bytes())

	if _, err := w.Write(head); err != nil {
		return err
	}
	if len(stored) != 0 {
		if _, err := w.Write(stored); err != nil {
			return err
		}
	}
	return nil
}

func deflate(p []byte, level CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level.zlibLevel())
	if err != nil {
		return nil, fmt.Errorf("smx: %w", err)
	}
	if _, err := zw.Write(p); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --------------------------------------------------------------------

// Writer collects sections and writes them as one file on Close.
type Writer struct {
	w io.Writer
	o *WriterOptions

	sections []Section
	seen     map[string]struct{}
	closed   bool
}

// NewWriter wraps a writer and returns a Writer.
func NewWriter(w io.Writer, o *WriterOptions) *Writer {
	return &Writer{
		w:    w,
		o:    o.norm(),
		seen: make(map[string]struct{}),
	}
}

// Append adds a section. Names must be unique within a file.
// data is retained until Close.
func (w *Writer) Append(name string, data []byte) error {
	if w.closed {
		return errClosed
	}
	if strings.IndexByte(name, 0) > -1 {
		return ErrInvalidName
	}
	if _, ok := w.seen[name]; ok {
		return fmt.Errorf("smx: duplicate section name %q", name)
	}
	if len(w.sections) == MaxSections {
		return ErrTooManySections
	}

	w.seen[name] = struct{}{}
	w.sections = append(w.sections, Section{Name: name, Data: data})
	return nil
}

// Close writes the file. The Writer must not be used afterwards.
func (w *Writer) Close() error {
	if w.closed {
		return errClosed
	}
	w.closed = true
	return Write(w.w, UncheckedSectionList(w.sections), w.o)
}
