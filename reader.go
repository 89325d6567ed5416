package smx

import (
	"encoding/binary"
	"io"
)

// ReadMagic reads the 4-byte magic number and infers the byte order of the
// file from it. It returns a *MagicError if neither byte order matches.
func ReadMagic(r io.Reader) (Endianness, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, err
	}
	return inferEndianness(magic)
}

func inferEndianness(magic [4]byte) (Endianness, error) {
	switch Magic {
	case binary.LittleEndian.Uint32(magic[:]):
		return Little, nil
	case binary.BigEndian.Uint32(magic[:]):
		return Big, nil
	}
	return 0, &MagicError{Magic: magic}
}

// Read reads a file from r and delivers every section to sink, in
// section-info order. It returns the byte order of the file.
//
// If an error occurs after the first section was delivered, sink keeps the
// sections it already received.
func Read(r io.ReadSeeker, sink Sink) (Endianness, error) {
	rd, err := NewReader(r)
	if err != nil {
		return 0, err
	}
	return rd.Endianness(), rd.Scan(sink)
}

// --------------------------------------------------------------------

// Reader instances provide access to the sections of a file.
type Reader struct {
	r      io.ReadSeeker // in image coordinates
	endian Endianness
	hdr    Header
	strtab *StringTable
	infos  []SectionInfo
}

// NewReader reads and validates the header, the string table and the
// section-info table. If the payload is compressed, it is decompressed into
// memory. Section names and data are resolved lazily.
func NewReader(r io.ReadSeeker) (*Reader, error) {
	endian, err := ReadMagic(r)
	if err != nil {
		return nil, err
	}
	return NewReaderAfterMagic(r, endian)
}

// NewReaderAfterMagic is like NewReader, but expects the magic number to be
// consumed already, e.g. by ReadMagic.
func NewReaderAfterMagic(r io.ReadSeeker, endian Endianness) (*Reader, error) {
	rd := &Reader{endian: endian}
	if err := rd.init(r); err != nil {
		return nil, err
	}
	return rd, nil
}

func (rd *Reader) init(r io.ReadSeeker) error {
	order := rd.endian.ByteOrder()

	// magic was consumed by the caller
	var buf [HeaderSize]byte
	order.PutUint32(buf[0:], Magic)

	if _, err := io.ReadFull(r, buf[4:6]); err != nil {
		return err
	}
	if v := order.Uint16(buf[4:]); v != Version {
		return &VersionError{Version: v}
	}

	if _, err := io.ReadFull(r, buf[6:7]); err != nil {
		return err
	}
	if c := Compression(buf[6]); !c.isValid() {
		return &CompressionError{Type: buf[6]}
	}

	if _, err := io.ReadFull(r, buf[7:]); err != nil {
		return err
	}
	rd.hdr.DecodeFrom(buf[:], order)

	infoStart, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if rd.hdr.PayloadOffset < rd.hdr.StringTableOffset ||
		int64(rd.hdr.StringTableOffset) < rd.hdr.SectionInfoOffset(int(rd.hdr.SectionCount)) {
		return ErrBadLayout
	}

	if _, err := r.Seek(int64(rd.hdr.StringTableOffset), io.SeekStart); err != nil {
		return err
	}
	blob, err := readExactly(r, int64(rd.hdr.PayloadOffset-rd.hdr.StringTableOffset))
	if err != nil {
		return err
	}
	rd.strtab = NewStringTable(blob)

	if rd.r, err = newPayloadReader(r, &rd.hdr); err != nil {
		return err
	}

	end, err := rd.r.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if end != int64(rd.hdr.ImageSize) {
		return &ImageSizeError{Declared: rd.hdr.ImageSize, Actual: end}
	}

	if _, err := rd.r.Seek(infoStart, io.SeekStart); err != nil {
		return err
	}
	raw, err := readExactly(rd.r, int64(rd.hdr.SectionCount)*SectionInfoSize)
	if err != nil {
		return err
	}
	rd.infos = make([]SectionInfo, rd.hdr.SectionCount)
	for i := range rd.infos {
		rd.infos[i].DecodeFrom(raw[i*SectionInfoSize:], order)
	}
	return nil
}

// Endianness returns the inferred byte order.
func (rd *Reader) Endianness() Endianness { return rd.endian }

// Header returns the decoded header.
func (rd *Reader) Header() Header { return rd.hdr }

// StringTable returns the string table.
func (rd *Reader) StringTable() *StringTable { return rd.strtab }

// NumSections returns the number of sections.
func (rd *Reader) NumSections() int { return len(rd.infos) }

// SectionInfo returns the i-th section-info record.
func (rd *Reader) SectionInfo(i int) SectionInfo { return rd.infos[i] }

// SectionName resolves the name of the i-th section.
func (rd *Reader) SectionName(i int) (string, error) {
	off := rd.infos[i].NameOffset
	name, ok := rd.strtab.Lookup(int(off))
	if !ok {
		return "", &SectionNameOffsetError{
			Section:         i,
			NameOffset:      off,
			StringTableSize: rd.strtab.Len(),
		}
	}
	return name, nil
}

// SectionData reads the data of the i-th section.
func (rd *Reader) SectionData(i int) ([]byte, error) {
	info := rd.infos[i]
	if info.End() > int64(rd.hdr.ImageSize) {
		return nil, io.ErrUnexpectedEOF
	}

	if _, err := rd.r.Seek(int64(info.DataOffset), io.SeekStart); err != nil {
		return nil, err
	}
	data := make([]byte, info.Length)
	if _, err := io.ReadFull(rd.r, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Scan delivers every section to sink, in section-info order. Errors
// returned by sink are wrapped in a *WriterError.
func (rd *Reader) Scan(sink Sink) error {
	for i := range rd.infos {
		name, err := rd.SectionName(i)
		if err != nil {
			return err
		}
		data, err := rd.SectionData(i)
		if err != nil {
			return err
		}
		if err := sink.WriteSection(name, data); err != nil {
			return &WriterError{Err: err}
		}
	}
	return nil
}

// readExactly reads n bytes without allocating more than what r delivers.
func readExactly(r io.Reader, n int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, n))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != n {
		return nil, io.ErrUnexpectedEOF
	}
	return data, nil
}
