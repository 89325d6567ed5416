package smx

import "encoding/binary"

// Header is the fixed-size file header.
type Header struct {
	Magic             uint32
	Version           uint16
	Compression       Compression
	DiskSize          uint32 // file length as stored
	ImageSize         uint32 // file length once the payload is decompressed
	SectionCount      uint8
	StringTableOffset uint32
	PayloadOffset     uint32
}

// EncodeTo writes the header to buf, which must be at least HeaderSize bytes.
func (h *Header) EncodeTo(buf []byte, order binary.ByteOrder) {
	_ = buf[HeaderSize-1]
	order.PutUint32(buf[0:], h.Magic)
	order.PutUint16(buf[4:], h.Version)
	buf[6] = byte(h.Compression)
	order.PutUint32(buf[7:], h.DiskSize)
	order.PutUint32(buf[11:], h.ImageSize)
	buf[15] = h.SectionCount
	order.PutUint32(buf[16:], h.StringTableOffset)
	order.PutUint32(buf[20:], h.PayloadOffset)
}

// DecodeFrom reads the header from buf, which must be at least HeaderSize
// bytes. It does not validate any field.
func (h *Header) DecodeFrom(buf []byte, order binary.ByteOrder) {
	_ = buf[HeaderSize-1]
	h.Magic = order.Uint32(buf[0:])
	h.Version = order.Uint16(buf[4:])
	h.Compression = Compression(buf[6])
	h.DiskSize = order.Uint32(buf[7:])
	h.ImageSize = order.Uint32(buf[11:])
	h.SectionCount = buf[15]
	h.StringTableOffset = order.Uint32(buf[16:])
	h.PayloadOffset = order.Uint32(buf[20:])
}

// SectionInfoOffset returns the absolute offset of the i-th section-info record.
func (h *Header) SectionInfoOffset(i int) int64 {
	return HeaderSize + int64(i)*SectionInfoSize
}

// SectionInfo is a section-info table record.
type SectionInfo struct {
	NameOffset uint32 // relative to the string table
	DataOffset uint32 // absolute, in decompressed image coordinates
	Length     uint32
}

// EncodeTo writes the record to buf, which must be at least SectionInfoSize bytes.
func (s *SectionInfo) EncodeTo(buf []byte, order binary.ByteOrder) {
	_ = buf[SectionInfoSize-1]
	order.PutUint32(buf[0:], s.NameOffset)
	order.PutUint32(buf[4:], s.DataOffset)
	order.PutUint32(buf[8:], s.Length)
}

// DecodeFrom reads the record from buf, which must be at least
// SectionInfoSize bytes.
func (s *SectionInfo) DecodeFrom(buf []byte, order binary.ByteOrder) {
	_ = buf[SectionInfoSize-1]
	s.NameOffset = order.Uint32(buf[0:])
	s.DataOffset = order.Uint32(buf[4:])
	s.Length = order.Uint32(buf[8:])
}

// End returns the offset just past the section's data.
func (s *SectionInfo) End() int64 {
	return int64(s.DataOffset) + int64(s.Length)
}
