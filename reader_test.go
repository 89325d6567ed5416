package smx_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/bsm/smx"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Read", func() {
	// patch returns a copy of data with a 32-bit field rewritten.
	patch := func(data []byte, off int, fn func(uint32) uint32) []byte {
		out := append([]byte(nil), data...)
		order := smx.Little.ByteOrder()
		order.PutUint32(out[off:], fn(order.Uint32(out[off:])))
		return out
	}

	table.DescribeTable("round-trips",
		func(src smx.Sections) {
			for _, order := range orders {
				for _, level := range levels {
					data := encode(src, order, level)

					secs, endian, err := decode(data)
					Expect(err).NotTo(HaveOccurred(), "%s/%s", order, level)
					Expect(endian).To(Equal(order))
					Expect(secs).To(HaveLen(len(src)))
					for name, want := range src {
						Expect(secs).To(HaveKey(name))
						Expect(secs[name]).To(HaveLen(len(want)))
						if len(want) != 0 {
							Expect(secs[name]).To(Equal(want))
						}
					}
				}
			}
		},
		table.Entry("empty", smx.Sections{}),
		table.Entry("one empty section", smx.Sections{".empty": nil}),
		table.Entry("two empty sections", smx.Sections{".a": {}, ".b": {}}),
		table.Entry("two filled sections", smx.Sections{
			".section_a": {4, 20, 133, 7},
			".section_b": {1, 2, 3, 4, 5, 6},
		}),
		table.Entry("unnamed section", smx.Sections{"": {1}}),
		table.Entry("max sections", randomSections(smx.MaxSections)),
	)

	It("should read the two-section fixture", func() {
		secs, endian, err := decode(encode(twoSections(), smx.Little, smx.NoCompression))
		Expect(err).NotTo(HaveOccurred())
		Expect(endian).To(Equal(smx.Little))
		Expect(secs).To(Equal(smx.Sections{
			".section_a": {4, 20, 133, 7},
			".section_b": {1, 2, 3, 4, 5, 6},
		}))
	})

	It("should keep the last of duplicate sections", func() {
		data := encode(smx.UncheckedSectionList([]smx.Section{
			{Name: ".code", Data: []byte{1}},
			{Name: ".code", Data: []byte{2}},
		}), smx.Little, smx.NoCompression)

		secs, _, err := decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(secs).To(Equal(smx.Sections{".code": {2}}))
	})

	It("should reject bad magic", func() {
		_, _, err := decode([]byte{1, 2, 3, 4, 5, 6, 7, 8})
		Expect(err).To(MatchError(&smx.MagicError{Magic: [4]byte{1, 2, 3, 4}}))
		Expect(err).To(MatchError("smx: wrong magic number: 01 02 03 04"))
	})

	It("should reject unsupported versions", func() {
		data := encode(twoSections(), smx.Little, smx.NoCompression)
		data[4], data[5] = 0x01, 0x01

		_, _, err := decode(data)
		Expect(err).To(MatchError(&smx.VersionError{Version: 0x0101}))
	})

	It("should reject unknown compression types", func() {
		data := encode(twoSections(), smx.Big, smx.NoCompression)
		data[6] = 2

		_, _, err := decode(data)
		Expect(err).To(MatchError(&smx.CompressionError{Type: 2}))
	})

	It("should reject image size mismatches", func() {
		for _, level := range levels {
			data := encode(twoSections(), smx.Little, level)
			data = patch(data, 11, func(v uint32) uint32 { return v - 1 })

			_, _, err := decode(data)
			Expect(err).To(MatchError(&smx.ImageSizeError{Declared: 79, Actual: 80}), "%s", level)
		}
	})

	It("should reject invalid name offsets", func() {
		data := encode(twoSections(), smx.Little, smx.NoCompression)
		data = patch(data, 24, func(uint32) uint32 { return 22 })

		_, _, err := decode(data)
		Expect(err).To(MatchError(&smx.SectionNameOffsetError{
			Section:         0,
			NameOffset:      22,
			StringTableSize: 22,
		}))
	})

	It("should resolve name offsets into the middle of a name", func() {
		data := encode(twoSections(), smx.Little, smx.NoCompression)
		data = patch(data, 24, func(uint32) uint32 { return 9 })

		secs, _, err := decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(secs).To(HaveKey("a"))
	})

	It("should reject disk size mismatches", func() {
		data := encode(twoSections(), smx.Little, smx.DefaultLevel)

		_, _, err := decode(data[:len(data)-1])
		Expect(err).To(BeAssignableToTypeOf(&smx.DiskSizeError{}))
		n := int64(len(data) - 70)
		Expect(err).To(MatchError(&smx.DiskSizeError{Expected: n, Actual: n - 1}))
	})

	It("should reject corrupt payloads", func() {
		data := encode(twoSections(), smx.Little, smx.DefaultLevel)
		data[70] = 0

		_, _, err := decode(data)
		Expect(err).To(BeAssignableToTypeOf(&smx.DecompressError{}))
		Expect(errors.Unwrap(err)).To(HaveOccurred())
	})

	It("should reject sections beyond the image", func() {
		data := encode(twoSections(), smx.Little, smx.NoCompression)
		data = patch(data, 44, func(v uint32) uint32 { return v + 1 })

		_, _, err := decode(data)
		Expect(err).To(MatchError(io.ErrUnexpectedEOF))
	})

	It("should reject bad layouts", func() {
		data := encode(twoSections(), smx.Little, smx.NoCompression)
		data = patch(data, 20, func(uint32) uint32 { return 40 })

		_, _, err := decode(data)
		Expect(err).To(MatchError(smx.ErrBadLayout))

		data = encode(twoSections(), smx.Little, smx.NoCompression)
		data = patch(data, 16, func(uint32) uint32 { return 40 })
		_, _, err = decode(data)
		Expect(err).To(MatchError(smx.ErrBadLayout))
	})

	It("should reject truncated files", func() {
		data := encode(twoSections(), smx.Little, smx.NoCompression)

		_, _, err := decode(data[:10])
		Expect(err).To(MatchError(io.ErrUnexpectedEOF))

		_, _, err = decode(data[:2])
		Expect(err).To(MatchError(io.ErrUnexpectedEOF))

		_, _, err = decode(nil)
		Expect(err).To(MatchError(io.EOF))
	})

	It("should wrap sink errors", func() {
		data := encode(twoSections(), smx.Little, smx.NoCompression)
		boom := errors.New("boom")

		var seen []string
		_, err := smx.Read(bytes.NewReader(data), smx.SinkFunc(func(name string, _ []byte) error {
			seen = append(seen, name)
			if len(seen) == 2 {
				return boom
			}
			return nil
		}))
		Expect(err).To(MatchError(&smx.WriterError{Err: boom}))
		Expect(err).To(MatchError("smx: writer-indicated error: boom"))
		Expect(errors.Unwrap(err)).To(Equal(boom))
		Expect(seen).To(Equal([]string{".section_a", ".section_b"}))
	})
})

var _ = Describe("Reader", func() {
	var subject *smx.Reader

	BeforeEach(func() {
		var err error
		subject, err = smx.NewReader(bytes.NewReader(encode(twoSections(), smx.Big, smx.DefaultLevel)))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should expose the header", func() {
		Expect(subject.Endianness()).To(Equal(smx.Big))

		hdr := subject.Header()
		Expect(hdr.Magic).To(Equal(smx.Magic))
		Expect(hdr.Version).To(Equal(smx.Version))
		Expect(hdr.Compression).To(Equal(smx.CompressionZlib))
		Expect(hdr.ImageSize).To(Equal(uint32(80)))
		Expect(hdr.SectionCount).To(Equal(uint8(2)))
		Expect(hdr.StringTableOffset).To(Equal(uint32(48)))
		Expect(hdr.PayloadOffset).To(Equal(uint32(70)))
	})

	It("should expose sections", func() {
		Expect(subject.NumSections()).To(Equal(2))
		Expect(subject.SectionInfo(1)).To(Equal(smx.SectionInfo{NameOffset: 11, DataOffset: 74, Length: 6}))
		Expect(subject.SectionName(1)).To(Equal(".section_b"))
		Expect(subject.SectionData(1)).To(Equal([]byte{1, 2, 3, 4, 5, 6}))
		Expect(subject.SectionData(0)).To(Equal([]byte{4, 20, 133, 7}))
	})

	It("should expose the string table", func() {
		Expect(string(subject.StringTable().Bytes())).To(Equal(".section_a\x00.section_b\x00"))
	})

	It("should read after magic", func() {
		r := bytes.NewReader(encode(twoSections(), smx.Little, smx.NoCompression))
		endian, err := smx.ReadMagic(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(endian).To(Equal(smx.Little))

		rd, err := smx.NewReaderAfterMagic(r, endian)
		Expect(err).NotTo(HaveOccurred())
		Expect(rd.NumSections()).To(Equal(2))
	})
})

func randomSections(n int) smx.Sections {
	rnd := rand.New(rand.NewSource(33))
	src := make(smx.Sections, n)
	for i := 0; i < n; i++ {
		data := make([]byte, rnd.Intn(512))
		rnd.Read(data)
		src[fmt.Sprintf(".section_%03d", i)] = data
	}
	return src
}
