package smx_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bsm/smx"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Container", func() {
	var subject *smx.Container

	BeforeEach(func() {
		subject = smx.New()
		Expect(subject.Set(".names", []byte("main\x00"))).To(Succeed())
		Expect(subject.Set(".code", []byte{46, 0, 0, 0})).To(Succeed())
	})

	It("should get/set/delete", func() {
		Expect(subject.Len()).To(Equal(2))
		Expect(get(subject, ".code")).To(Equal([]byte{46, 0, 0, 0}))

		Expect(subject.Set(".code", []byte{1})).To(Succeed())
		Expect(get(subject, ".code")).To(Equal([]byte{1}))
		Expect(subject.Len()).To(Equal(2))

		subject.Delete(".code")
		_, ok := subject.Get(".code")
		Expect(ok).To(BeFalse())
		Expect(subject.Names()).To(Equal([]string{".names"}))
	})

	It("should reject invalid names", func() {
		Expect(subject.Set(".co\x00de", nil)).To(MatchError(smx.ErrInvalidName))
		Expect(subject.Len()).To(Equal(2))
	})

	It("should list names", func() {
		Expect(subject.Set(".data", nil)).To(Succeed())
		Expect(subject.Names()).To(Equal([]string{".code", ".data", ".names"}))
	})

	It("should compare", func() {
		other := smx.New()
		Expect(subject.Equal(other)).To(BeFalse())

		Expect(other.Set(".code", []byte{46, 0, 0, 0})).To(Succeed())
		Expect(other.Set(".names", []byte("main\x00"))).To(Succeed())
		Expect(subject.Equal(other)).To(BeTrue())

		Expect(other.Set(".names", []byte("main"))).To(Succeed())
		Expect(subject.Equal(other)).To(BeFalse())
	})

	It("should encode/decode", func() {
		for _, order := range orders {
			for _, level := range levels {
				buf := new(bytes.Buffer)
				Expect(subject.Encode(buf, &smx.WriterOptions{ByteOrder: order, Compression: level})).To(Succeed())

				decoded, endian, err := smx.ReadContainer(bytes.NewReader(buf.Bytes()))
				Expect(err).NotTo(HaveOccurred())
				Expect(endian).To(Equal(order))
				Expect(decoded.Equal(subject)).To(BeTrue())
			}
		}
	})

	It("should not return partial containers", func() {
		c, _, err := smx.ReadContainer(bytes.NewReader([]byte("junk")))
		Expect(err).To(HaveOccurred())
		Expect(c).To(BeNil())
	})

	Describe("files", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = ioutil.TempDir("", "smx-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(os.RemoveAll(dir)).To(Succeed())
		})

		It("should write/read", func() {
			name := filepath.Join(dir, "plugin.smx")
			Expect(subject.WriteFile(name, &smx.WriterOptions{Compression: smx.DefaultLevel})).To(Succeed())

			decoded, endian, err := smx.ReadFile(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(endian).To(Equal(smx.Little))
			Expect(decoded.Equal(subject)).To(BeTrue())
		})

		It("should read empty files", func() {
			name := filepath.Join(dir, "empty.smx")
			Expect(ioutil.WriteFile(name, nil, 0o644)).To(Succeed())

			_, _, err := smx.ReadFile(name)
			Expect(err).To(MatchError("EOF"))
		})

		It("should fail on missing files", func() {
			_, _, err := smx.ReadFile(filepath.Join(dir, "missing.smx"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})
})

func get(c *smx.Container, name string) []byte {
	data, ok := c.Get(name)
	Expect(ok).To(BeTrue(), "section %q", name)
	return data
}
