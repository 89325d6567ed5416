package smx_test

import (
	"github.com/bsm/smx"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SectionList", func() {
	It("should reject duplicate names", func() {
		_, err := smx.NewSectionList([]smx.Section{
			{Name: "a"},
			{Name: "b"},
			{Name: "a"},
			{Name: "b"},
		})
		Expect(err).To(MatchError(&smx.DuplicateNameError{First: 0, Second: 2, Name: "a"}))
		Expect(err).To(MatchError(`smx: sections #0 and #2 share the name "a"`))
	})

	It("should iterate in order", func() {
		subject, err := smx.NewSectionList([]smx.Section{
			{Name: ".z", Data: []byte{1}},
			{Name: ".a", Data: []byte{2}},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(subject.Len()).To(Equal(2))

		var names []string
		for name := range subject.All() {
			names = append(names, name)
		}
		Expect(names).To(Equal([]string{".z", ".a"}))
		Expect(subject.Slice()).To(HaveLen(2))
	})

	It("should accept duplicates when unchecked", func() {
		subject := smx.UncheckedSectionList([]smx.Section{{Name: "a"}, {Name: "a"}})
		Expect(subject.Len()).To(Equal(2))
	})
})

var _ = Describe("Sections", func() {
	It("should replace on write", func() {
		subject := make(smx.Sections)
		Expect(subject.WriteSection("a", []byte{1})).To(Succeed())
		Expect(subject.WriteSection("a", []byte{2})).To(Succeed())
		Expect(subject.Len()).To(Equal(1))
		Expect(subject).To(HaveKeyWithValue("a", []byte{2}))
	})

	It("should stop iterating early", func() {
		subject := smx.Sections{"a": nil, "b": nil, "c": nil}

		n := 0
		for range subject.All() {
			n++
			break
		}
		Expect(n).To(Equal(1))
	})
})
