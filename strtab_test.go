package smx_test

import (
	"github.com/bsm/smx"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("StringTable", func() {
	var subject *smx.StringTable

	BeforeEach(func() {
		subject = new(smx.StringTable)
	})

	It("should start empty", func() {
		Expect(subject.Len()).To(Equal(0))
		Expect(subject.Bytes()).To(BeEmpty())
	})

	It("should insert", func() {
		Expect(subject.Insert("OnPluginStart")).To(Equal(0))
		Expect(string(subject.Bytes())).To(Equal("OnPluginStart\x00"))
	})

	It("should deduplicate", func() {
		Expect(subject.Insert("OnPluginStart")).To(Equal(0))
		Expect(subject.Insert("LogMessage")).To(Equal(14))
		Expect(subject.Insert("OnPluginStart")).To(Equal(0))
		Expect(subject.Insert("OnPluginEnd")).To(Equal(25))
		Expect(subject.Insert("LogMessage")).To(Equal(14))
		Expect(string(subject.Bytes())).To(Equal("OnPluginStart\x00LogMessage\x00OnPluginEnd\x00"))
	})

	It("should store empty strings", func() {
		Expect(subject.Insert("a")).To(Equal(0))
		Expect(subject.Insert("")).To(Equal(2))
		Expect(subject.Insert("")).To(Equal(2))
		Expect(subject.Len()).To(Equal(3))
	})

	It("should look up", func() {
		subject.Insert("OnPluginStart")
		subject.Insert("LogMessage")

		Expect(lookup(subject, 0)).To(Equal("OnPluginStart"))
		Expect(lookup(subject, 14)).To(Equal("LogMessage"))
		Expect(lookup(subject, 2)).To(Equal("PluginStart"))
		Expect(lookup(subject, 13)).To(Equal(""))

		_, ok := subject.Lookup(25)
		Expect(ok).To(BeFalse())
		_, ok = subject.Lookup(-1)
		Expect(ok).To(BeFalse())
	})

	It("should look up unterminated strings", func() {
		subject = smx.NewStringTable([]byte("main\x00tail"))
		Expect(lookup(subject, 5)).To(Equal("tail"))
	})

	It("should iterate", func() {
		subject = smx.NewStringTable([]byte("a\x00bc\x00\x00d"))

		var offs []int
		var strs []string
		for off, s := range subject.All() {
			offs = append(offs, off)
			strs = append(strs, s)
		}
		Expect(offs).To(Equal([]int{0, 2, 5, 6}))
		Expect(strs).To(Equal([]string{"a", "bc", "", "d"}))
	})
})

func lookup(t *smx.StringTable, off int) string {
	s, ok := t.Lookup(off)
	Expect(ok).To(BeTrue(), "offset %d", off)
	return s
}
