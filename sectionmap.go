package smx

import "iter"

// SectionMap is a source of sections for Write.
//
// Implementations must never yield two sections with the same name. A
// duplicate would be stored twice under one name offset and only one of
// the two would survive a read.
type SectionMap interface {
	// Len returns the number of sections yielded by All.
	Len() int
	// All iterates over (name, data) pairs.
	All() iter.Seq2[string, []byte]
}

// Sink receives sections while a file is read, in section-info order.
// Returning an error aborts the read; the error is wrapped in a WriterError.
type Sink interface {
	WriteSection(name string, data []byte) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(name string, data []byte) error

// WriteSection implements Sink.
func (f SinkFunc) WriteSection(name string, data []byte) error { return f(name, data) }

// --------------------------------------------------------------------

// Sections is a name-keyed SectionMap. Keys are unique by construction.
//
// As a Sink, a later section replaces an earlier one with the same name.
type Sections map[string][]byte

// Len implements SectionMap.
func (s Sections) Len() int { return len(s) }

// All implements SectionMap. Iteration order is unspecified.
func (s Sections) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for name, data := range s {
			if !yield(name, data) {
				return
			}
		}
	}
}

// WriteSection implements Sink.
func (s Sections) WriteSection(name string, data []byte) error {
	s[name] = data
	return nil
}

// --------------------------------------------------------------------

// Section is a named blob.
type Section struct {
	Name string
	Data []byte
}

// SectionList is an ordered SectionMap backed by a slice. Sections are
// written in slice order.
type SectionList struct {
	s []Section
}

// NewSectionList checks that no two sections share a name and returns a
// list backed by s. The check compares every pair, so it is quadratic in
// len(s); the first colliding pair is reported as a *DuplicateNameError.
func NewSectionList(s []Section) (SectionList, error) {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[i].Name == s[j].Name {
				return SectionList{}, &DuplicateNameError{First: i, Second: j, Name: s[i].Name}
			}
		}
	}
	return SectionList{s: s}, nil
}

// UncheckedSectionList returns a list backed by s without checking for
// duplicate names. Only use it where uniqueness is already guaranteed; a
// duplicate name yields a file in which both records share a name offset.
func UncheckedSectionList(s []Section) SectionList {
	return SectionList{s: s}
}

// Len implements SectionMap.
func (l SectionList) Len() int { return len(l.s) }

// All implements SectionMap.
func (l SectionList) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for _, sec := range l.s {
			if !yield(sec.Name, sec.Data) {
				return
			}
		}
	}
}

// Slice returns the backing slice.
func (l SectionList) Slice() []Section { return l.s }
