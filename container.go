package smx

import (
	"bytes"
	"io"
	"iter"
	"maps"
	"os"
	"slices"
	"strings"
)

// Container is an in-memory set of named sections.
//
// Names are unique: Set replaces the data of an existing section, and when
// a file holds two sections with the same name, the later one wins.
type Container struct {
	sections Sections
}

// New returns an empty Container.
func New() *Container {
	return &Container{sections: make(Sections)}
}

// ReadContainer reads a whole file from r.
func ReadContainer(r io.ReadSeeker) (*Container, Endianness, error) {
	c := New()
	endian, err := Read(r, c)
	if err != nil {
		return nil, 0, err
	}
	return c, endian, nil
}

// Len returns the number of sections.
func (c *Container) Len() int { return len(c.sections) }

// Get returns the data of a section.
func (c *Container) Get(name string) ([]byte, bool) {
	data, ok := c.sections[name]
	return data, ok
}

// Set stores a section, replacing any section with the same name. It
// returns ErrInvalidName if name contains a NUL byte.
func (c *Container) Set(name string, data []byte) error {
	if strings.IndexByte(name, 0) > -1 {
		return ErrInvalidName
	}
	c.sections[name] = data
	return nil
}

// Delete removes a section.
func (c *Container) Delete(name string) { delete(c.sections, name) }

// Names returns the section names in lexical order.
func (c *Container) Names() []string {
	return slices.Sorted(maps.Keys(c.sections))
}

// All implements SectionMap.
func (c *Container) All() iter.Seq2[string, []byte] { return c.sections.All() }

// WriteSection implements Sink.
func (c *Container) WriteSection(name string, data []byte) error {
	return c.sections.WriteSection(name, data)
}

// Equal reports whether both containers hold the same sections.
func (c *Container) Equal(other *Container) bool {
	return maps.EqualFunc(c.sections, other.sections, bytes.Equal)
}

// Encode writes the container to w.
func (c *Container) Encode(w io.Writer, o *WriterOptions) error {
	return Write(w, c.sections, o)
}

// WriteFile writes the container to a file, which is created or truncated.
func (c *Container) WriteFile(name string, o *WriterOptions) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := c.Encode(f, o); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
