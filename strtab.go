package smx

import (
	"bytes"
	"iter"
)

// StringTable is an append-only blob of NUL-terminated strings, addressed by
// byte offset.
//
// Insert deduplicates with a linear scan over the table. Files hold at most
// MaxSections names, so the table stays small enough for that to be cheaper
// than maintaining an index.
type StringTable struct {
	blob []byte
}

// NewStringTable wraps an existing blob. The table takes ownership of blob.
func NewStringTable(blob []byte) *StringTable {
	return &StringTable{blob: blob}
}

// Len returns the size of the blob in bytes.
func (t *StringTable) Len() int { return len(t.blob) }

// Bytes returns the blob. The slice aliases the table.
func (t *StringTable) Bytes() []byte { return t.blob }

// Insert stores name and returns its offset. If an identical string is
// already stored, its offset is returned instead. name must not contain NUL.
func (t *StringTable) Insert(name string) int {
	for off, s := range t.entries() {
		if string(s) == name {
			return off
		}
	}

	off := len(t.blob)
	t.blob = append(t.blob, name...)
	t.blob = append(t.blob, 0)
	return off
}

// Lookup returns the string starting at off, up to the next NUL or the end
// of the blob. It reports false if off is outside the table.
func (t *StringTable) Lookup(off int) (string, bool) {
	if off < 0 || off >= len(t.blob) {
		return "", false
	}

	s := t.blob[off:]
	if n := bytes.IndexByte(s, 0); n > -1 {
		s = s[:n]
	}
	return string(s), true
}

// All iterates over the stored strings with their offsets.
func (t *StringTable) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for off, s := range t.entries() {
			if !yield(off, string(s)) {
				return
			}
		}
	}
}

func (t *StringTable) entries() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for off := 0; off < len(t.blob); {
			s := t.blob[off:]
			n := bytes.IndexByte(s, 0)
			if n < 0 {
				n = len(s)
			}
			if !yield(off, s[:n]) {
				return
			}
			off += n + 1
		}
	}
}
