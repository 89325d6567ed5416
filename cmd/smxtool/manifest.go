package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bsm/smx"
	"github.com/golang/snappy"
	"gopkg.in/yaml.v3"
)

// Manifest describes a container to build.
//
//	byte_order: big
//	compression: uber
//	sections:
//	  - name: .code
//	    file: code.bin
//	  - name: .names
//	    text: "main\0"
type Manifest struct {
	ByteOrder   string            `yaml:"byte_order"`
	Compression string            `yaml:"compression"`
	Sections    []ManifestSection `yaml:"sections"`
}

// ManifestSection is a single manifest entry. Exactly one of File and Text
// must be set. Files ending in .sz are snappy-decoded.
type ManifestSection struct {
	Name string  `yaml:"name"`
	File string  `yaml:"file"`
	Text *string `yaml:"text"`
}

// ParseManifest parses and validates a manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	for i, s := range m.Sections {
		if s.File == "" && s.Text == nil {
			return nil, fmt.Errorf("manifest section #%d (%q): one of file or text is required", i, s.Name)
		}
		if s.File != "" && s.Text != nil {
			return nil, fmt.Errorf("manifest section #%d (%q): file and text are mutually exclusive", i, s.Name)
		}
	}
	return &m, nil
}

// LoadManifest reads a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// Load resolves section contents. Relative file paths are resolved against
// dir. Duplicate section names are rejected.
func (m *Manifest) Load(dir string) (smx.SectionList, error) {
	sections := make([]smx.Section, 0, len(m.Sections))
	for _, s := range m.Sections {
		data, err := s.load(dir)
		if err != nil {
			return smx.SectionList{}, err
		}
		sections = append(sections, smx.Section{Name: s.Name, Data: data})
	}
	return smx.NewSectionList(sections)
}

func (s ManifestSection) load(dir string) ([]byte, error) {
	if s.Text != nil {
		return []byte(*s.Text), nil
	}

	path := s.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".sz") {
		if data, err = snappy.Decode(nil, data); err != nil {
			return nil, fmt.Errorf("section %q: snappy decode: %w", s.Name, err)
		}
	}
	return data, nil
}
