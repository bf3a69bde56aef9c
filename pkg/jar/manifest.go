// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jar

import (
	"bytes"
	"errors"
	"strings"
)

var errManifestMalformed = errors.New("manifest malformed")

// An Attribute is a single manifest attribute. Attribute names are
// case-insensitive; the name is stored as written.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered list of manifest attributes.
type Attributes []Attribute

// Get returns the value of the named attribute, matched case-insensitively.
func (as Attributes) Get(name string) (string, bool) {
	for _, a := range as {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// A Section is one section of a manifest: the main section, or a named
// per-entry section.
type Section struct {
	// Name is the value of the Name attribute, or empty for the main section.
	Name string

	Attributes Attributes

	// raw holds the exact bytes of the section as stored, including the
	// trailing blank line. Signature files carry digests computed over these
	// bytes, so they must be preserved verbatim.
	raw []byte
}

// A Manifest is a parsed JAR manifest. The same layout is used by signature
// (.SF) files.
type Manifest struct {
	Main     Section
	Sections []Section

	byName map[string]int
}

// Section returns the per-entry section named name, or nil.
func (m *Manifest) Section(name string) *Section {
	i, ok := m.byName[name]
	if !ok {
		return nil
	}
	return &m.Sections[i]
}

// splitChunks splits b into raw section chunks. A chunk extends through the
// blank line (or run of blank lines) that terminates it, so the chunk bytes
// are exactly the bytes a signature file digest covers.
func splitChunks(b []byte) [][]byte {
	var chunks [][]byte

	start := 0
	blank := false
	for i := 0; i < len(b); {
		var line []byte
		next := len(b)
		if j := bytes.IndexByte(b[i:], '\n'); j >= 0 {
			next = i + j + 1
			line = b[i : i+j]
		} else {
			line = b[i:]
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})

		if blank && len(line) > 0 {
			chunks = append(chunks, b[start:i])
			start = i
		}
		blank = len(line) == 0
		i = next
	}
	if start < len(b) {
		chunks = append(chunks, b[start:])
	}

	return chunks
}

// parseChunk parses the attributes of one raw section chunk, unfolding
// continuation lines.
func parseChunk(raw []byte) (Attributes, error) {
	var as Attributes

	for _, line := range bytes.Split(raw, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}

		// A line starting with a space continues the previous attribute value.
		if line[0] == ' ' {
			if len(as) == 0 {
				return nil, errManifestMalformed
			}
			as[len(as)-1].Value += string(line[1:])
			continue
		}

		i := bytes.IndexByte(line, ':')
		if i <= 0 {
			return nil, errManifestMalformed
		}
		as = append(as, Attribute{
			Name:  string(line[:i]),
			Value: strings.TrimPrefix(string(line[i+1:]), " "),
		})
	}

	return as, nil
}

// parseManifest parses manifest (or signature file) bytes. The first section
// is the main section; each subsequent section must open with a Name
// attribute naming the entry it describes.
func parseManifest(b []byte) (*Manifest, error) {
	m := Manifest{byName: make(map[string]int)}

	for i, raw := range splitChunks(b) {
		as, err := parseChunk(raw)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			m.Main = Section{Attributes: as, raw: raw}
			continue
		}

		name, ok := as.Get("Name")
		if !ok {
			return nil, errManifestMalformed
		}
		m.Sections = append(m.Sections, Section{Name: name, Attributes: as, raw: raw})
	}

	for i, s := range m.Sections {
		// First occurrence wins for duplicate names.
		if _, ok := m.byName[s.Name]; !ok {
			m.byName[s.Name] = i
		}
	}

	return &m, nil
}
