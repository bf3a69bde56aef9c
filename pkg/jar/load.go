// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jar

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

var (
	errNoManifest             = errors.New("signed archive contains no manifest")
	errSignatureFileOrphan    = errors.New("signature block without signature file")
	errSignatureBlockNotFound = errors.New("signature file without signature block")
)

// blockExts are the recognized signature block extensions, in the order they
// are searched for a given signature file.
var blockExts = []string{".RSA", ".DSA", ".EC"}

// NewFile examines the archive read from r, parsing its signing metadata: the
// manifest and each signature file paired with its signature block. The
// signature of each block is verified against the certificates embedded in it;
// certificate chains are not validated against trust anchors.
//
// A malformed archive, manifest, signature file or signature block is an
// error, as is a signature file without a block (or vice versa).
func NewFile(r io.ReaderAt, size int64) (*File, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("jar: %w", err)
	}

	f := &File{zr: zr}

	f.entries = make([]Entry, 0, len(zr.File))
	for _, zf := range zr.File {
		f.entries = append(f.entries, Entry{zf: zf})
	}

	if err := f.readSigningMetadata(); err != nil {
		return nil, fmt.Errorf("jar: %w", err)
	}

	return f, nil
}

// LoadFile opens the JAR file at path for reading. The returned File owns the
// underlying handle; call UnloadFile to release it.
func LoadFile(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jar: %w", err)
	}

	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("jar: %w", err)
	}

	f, err := NewFile(fp, fi.Size())
	if err != nil {
		fp.Close()
		return nil, err
	}
	f.c = fp

	return f, nil
}

// UnloadFile releases the handle owned by f, if any.
func (f *File) UnloadFile() error {
	if f.c == nil {
		return nil
	}
	if err := f.c.Close(); err != nil {
		return fmt.Errorf("jar: %w", err)
	}
	f.c = nil
	return nil
}

// isMetaInfFile returns whether name refers to a file directly under the
// META-INF/ directory, and if so, its base name in upper case.
func isMetaInfFile(name string) (string, bool) {
	u := strings.ToUpper(name)
	if !strings.HasPrefix(u, metaInfDir) {
		return "", false
	}
	base := u[len(metaInfDir):]
	if base == "" || strings.Contains(base, "/") {
		return "", false
	}
	return base, true
}

// readAll reads the full content of e.
func (f *File) readAll(e Entry) ([]byte, error) {
	rc, err := e.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// readSigningMetadata parses the manifest and signers of f. Entries are not
// consumed; only the signing infrastructure files under META-INF/ are read.
func (f *File) readSigningMetadata() error {
	byUpper := make(map[string]Entry)
	for _, e := range f.entries {
		if base, ok := isMetaInfFile(e.Name()); ok && !e.IsDir() {
			byUpper[base] = e
		}
	}

	if e, ok := byUpper["MANIFEST.MF"]; ok {
		b, err := f.readAll(e)
		if err != nil {
			return err
		}
		m, err := parseManifest(b)
		if err != nil {
			return fmt.Errorf("parsing %v: %w", e.Name(), err)
		}
		f.manifest = m
	}

	for base, e := range byUpper {
		ext := path.Ext(base)

		switch {
		case ext == ".SF":
			s, err := f.readSigner(byUpper, e, strings.TrimSuffix(base, ext))
			if err != nil {
				return err
			}
			f.signers = append(f.signers, s)

		case isBlockExt(ext):
			if _, ok := byUpper[strings.TrimSuffix(base, ext)+".SF"]; !ok {
				return fmt.Errorf("%v: %w", e.Name(), errSignatureFileOrphan)
			}
		}
	}

	if len(f.signers) > 0 && f.manifest == nil {
		return errNoManifest
	}

	// Archive order of the signature files, for reproducible signer resolution.
	sortSigners(f.signers)

	return nil
}

// readSigner reads and parses the signature file e and its signature block.
func (f *File) readSigner(byUpper map[string]Entry, e Entry, base string) (*signer, error) {
	sfData, err := f.readAll(e)
	if err != nil {
		return nil, err
	}

	for _, ext := range blockExts {
		be, ok := byUpper[base+ext]
		if !ok {
			continue
		}

		blockData, err := f.readAll(be)
		if err != nil {
			return nil, err
		}

		s, err := newSigner(base, sfData, blockData)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("%v: %w", e.Name(), errSignatureBlockNotFound)
}

func isBlockExt(ext string) bool {
	for _, e := range blockExts {
		if ext == e {
			return true
		}
	}
	return false
}
