// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jar

import (
	"bytes"
	"crypto/x509"
	"errors"
	"fmt"
	"hash"
	"io"
)

var errBufferEmpty = errors.New("scratch buffer empty")

func (f *File) entryCertificates(e Entry, buf []byte) ([][]*x509.Certificate, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("jar: %w", errBufferEmpty)
	}

	var sec *Section
	if f.manifest != nil && !e.IsDir() {
		sec = f.manifest.Section(e.Name())
	}

	var ds []digest
	if sec != nil {
		var err error
		if ds, err = digestsFromAttributes(sec.Attributes); err != nil {
			return nil, fmt.Errorf("jar: manifest section %q: %w", sec.Name, err)
		}
	}

	if err := f.drain(e, buf, ds); err != nil {
		return nil, err
	}

	if sec == nil {
		return nil, nil
	}

	var chains [][]*x509.Certificate
	for _, s := range f.signers {
		ok, err := s.covers(sec)
		if err != nil {
			return nil, fmt.Errorf("jar: %w", err)
		}
		if ok {
			chains = append(chains, s.chains...)
		}
	}
	return chains, nil
}

// drain fully consumes the content of e through buf, checking it against the
// digests ds the manifest declares for the entry.
func (f *File) drain(e Entry, buf []byte, ds []digest) error {
	rc, err := e.open()
	if err != nil {
		return fmt.Errorf("jar: opening entry %q: %w", e.Name(), err)
	}
	defer rc.Close()

	var w io.Writer = io.Discard
	hs := make([]hash.Hash, len(ds))
	if len(ds) > 0 {
		ws := make([]io.Writer, len(ds))
		for i, d := range ds {
			hs[i] = d.hash.New()
			ws[i] = hs[i]
		}
		w = io.MultiWriter(ws...)
	}

	if _, err := io.CopyBuffer(w, rc, buf); err != nil {
		return fmt.Errorf("jar: reading entry %q: %w", e.Name(), err)
	}

	for i, d := range ds {
		if !bytes.Equal(hs[i].Sum(nil), d.value) {
			return fmt.Errorf("jar: %w", &EntryDigestError{Name: e.Name()})
		}
	}

	return nil
}
