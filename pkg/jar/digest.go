// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jar

import (
	"bytes"
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

var (
	errDigestMalformed = errors.New("digest malformed")
)

// supportedAlgorithms maps manifest digest algorithm names to hash functions.
// Algorithm names this package does not recognize are skipped, per the JAR
// signing convention.
var supportedAlgorithms = map[string]crypto.Hash{
	"SHA1":    crypto.SHA1,
	"SHA-1":   crypto.SHA1,
	"SHA-224": crypto.SHA224,
	"SHA-256": crypto.SHA256,
	"SHA-384": crypto.SHA384,
	"SHA-512": crypto.SHA512,
}

const digestSuffix = "-Digest"

type digest struct {
	hash  crypto.Hash
	value []byte
}

// matches returns whether the digest of b equals d.
func (d digest) matches(b []byte) bool {
	h := d.hash.New()
	h.Write(b)
	return bytes.Equal(h.Sum(nil), d.value)
}

// digestsFromAttributes extracts the digests declared by attributes of the
// form <algorithm>-Digest, e.g. SHA-256-Digest. Values are standard base64.
func digestsFromAttributes(as Attributes) ([]digest, error) {
	var ds []digest

	for _, a := range as {
		n := a.Name
		if len(n) <= len(digestSuffix) || !strings.EqualFold(n[len(n)-len(digestSuffix):], digestSuffix) {
			continue
		}

		h, ok := supportedAlgorithms[strings.ToUpper(n[:len(n)-len(digestSuffix)])]
		if !ok || !h.Available() {
			continue
		}

		v, err := base64.StdEncoding.DecodeString(a.Value)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", n, errDigestMalformed)
		}
		if len(v) != h.Size() {
			return nil, fmt.Errorf("%v: %w", n, errDigestMalformed)
		}

		ds = append(ds, digest{hash: h, value: v})
	}

	return ds, nil
}

// EntryDigestError records a mismatch between the content of an entry and a
// digest the manifest declares for it.
type EntryDigestError struct {
	Name string // Entry name.
}

func (e *EntryDigestError) Error() string {
	if e.Name == "" {
		return "entry content does not match manifest digest"
	}
	return fmt.Sprintf("content of entry %q does not match manifest digest", e.Name)
}

// Is compares e against target. If target is an EntryDigestError and matches
// e or target has a zero value Name, true is returned.
func (e *EntryDigestError) Is(target error) bool {
	t, ok := target.(*EntryDigestError)
	if !ok {
		return false
	}
	return e.Name == t.Name || t.Name == ""
}
