// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package integrity

import (
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/opencontainers/go-digest"
)

var errEmptyCertificateChain = errors.New("empty certificate chain")

// A SignerSet is a set of signers, keyed by the canonical fingerprint of each
// signer's leaf public key. Two sets are equal if they contain the same
// fingerprints; order is not meaningful.
type SignerSet map[digest.Digest]crypto.PublicKey

// signerSetFromChains builds a SignerSet from certificate chains, taking the
// public key of the leaf (first) certificate of each chain.
func signerSetFromChains(chains [][]*x509.Certificate) (SignerSet, error) {
	s := make(SignerSet, len(chains))

	for _, chain := range chains {
		if len(chain) == 0 {
			return nil, errEmptyCertificateChain
		}

		fp, err := KeyFingerprint(chain[0].PublicKey)
		if err != nil {
			return nil, err
		}
		s[fp] = chain[0].PublicKey
	}

	return s, nil
}

// Equal returns whether s and t contain the same signers.
func (s SignerSet) Equal(t SignerSet) bool {
	if len(s) != len(t) {
		return false
	}
	for fp := range s {
		if _, ok := t[fp]; !ok {
			return false
		}
	}
	return true
}

// Fingerprints returns the fingerprints of s in canonical order.
func (s SignerSet) Fingerprints() []digest.Digest {
	if len(s) == 0 {
		return nil
	}

	fps := make([]digest.Digest, 0, len(s))
	for fp := range s {
		fps = append(fps, fp)
	}
	sort.Slice(fps, func(i, j int) bool { return fps[i] < fps[j] })

	return fps
}

// keys returns the public keys of s, ordered by fingerprint.
func (s SignerSet) keys() []crypto.PublicKey {
	fps := s.Fingerprints()
	if fps == nil {
		return nil
	}

	keys := make([]crypto.PublicKey, 0, len(fps))
	for _, fp := range fps {
		keys = append(keys, s[fp])
	}
	return keys
}

func (s SignerSet) String() string {
	strs := make([]string, 0, len(s))
	for _, fp := range s.Fingerprints() {
		strs = append(strs, fp.String())
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

// A FileRecord pairs a signable entry with the set of signers covering it.
type FileRecord struct {
	Name    string // Entry name.
	Signers SignerSet
}

// SignerMismatchError records two signable entries whose signer sets differ,
// violating the constraint that one common signer set covers every signable
// entry of the archive.
type SignerMismatchError struct {
	Ref   FileRecord // Record of the first signable entry, in archive order.
	Found FileRecord // Record of the first entry found to diverge from Ref.
}

func (e *SignerMismatchError) Error() string {
	return fmt.Sprintf("signer set %v of entry %q differs from signer set %v of entry %q: archive must be covered by a single signer set",
		e.Found.Signers, e.Found.Name, e.Ref.Signers, e.Ref.Name)
}

// Is compares e against target. If target is a SignerMismatchError and
// matches e or target has zero value records, true is returned.
func (e *SignerMismatchError) Is(target error) bool {
	t, ok := target.(*SignerMismatchError)
	if !ok {
		return false
	}
	if t.Ref.Name == "" && t.Found.Name == "" {
		return true
	}
	return e.Ref.Name == t.Ref.Name && e.Found.Name == t.Found.Name
}
