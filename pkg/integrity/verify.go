// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package integrity

import (
	"crypto"
	"errors"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/signedjar/jar/pkg/jar"
)

var (
	errNilFile           = errors.New("nil jar file")
	errInvalidBufferSize = errors.New("invalid buffer size")
	errNilPredicate      = errors.New("nil predicate")
)

const defaultBufferSize = 32 * 1024

// VerifyCallback is called immediately after the signer set of a signable
// entry has been read.
type VerifyCallback func(r FileRecord)

// Verifier describes a JAR signer-consistency verifier.
type Verifier struct {
	f *jar.File // JAR file to verify.

	bufSize    int                   // Scratch buffer size for entry consumption.
	isSignable jar.SignablePredicate // Entry classification predicate.
	cb         VerifyCallback        // Verification callback.
}

// VerifierOpt are used to configure v.
type VerifierOpt func(v *Verifier) error

// OptVerifyBufferSize sets the size of the scratch buffer used to consume
// entry content. The buffer bounds memory use; it does not limit the size of
// entries that can be verified.
func OptVerifyBufferSize(size int) VerifierOpt {
	return func(v *Verifier) error {
		if size <= 0 {
			return errInvalidBufferSize
		}
		v.bufSize = size
		return nil
	}
}

// OptVerifyPredicate sets the predicate classifying entries as signable. By
// default, jar.IsSignable is used.
func OptVerifyPredicate(p jar.SignablePredicate) VerifierOpt {
	return func(v *Verifier) error {
		if p == nil {
			return errNilPredicate
		}
		v.isSignable = p
		return nil
	}
}

// OptVerifyCallback registers cb as the verification callback, which is
// called once per signable entry, in archive order, as its signer set is
// read.
func OptVerifyCallback(cb VerifyCallback) VerifierOpt {
	return func(v *Verifier) error {
		v.cb = cb
		return nil
	}
}

// NewVerifier returns a Verifier to examine the signer consistency of f
// according to opts.
//
// A Verifier must not be used from multiple goroutines simultaneously.
// Distinct Verifier values share no state, so independent archives may be
// verified concurrently.
func NewVerifier(f *jar.File, opts ...VerifierOpt) (*Verifier, error) {
	if f == nil {
		return nil, fmt.Errorf("integrity: %w", errNilFile)
	}

	v := &Verifier{
		f:          f,
		bufSize:    defaultBufferSize,
		isSignable: jar.IsSignable,
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, fmt.Errorf("integrity: %w", err)
		}
	}

	return v, nil
}

// commonSigners scans the signable entries of the archive strictly in archive
// order, reading the signer set of each, and returns the single set covering
// them all. A nil set with a nil error means the archive has no signable
// entries.
//
// The scan stops at the first entry whose signer set differs from that of the
// first signable entry; remaining entries are not consumed.
func (v *Verifier) commonSigners() (SignerSet, error) {
	buf := make([]byte, v.bufSize)

	var ref *FileRecord
	for _, e := range v.f.Entries() {
		if !v.isSignable(e.Name(), e.IsDir()) {
			continue
		}

		chains, err := v.f.EntryCertificates(e, buf)
		if err != nil {
			return nil, err
		}

		set, err := signerSetFromChains(chains)
		if err != nil {
			return nil, err
		}

		r := FileRecord{Name: e.Name(), Signers: set}
		if v.cb != nil {
			v.cb(r)
		}

		if ref == nil {
			ref = &r
			continue
		}
		if !ref.Signers.Equal(r.Signers) {
			return nil, &SignerMismatchError{Ref: *ref, Found: r}
		}
	}

	if ref == nil {
		return nil, nil
	}
	return ref.Signers, nil
}

// Verify checks that one common signer set covers every signable entry of the
// archive, and returns the public keys of that set, ordered canonically by
// fingerprint.
//
// An archive with no signable entries is valid; Verify returns no keys and a
// nil error. If two signable entries carry different signer sets, an error
// wrapping a SignerMismatchError is returned. If the archive cannot be read,
// the underlying error is returned; no partial result is ever produced.
func (v *Verifier) Verify() ([]crypto.PublicKey, error) {
	s, err := v.commonSigners()
	if err != nil {
		return nil, fmt.Errorf("integrity: %w", err)
	}
	return s.keys(), nil
}

// Fingerprints is like Verify, but returns the canonical fingerprints of the
// agreed signer set rather than the keys themselves.
func (v *Verifier) Fingerprints() ([]digest.Digest, error) {
	s, err := v.commonSigners()
	if err != nil {
		return nil, fmt.Errorf("integrity: %w", err)
	}
	return s.Fingerprints(), nil
}
