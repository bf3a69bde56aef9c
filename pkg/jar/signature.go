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
	"math/big"
	"sort"
	"strings"

	"github.com/smallstep/pkcs7"
)

var errSignerCertNotFound = errors.New("signer certificate not found in signature block")

// SignatureNotValidError records an error when an invalid signature block is
// encountered.
type SignatureNotValidError struct {
	Name string // Signature file base name, e.g. "SIGNER" for META-INF/SIGNER.SF.
	Err  error  // Wrapped error.
}

func (e *SignatureNotValidError) Error() string {
	b := &strings.Builder{}

	if e.Name == "" {
		fmt.Fprintf(b, "signature not valid")
	} else {
		fmt.Fprintf(b, "signature %v not valid", e.Name)
	}

	if e.Err != nil {
		fmt.Fprintf(b, ": %v", e.Err)
	}

	return b.String()
}

func (e *SignatureNotValidError) Unwrap() error {
	return e.Err
}

// Is compares e against target. If target is a SignatureNotValidError and
// matches e or target has a zero value Name, true is returned.
func (e *SignatureNotValidError) Is(target error) bool {
	t, ok := target.(*SignatureNotValidError)
	if !ok {
		return false
	}
	return e.Name == t.Name || t.Name == ""
}

// A signer is one signature file together with the certificate chains
// recovered from its signature block.
type signer struct {
	name   string    // Signature file base name.
	sf     *Manifest // Parsed signature file.
	chains [][]*x509.Certificate
}

// newSigner parses signature file sfData and signature block blockData. The
// block signature is verified over the signature file bytes using the
// certificates embedded in the block; chains are not validated against trust
// anchors.
func newSigner(name string, sfData, blockData []byte) (*signer, error) {
	sf, err := parseManifest(sfData)
	if err != nil {
		return nil, fmt.Errorf("parsing signature file %v: %w", name, err)
	}

	p7, err := pkcs7.Parse(blockData)
	if err != nil {
		return nil, &SignatureNotValidError{Name: name, Err: err}
	}

	// JAR signature blocks are detached; the signed content is the signature
	// file itself.
	if len(p7.Content) == 0 {
		p7.Content = sfData
	}

	if err := p7.Verify(); err != nil {
		return nil, &SignatureNotValidError{Name: name, Err: err}
	}

	chains, err := signerChains(p7)
	if err != nil {
		return nil, &SignatureNotValidError{Name: name, Err: err}
	}

	return &signer{name: name, sf: sf, chains: chains}, nil
}

// covers returns whether the signature file of s covers the manifest section
// sec, by comparing the digests it declares against the section bytes.
func (s *signer) covers(sec *Section) (bool, error) {
	ss := s.sf.Section(sec.Name)
	if ss == nil {
		return false, nil
	}

	ds, err := digestsFromAttributes(ss.Attributes)
	if err != nil {
		return false, fmt.Errorf("signature file %v: %w", s.name, err)
	}
	if len(ds) == 0 {
		return false, nil
	}

	for _, d := range ds {
		if !d.matches(sec.raw) {
			return false, nil
		}
	}
	return true, nil
}

// signerChains returns one certificate chain, leaf first, per signer info in
// the signature block.
func signerChains(p7 *pkcs7.PKCS7) ([][]*x509.Certificate, error) {
	chains := make([][]*x509.Certificate, 0, len(p7.Signers))

	for _, si := range p7.Signers {
		leaf := certByIssuerAndSerial(p7.Certificates, si.IssuerAndSerialNumber.IssuerName.FullBytes, si.IssuerAndSerialNumber.SerialNumber)
		if leaf == nil {
			return nil, errSignerCertNotFound
		}
		chains = append(chains, chainFrom(leaf, p7.Certificates))
	}

	return chains, nil
}

func certByIssuerAndSerial(certs []*x509.Certificate, issuer []byte, serial *big.Int) *x509.Certificate {
	for _, c := range certs {
		if c.SerialNumber.Cmp(serial) == 0 && bytes.Equal(c.RawIssuer, issuer) {
			return c
		}
	}
	return nil
}

// chainFrom orders the certificates reachable from leaf by issuer, leaf
// first. Certificates in the block that do not participate in the chain are
// dropped.
func chainFrom(leaf *x509.Certificate, certs []*x509.Certificate) []*x509.Certificate {
	chain := []*x509.Certificate{leaf}

	for cur := leaf; len(chain) < len(certs); {
		if bytes.Equal(cur.RawIssuer, cur.RawSubject) {
			break
		}

		var parent *x509.Certificate
		for _, c := range certs {
			if c != cur && bytes.Equal(c.RawSubject, cur.RawIssuer) {
				parent = c
				break
			}
		}
		if parent == nil {
			break
		}

		chain = append(chain, parent)
		cur = parent
	}

	return chain
}

// sortSigners orders signers by signature file name, so signer resolution is
// independent of directory iteration order.
func sortSigners(signers []*signer) {
	sort.Slice(signers, func(i, j int) bool { return signers[i].name < signers[j].name })
}
