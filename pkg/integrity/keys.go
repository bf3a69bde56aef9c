// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package integrity

import (
	"crypto"
	"crypto/x509"
	"fmt"

	"github.com/opencontainers/go-digest"
)

// KeyFingerprint returns the canonical fingerprint of pub: the SHA-256 digest
// of its PKIX, ASN.1 DER encoding. The fingerprint depends only on the
// encoded key bytes, so it is identical across processes, platforms and runs,
// and is the sort key for ordered key output.
func KeyFingerprint(pub crypto.PublicKey) (digest.Digest, error) {
	b, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("integrity: %w", err)
	}
	return digest.SHA256.FromBytes(b), nil
}
