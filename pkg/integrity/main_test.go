// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package integrity

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/signedjar/jar/pkg/jar"
)

var corpus = filepath.Join("..", "..", "test", "jars")

// Fingerprints of the fixed test keys, as computed by openssl:
//
//	openssl x509 -in certN.pem -pubkey -noout | openssl pkey -pubin -outform DER | sha256sum
const (
	fingerprint1 = digest.Digest("sha256:7636fc6d13367f6ea7c9c922f16b169fd5afca7146ef373467a63a09bf428069")
	fingerprint2 = digest.Digest("sha256:7d271d2205db25af124936163d13f70f2e5f33df1ddc590e5de3cf946b6659a7")
)

// loadTestFile loads a corpus JAR, closing it when the test completes.
func loadTestFile(t *testing.T, name string) *jar.File {
	t.Helper()

	f, err := jar.LoadFile(filepath.Join(corpus, name))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.UnloadFile() }) // nolint:errcheck

	return f
}

// getTestPublicKey returns test public key n from the fixed key corpus.
func getTestPublicKey(t *testing.T, n int) crypto.PublicKey {
	t.Helper()

	b, err := os.ReadFile(filepath.Join("..", "..", "test", "keys", fmt.Sprintf("cert%d.pem", n)))
	if err != nil {
		t.Fatal(err)
	}

	block, _ := pem.Decode(b)
	if block == nil {
		t.Fatal("failed to decode PEM")
	}

	c, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		t.Fatal(err)
	}
	return c.PublicKey
}
