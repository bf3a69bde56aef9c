// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jar

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var corpus = filepath.Join("..", "..", "test", "jars")

// loadTestFile loads a corpus JAR, closing it when the test completes.
func loadTestFile(t *testing.T, name string) *File {
	t.Helper()

	f, err := LoadFile(filepath.Join(corpus, name))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.UnloadFile() }) // nolint:errcheck

	return f
}

// getTestCertificate returns test certificate n from the fixed key corpus.
func getTestCertificate(t *testing.T, n int) *x509.Certificate {
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
	return c
}

// findEntry returns the entry of f named name.
func findEntry(t *testing.T, f *File, name string) Entry {
	t.Helper()

	for _, e := range f.Entries() {
		if e.Name() == name {
			return e
		}
	}
	t.Fatalf("entry %q not found", name)
	return Entry{}
}
