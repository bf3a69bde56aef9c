// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

//go:build ignore

// This program generates the JAR test corpus, signed with the fixed keys
// under ../keys. Fingerprints of those keys appear in golden files; the
// corpus only needs regenerating if the keys or the archive layouts change.
package main

import (
	"archive/zip"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smallstep/pkcs7"
)

var (
	contentA = []byte("cafebabe A\n")
	contentB = []byte("cafebabe B\n")
	contentC = []byte("cafebabe C\n")
)

type item struct {
	name string
	data []byte
}

func b64SHA256(b []byte) string {
	d := sha256.Sum256(b)
	return base64.StdEncoding.EncodeToString(d[:])
}

// manifest builds manifest bytes with one named section per entry, and
// returns the raw per-entry section bytes keyed by name. Sections include
// their trailing blank line, as signature file digests cover those bytes.
func manifest(entries []item) ([]byte, map[string][]byte) {
	mf := []byte("Manifest-Version: 1.0\r\nCreated-By: jartool test corpus\r\n\r\n")

	sections := make(map[string][]byte)
	for _, e := range entries {
		sec := []byte(fmt.Sprintf("Name: %s\r\nSHA-256-Digest: %s\r\n\r\n", e.name, b64SHA256(e.data)))
		sections[e.name] = sec
		mf = append(mf, sec...)
	}
	return mf, sections
}

// sigFile builds signature file bytes covering the named manifest sections.
func sigFile(mf []byte, sections map[string][]byte, covered []string) []byte {
	sf := []byte(fmt.Sprintf("Signature-Version: 1.0\r\nSHA-256-Digest-Manifest: %s\r\nCreated-By: jartool test corpus\r\n\r\n", b64SHA256(mf)))

	for _, name := range covered {
		sf = append(sf, fmt.Sprintf("Name: %s\r\nSHA-256-Digest: %s\r\n\r\n", name, b64SHA256(sections[name]))...)
	}
	return sf
}

// signBlock produces a detached PKCS#7 signature block over sf.
func signBlock(sf []byte, n int) ([]byte, error) {
	cert, key, err := loadKeyPair(n)
	if err != nil {
		return nil, err
	}

	sd, err := pkcs7.NewSignedData(sf)
	if err != nil {
		return nil, err
	}
	sd.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)

	if err := sd.AddSigner(cert, key, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, err
	}
	sd.Detach()

	return sd.Finish()
}

func loadKeyPair(n int) (*x509.Certificate, *rsa.PrivateKey, error) {
	cb, err := os.ReadFile(filepath.Join("..", "keys", fmt.Sprintf("cert%d.pem", n)))
	if err != nil {
		return nil, nil, err
	}
	block, _ := pem.Decode(cb)
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, nil, err
	}

	kb, err := os.ReadFile(filepath.Join("..", "keys", fmt.Sprintf("key%d.pem", n)))
	if err != nil {
		return nil, nil, err
	}
	block, _ = pem.Decode(kb)
	pri, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, nil, err
	}

	return cert, pri.(*rsa.PrivateKey), nil
}

func writeJar(path string, items []item) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, it := range items {
		w, err := zw.Create(it.name)
		if err != nil {
			return err
		}
		if _, err := w.Write(it.data); err != nil {
			return err
		}
	}
	return zw.Close()
}

func writeJars() error {
	classes := []item{{"A.class", contentA}, {"B.class", contentB}}

	// unsigned.jar: manifest, but no signature files.
	mf, _ := manifest(classes)
	err := writeJar("unsigned.jar", []item{
		{"META-INF/", nil},
		{"META-INF/MANIFEST.MF", mf},
		{"A.class", contentA},
		{"B.class", contentB},
	})
	if err != nil {
		return err
	}

	// signed.jar: one signer covering both entries, plus a directory entry.
	mf, sections := manifest(classes)
	sf := sigFile(mf, sections, []string{"A.class", "B.class"})
	block, err := signBlock(sf, 1)
	if err != nil {
		return err
	}
	signed := []item{
		{"META-INF/", nil},
		{"META-INF/MANIFEST.MF", mf},
		{"META-INF/SIGNER.SF", sf},
		{"META-INF/SIGNER.RSA", block},
		{"docs/", nil},
		{"A.class", contentA},
		{"B.class", contentB},
	}
	if err := writeJar("signed.jar", signed); err != nil {
		return err
	}

	// multi.jar: two signers, each covering both entries.
	sf2 := sigFile(mf, sections, []string{"A.class", "B.class"})
	block2, err := signBlock(sf2, 2)
	if err != nil {
		return err
	}
	err = writeJar("multi.jar", []item{
		{"META-INF/", nil},
		{"META-INF/MANIFEST.MF", mf},
		{"META-INF/SIGNER1.SF", sf},
		{"META-INF/SIGNER1.RSA", block},
		{"META-INF/SIGNER2.SF", sf2},
		{"META-INF/SIGNER2.RSA", block2},
		{"A.class", contentA},
		{"B.class", contentB},
	})
	if err != nil {
		return err
	}

	// mismatch.jar: A and C signed by signer 1, B signed by signer 2.
	mf, sections = manifest([]item{{"A.class", contentA}, {"B.class", contentB}, {"C.class", contentC}})
	sf1 := sigFile(mf, sections, []string{"A.class", "C.class"})
	block1, err := signBlock(sf1, 1)
	if err != nil {
		return err
	}
	sf2 = sigFile(mf, sections, []string{"B.class"})
	block2, err = signBlock(sf2, 2)
	if err != nil {
		return err
	}
	err = writeJar("mismatch.jar", []item{
		{"META-INF/", nil},
		{"META-INF/MANIFEST.MF", mf},
		{"META-INF/SIGNER1.SF", sf1},
		{"META-INF/SIGNER1.RSA", block1},
		{"META-INF/SIGNER2.SF", sf2},
		{"META-INF/SIGNER2.RSA", block2},
		{"A.class", contentA},
		{"B.class", contentB},
		{"C.class", contentC},
	})
	if err != nil {
		return err
	}

	// nosignable.jar: signing infrastructure only.
	mf, _ = manifest(nil)
	err = writeJar("nosignable.jar", []item{
		{"META-INF/", nil},
		{"META-INF/MANIFEST.MF", mf},
		{"META-INF/SIG-INDEX", []byte("signature index placeholder\n")},
	})
	if err != nil {
		return err
	}

	// tampered.jar: signed.jar layout with modified A.class content.
	mf, sections = manifest(classes)
	sf = sigFile(mf, sections, []string{"A.class", "B.class"})
	block, err = signBlock(sf, 1)
	if err != nil {
		return err
	}
	err = writeJar("tampered.jar", []item{
		{"META-INF/", nil},
		{"META-INF/MANIFEST.MF", mf},
		{"META-INF/SIGNER.SF", sf},
		{"META-INF/SIGNER.RSA", block},
		{"docs/", nil},
		{"A.class", []byte("tampered!\n")},
		{"B.class", contentB},
	})
	if err != nil {
		return err
	}

	// truncated.jar: signed.jar cut short.
	b, err := os.ReadFile("signed.jar")
	if err != nil {
		return err
	}
	return os.WriteFile("truncated.jar", b[:len(b)-40], 0o644)
}

func main() {
	if err := writeJars(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
