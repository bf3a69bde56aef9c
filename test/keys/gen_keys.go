// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

//go:build ignore

package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"time"
)

// writeKeyPair generates an RSA key and matching self-signed certificate, and
// writes them as keyN.pem/certN.pem. The test corpus under ../jars is signed
// with these keys; regenerating them invalidates the corpus.
func writeKeyPair(n int) error {
	pri, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return err
	}

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(int64(n)),
		Subject: pkix.Name{
			Organization: []string{"jartool test corpus"},
			CommonName:   fmt.Sprintf("JAR Test Signer %d", n),
		},
		NotBefore: time.Now(),
		NotAfter:  time.Now().AddDate(100, 0, 0),
		KeyUsage:  x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, pri.Public(), pri)
	if err != nil {
		return err
	}

	kf, err := os.Create(fmt.Sprintf("key%d.pem", n))
	if err != nil {
		return err
	}
	defer kf.Close()

	kb, err := x509.MarshalPKCS8PrivateKey(pri)
	if err != nil {
		return err
	}
	if err := pem.Encode(kf, &pem.Block{Type: "PRIVATE KEY", Bytes: kb}); err != nil {
		return err
	}

	cf, err := os.Create(fmt.Sprintf("cert%d.pem", n))
	if err != nil {
		return err
	}
	defer cf.Close()

	return pem.Encode(cf, &pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func main() {
	for n := 1; n <= 2; n++ {
		if err := writeKeyPair(n); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}
