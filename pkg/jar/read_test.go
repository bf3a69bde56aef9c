// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jar

import (
	"crypto/rsa"
	"errors"
	"testing"
)

func TestEntryCertificates(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		entry    string
		bufSize  int
		wantErr  error
		wantKeys []int // Leaf keys, by test key number.
	}{
		{
			name:     "SignedClass",
			path:     "signed.jar",
			entry:    "A.class",
			wantKeys: []int{1},
		},
		{
			name:     "SignedOtherClass",
			path:     "signed.jar",
			entry:    "B.class",
			wantKeys: []int{1},
		},
		{
			name:  "SignedDirectory",
			path:  "signed.jar",
			entry: "docs/",
		},
		{
			name:  "SignedManifest",
			path:  "signed.jar",
			entry: "META-INF/MANIFEST.MF",
		},
		{
			name:  "UnsignedClass",
			path:  "unsigned.jar",
			entry: "A.class",
		},
		{
			name:     "MultipleSigners",
			path:     "multi.jar",
			entry:    "A.class",
			wantKeys: []int{1, 2},
		},
		{
			name:     "DisjointSignersFirst",
			path:     "mismatch.jar",
			entry:    "A.class",
			wantKeys: []int{1},
		},
		{
			name:     "DisjointSignersSecond",
			path:     "mismatch.jar",
			entry:    "B.class",
			wantKeys: []int{2},
		},
		{
			name:    "TamperedContent",
			path:    "tampered.jar",
			entry:   "A.class",
			wantErr: &EntryDigestError{Name: "A.class"},
		},
		{
			name:     "TamperedArchiveIntactEntry",
			path:     "tampered.jar",
			entry:    "B.class",
			wantKeys: []int{1},
		},
		{
			name:     "SmallBuffer",
			path:     "signed.jar",
			entry:    "A.class",
			bufSize:  1,
			wantKeys: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadTestFile(t, tt.path)

			size := tt.bufSize
			if size == 0 {
				size = 32 * 1024
			}

			chains, err := f.EntryCertificates(findEntry(t, f, tt.entry), make([]byte, size))
			if got, want := err, tt.wantErr; !errors.Is(got, want) {
				t.Fatalf("got error %v, want %v", got, want)
			}
			if err != nil {
				return
			}

			if got, want := len(chains), len(tt.wantKeys); got != want {
				t.Fatalf("got %v chains, want %v", got, want)
			}
			for i, n := range tt.wantKeys {
				if len(chains[i]) == 0 {
					t.Fatalf("chain %v empty", i)
				}
				want := getTestCertificate(t, n).PublicKey.(*rsa.PublicKey)
				if got, ok := chains[i][0].PublicKey.(*rsa.PublicKey); !ok || !want.Equal(got) {
					t.Errorf("chain %v: leaf public key does not match test key %v", i, n)
				}
			}
		})
	}
}

func TestEntryCertificatesEmptyBuffer(t *testing.T) {
	f := loadTestFile(t, "signed.jar")

	if _, err := f.EntryCertificates(findEntry(t, f, "A.class"), nil); err == nil {
		t.Fatal("unexpected success")
	}
}
