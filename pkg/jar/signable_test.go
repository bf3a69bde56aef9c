// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jar

import "testing"

func TestIsSignable(t *testing.T) {
	tests := []struct {
		name      string
		entryName string
		isDir     bool
		want      bool
	}{
		{name: "Class", entryName: "A.class", want: true},
		{name: "NestedClass", entryName: "com/example/A.class", want: true},
		{name: "Directory", entryName: "com/example/", isDir: true, want: false},
		{name: "MetaInfDirectory", entryName: "META-INF/", isDir: true, want: false},
		{name: "Manifest", entryName: "META-INF/MANIFEST.MF", want: false},
		{name: "ManifestLowerCase", entryName: "meta-inf/manifest.mf", want: false},
		{name: "SignatureFile", entryName: "META-INF/SIGNER.SF", want: false},
		{name: "SignatureFileLowerCase", entryName: "META-INF/signer.sf", want: false},
		{name: "RSABlock", entryName: "META-INF/SIGNER.RSA", want: false},
		{name: "DSABlock", entryName: "META-INF/SIGNER.DSA", want: false},
		{name: "ECBlock", entryName: "META-INF/SIGNER.EC", want: false},
		{name: "SignatureIndex", entryName: "META-INF/SIG-INDEX", want: false},
		{name: "SignatureIndexLowerCase", entryName: "META-INF/sig-index", want: false},
		{name: "MetaInfOther", entryName: "META-INF/LICENSE", want: true},
		{name: "MetaInfNested", entryName: "META-INF/services/com.example.Service", want: true},
		{name: "MetaInfNestedSignatureName", entryName: "META-INF/deep/SIGNER.SF", want: true},
		{name: "MetaInfPrefixNotDirectory", entryName: "META-INFO/SIGNER.SF", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := IsSignable(tt.entryName, tt.isDir), tt.want; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}
