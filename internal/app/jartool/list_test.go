// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

var corpus = filepath.Join("..", "..", "..", "test", "jars")

func TestApp_List(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "NotExist",
			path:    "not-exist.jar",
			wantErr: os.ErrNotExist,
		},
		{
			name: "Unsigned",
			path: filepath.Join(corpus, "unsigned.jar"),
		},
		{
			name: "Signed",
			path: filepath.Join(corpus, "signed.jar"),
		},
		{
			name: "MultipleSigners",
			path: filepath.Join(corpus, "multi.jar"),
		},
		{
			name: "NoSignableEntries",
			path: filepath.Join(corpus, "nosignable.jar"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer

			a, err := New(OptAppOutput(&b))
			if err != nil {
				t.Fatalf("failed to create app: %v", err)
			}

			if got, want := a.List(tt.path), tt.wantErr; !errors.Is(got, want) {
				t.Fatalf("got error %v, want %v", got, want)
			}

			if tt.wantErr == nil {
				g := goldie.New(t, goldie.WithTestNameForDir(true))
				g.Assert(t, tt.name, b.Bytes())
			}
		})
	}
}
