// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"errors"
	"fmt"

	"github.com/signedjar/jar/pkg/jar"
)

var errManifestNotFound = errors.New("manifest not found")

// Manifest writes the main manifest attributes of the archive at path, in the
// order they are stored.
func (a *App) Manifest(path string) error {
	return withJarFile(path, func(f *jar.File) error {
		m := f.Manifest()
		if m == nil {
			return errManifestNotFound
		}

		for _, attr := range m.Main.Attributes {
			fmt.Fprintf(a.opts.out, "%s: %s\n", attr.Name, attr.Value)
		}
		return nil
	})
}
