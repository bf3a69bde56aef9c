// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"fmt"

	"github.com/signedjar/jar/pkg/integrity"
	"github.com/signedjar/jar/pkg/jar"
)

// Signers writes the canonically ordered fingerprints of the signer set
// covering every signable entry of the archive at path. Nothing is written
// for an archive with no signers.
func (a *App) Signers(path string) error {
	return withJarFile(path, func(f *jar.File) error {
		v, err := integrity.NewVerifier(f)
		if err != nil {
			return err
		}

		fps, err := v.Fingerprints()
		if err != nil {
			return err
		}

		for _, fp := range fps {
			fmt.Fprintln(a.opts.out, fp)
		}
		return nil
	})
}
