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

// Verify checks the signer consistency of the archive at path, and writes a
// summary of the signable entries scanned and the agreed signer set.
func (a *App) Verify(path string) error {
	return withJarFile(path, func(f *jar.File) error {
		var entries int
		v, err := integrity.NewVerifier(f,
			integrity.OptVerifyCallback(func(r integrity.FileRecord) { entries++ }),
		)
		if err != nil {
			return err
		}

		keys, err := v.Verify()
		if err != nil {
			return err
		}

		fmt.Fprintf(a.opts.out, "Signable entries: %d\n", entries)
		fmt.Fprintf(a.opts.out, "Signers: %d\n", len(keys))
		for _, key := range keys {
			fp, err := integrity.KeyFingerprint(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.opts.out, "  %s\n", fp)
		}
		return nil
	})
}
