// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"github.com/signedjar/jar/pkg/jar"
)

// withJarFile calls fn with a File loaded from path.
func withJarFile(path string, fn func(*jar.File) error) (err error) {
	f, err := jar.LoadFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if uerr := f.UnloadFile(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	return fn(f)
}
