// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jar

import "strings"

// A SignablePredicate reports whether the archive entry described by name and
// isDir is signable, as opposed to signing infrastructure. Implementations
// must be pure: the verification logic built on top assumes classification
// depends on nothing but the arguments.
type SignablePredicate func(name string, isDir bool) bool

// IsSignable is the SignablePredicate for the standard JAR signing
// convention. Directories are never signable. Files directly under META-INF/
// are not signable if they are the manifest, a signature file (.SF), a
// signature block (.RSA, .DSA, .EC), or a signature index (SIG-*); names are
// matched case-insensitively. Every other entry is signable.
func IsSignable(name string, isDir bool) bool {
	if isDir {
		return false
	}

	base, ok := isMetaInfFile(name)
	if !ok {
		return true
	}

	switch {
	case base == "MANIFEST.MF":
		return false
	case strings.HasPrefix(base, "SIG-"):
		return false
	case strings.HasSuffix(base, ".SF"):
		return false
	case strings.HasSuffix(base, ".RSA"), strings.HasSuffix(base, ".DSA"), strings.HasSuffix(base, ".EC"):
		return false
	}

	return true
}
