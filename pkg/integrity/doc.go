// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

/*
Package integrity checks the signer consistency of signed JAR files.

A signed archive is trustworthy as a unit only if every signable entry is
covered by the same set of signers. To check this constraint, create a
Verifier:

	v, err := integrity.NewVerifier(f)

and verify:

	keys, err := v.Verify()

Verify reads the signer set of every signable entry, in archive order, and
requires all sets to be equal. On success it returns the public keys of the
agreed signer set, ordered canonically by fingerprint, so the result can be
compared across platforms and runs. An archive with no signable entries
verifies successfully with no keys. On the first divergence an error wrapping
a SignerMismatchError is returned, carrying the two conflicting records.

Package integrity determines which signers cover the archive; it does not
validate certificate chains or check trust anchors. Gating trust on the
returned keys is the caller's concern.
*/
package integrity
