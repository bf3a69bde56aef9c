// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

/*
Jartool is a program for examining signed Java archive (JAR) files.

A set of commands are provided to list the entries of a JAR file, display its
manifest, and examine and verify the consistency of the signer set covering
its signable entries.
*/
package main
