// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/signedjar/jar/internal/pkg/git"
)

// ldFlags returns linker flags that embed version information derived from
// the state of the git repository.
func ldFlags() (string, error) {
	d, err := git.Describe(".")
	if err != nil {
		return "", err
	}

	vals := map[string]string{
		"builtBy": "mage",
		"commit":  d.CommitHash(),
		"date":    d.CommitTime().UTC().Format(time.RFC3339),
	}

	if d.IsClean() {
		vals["state"] = "clean"
	} else {
		vals["state"] = "dirty"
	}

	if v, err := d.Version(); err == nil {
		vals["version"] = v.String()
	}

	flags := ""
	for k, v := range vals {
		flags += fmt.Sprintf(" -X main.%v=%v", k, v)
	}
	return flags, nil
}

// Build compiles the jartool binary.
func Build() error {
	flags, err := ldFlags()
	if err != nil {
		return err
	}
	return sh.RunV(mg.GoCmd(), "build", "-ldflags", flags, "./cmd/jartool")
}

// Install installs the jartool binary to GOBIN.
func Install() error {
	flags, err := ldFlags()
	if err != nil {
		return err
	}
	return sh.RunV(mg.GoCmd(), "install", "-ldflags", flags, "./cmd/jartool")
}

// Test runs all tests.
func Test() error {
	return sh.RunV(mg.GoCmd(), "test", "-race", "./...")
}

// Cover runs all tests, writing a coverage profile to the specified path.
func Cover(path string) error {
	return sh.RunV(mg.GoCmd(), "test", "-race", "-coverprofile", path, "./...")
}
