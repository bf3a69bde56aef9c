// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"fmt"
	"text/tabwriter"

	"github.com/signedjar/jar/pkg/jar"
)

// List writes the entries of the archive at path, in archive order.
func (a *App) List(path string) error {
	return withJarFile(path, func(f *jar.File) error {
		tw := tabwriter.NewWriter(a.opts.out, 0, 0, 2, ' ', 0)

		fmt.Fprintln(tw, "NAME\tSIZE\tSIGNABLE")
		for _, e := range f.Entries() {
			fmt.Fprintf(tw, "%s\t%d\t%v\n", e.Name(), e.Size(), jar.IsSignable(e.Name(), e.IsDir()))
		}

		return tw.Flush()
	})
}
