// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"github.com/spf13/cobra"
)

// getManifest returns a command that displays the main manifest attributes of
// a JAR file.
func (c *command) getManifest() *cobra.Command {
	return &cobra.Command{
		Use:     "manifest <jar_path>",
		Short:   "Display manifest",
		Long:    "Display the main manifest attributes of a JAR file.",
		Example: c.opts.rootPath + " manifest app.jar",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Manifest(args[0])
		},
		DisableFlagsInUseLine: true,
	}
}
