// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"github.com/spf13/cobra"
)

// getList returns a command that lists the entries of a JAR file.
func (c *command) getList() *cobra.Command {
	return &cobra.Command{
		Use:     "list <jar_path>",
		Short:   "List entries",
		Long:    "List the entries of a JAR file, in archive order.",
		Example: c.opts.rootPath + " list app.jar",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.List(args[0])
		},
		DisableFlagsInUseLine: true,
	}
}
