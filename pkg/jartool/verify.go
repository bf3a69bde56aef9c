// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"github.com/spf13/cobra"
)

// getVerify returns a command that checks the signer consistency of a JAR
// file.
func (c *command) getVerify() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <jar_path>",
		Short: "Verify signer consistency",
		Long: `Verify that one common signer set covers every signable entry of a JAR file,
and display the agreed signer set. Certificate chains are not validated; the
command reports who signed the archive, not whether the signers are trusted.`,
		Example: c.opts.rootPath + " verify app.jar",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Verify(args[0])
		},
		DisableFlagsInUseLine: true,
	}
}
