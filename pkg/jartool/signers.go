// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package jartool

import (
	"github.com/spf13/cobra"
)

// getSigners returns a command that displays the fingerprints of the signer
// set covering a JAR file.
func (c *command) getSigners() *cobra.Command {
	return &cobra.Command{
		Use:   "signers <jar_path>",
		Short: "Display signer fingerprints",
		Long: `Display the public key fingerprints of the signer set covering every signable
entry of a JAR file, in canonical order. The command fails if signable entries
are covered by differing signer sets.`,
		Example: c.opts.rootPath + " signers app.jar",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Signers(args[0])
		},
		DisableFlagsInUseLine: true,
	}
}
