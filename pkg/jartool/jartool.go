// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package jartool adds jartool commands to a parent cobra.Command.
package jartool

import (
	"github.com/spf13/cobra"

	"github.com/signedjar/jar/internal/app/jartool"
)

// command implements the jartool commands, sharing an App between them.
type command struct {
	opts commandOpts
	app  *jartool.App
}

// commandOpts contains configured options.
type commandOpts struct {
	rootPath string
}

// CommandOpt are used to configure optional command behavior.
type CommandOpt func(*commandOpts) error

// OptRootPath sets the root command path used in command examples.
func OptRootPath(path string) CommandOpt {
	return func(o *commandOpts) error {
		o.rootPath = path
		return nil
	}
}

// initApp initializes the App, directing output to the out stream of cmd.
func (c *command) initApp(cmd *cobra.Command, _ []string) error {
	app, err := jartool.New(jartool.OptAppOutput(cmd.OutOrStdout()))
	c.app = app
	return err
}

// AddCommands adds jartool commands to cmd according to opts.
//
// Commands are provided to list the entries of a JAR file, display its
// manifest, and examine and verify the consistency of the signer set covering
// its signable entries.
func AddCommands(cmd *cobra.Command, opts ...CommandOpt) error {
	c := &command{
		opts: commandOpts{
			rootPath: cmd.CommandPath(),
		},
	}

	for _, opt := range opts {
		if err := opt(&c.opts); err != nil {
			return err
		}
	}

	cmd.AddCommand(
		c.getList(),
		c.getManifest(),
		c.getSigners(),
		c.getVerify(),
	)

	return nil
}
