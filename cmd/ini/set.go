// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/brendon1982/PeanutButter/ini"
)

var setCmd = &cobra.Command{
	Use:   "set <section> <key> <value>",
	Short: "Set a setting and write the file back",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		f, err := ini.Load(configPath(cmd))
		if err != nil {
			return err
		}
		f.Set(args[0], args[1], args[2])
		if err := f.Persist(""); err != nil {
			return err
		}
		log.Infof(ctx, "wrote %s", f.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
