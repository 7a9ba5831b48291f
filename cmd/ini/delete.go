// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/brendon1982/PeanutButter/ini"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <section> [key]",
	Short: "Remove a section, or a single setting within one",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		f, err := ini.Load(configPath(cmd))
		if err != nil {
			return err
		}
		if len(args) == 1 {
			f.RemoveSection(args[0])
		} else {
			f.Delete(args[0], args[1])
		}
		if err := f.Persist(""); err != nil {
			return err
		}
		log.Infof(ctx, "wrote %s", f.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
