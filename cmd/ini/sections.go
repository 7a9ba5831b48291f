// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brendon1982/PeanutButter/ini"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [section]",
	Short: "List section names, or the keys of one section",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fset, err := ini.ParseFiles(configPath(cmd))
		if err != nil {
			return err
		}
		if len(args) == 1 {
			for _, f := range fset {
				for _, key := range f.Keys(args[0]) {
					fmt.Println(key)
				}
			}
			return nil
		}
		heading := color.New(color.Bold)
		for _, name := range fset.Sections() {
			if name == "" {
				// The preamble section has no printable name.
				name = `""`
			}
			heading.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
