// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brendon1982/PeanutButter/ini"
)

var getCmd = &cobra.Command{
	Use:   "get <section> <key>",
	Short: "Print the value of a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fset, err := ini.ParseFiles(configPath(cmd))
		if err != nil {
			return err
		}
		section, key := args[0], args[1]
		if !fset.HasSetting(section, key) {
			if cmd.Flags().Changed("default") {
				value, _ := cmd.Flags().GetString("default")
				fmt.Println(value)
				return nil
			}
			return fmt.Errorf("no setting %q in section %q", key, section)
		}
		// An absent value prints as an empty line.
		value, _ := fset.Lookup(section, key)
		fmt.Println(value)
		return nil
	},
}

func init() {
	getCmd.Flags().String("default", "", "value to print when the setting is missing")
	rootCmd.AddCommand(getCmd)
}
