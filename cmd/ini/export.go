// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brendon1982/PeanutButter/ini"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the file as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(configPath(cmd))
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		out, err := ini.ParseString(string(data)).Export(format)
		if err != nil {
			return err
		}
		os.Stdout.Write(out)
		if len(out) > 0 && out[len(out)-1] != '\n' {
			fmt.Println()
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", ini.YAML, "output format: yaml or json")
	rootCmd.AddCommand(exportCmd)
}
