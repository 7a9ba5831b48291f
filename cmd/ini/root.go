// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "ini",
	Short:         "Read, edit, and rewrite INI files without losing comments",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "INI file to operate on (default $INI_FILE, then config.ini)")
}

// configPath resolves the target file from the --file flag, the INI_FILE
// environment variable, or config.ini, in that order.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = os.Getenv("INI_FILE")
	}
	if path == "" {
		path = "config.ini"
	}
	return path
}
