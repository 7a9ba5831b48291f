// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/brendon1982/PeanutButter/ini"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Print the file in normalized form",
	Long: "Fmt parses the file and prints it back out in normalized form:\n" +
		"values double-quoted, whitespace trimmed, comments attached to the\n" +
		"entries they precede.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := configPath(cmd)
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		formatted := ini.ParseString(string(data)).String()
		if showDiff, _ := cmd.Flags().GetBool("diff"); showDiff {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(data), formatted, true)
			fmt.Println(dmp.DiffPrettyText(diffs))
			return nil
		}
		if write, _ := cmd.Flags().GetBool("write"); write {
			if err := os.WriteFile(path, []byte(formatted), 0o666); err != nil {
				return err
			}
			log.Infof(ctx, "wrote %s", path)
			return nil
		}
		fmt.Println(formatted)
		return nil
	},
}

func init() {
	fmtCmd.Flags().Bool("diff", false, "show what normalization would change instead of printing")
	fmtCmd.Flags().Bool("write", false, "rewrite the file in place")
	rootCmd.AddCommand(fmtCmd)
}
