// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

// The ini command reads, edits, and rewrites INI files without losing the
// comments in them.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"zombiezen.com/go/log"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}
