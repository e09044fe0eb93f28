// llmfit - a one-shot hardware snapshot for local LLM sizing.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/jeranaias/llmfit-tui/internal/cli"
	"github.com/jeranaias/llmfit-tui/internal/config"
	"github.com/jeranaias/llmfit-tui/internal/ui/report"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// Parse CLI arguments
	cmd, args := cli.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI needs a terminal; piped output gets the plain report.
	if cmd == cli.CmdTUI && (args.JSON || !term.IsTerminal(int(os.Stdout.Fd()))) {
		cmd = cli.CmdSpecs
	}

	// Route to appropriate handler
	switch cmd {
	case cli.CmdTUI:
		if err := report.Run(cli.DetectOptions(args, cfg)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdSpecs:
		if err := cli.HandleSpecs(args, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		if err := cli.HandleVersion(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}
