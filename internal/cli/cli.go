// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for llmfit.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdSpecs
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool // Output in JSON format
	Plain   bool // Disable terminal styling

	// TimeoutSecs overrides the configured detection timeout (0 = unset)
	TimeoutSecs int

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `llmfit - hardware snapshot for local LLM sizing

Llmfit takes a one-shot snapshot of the host hardware - CPU, RAM, and
GPU identity/capacity - so you can judge which local models fit.

Usage:
  llmfit                     Show the report in the TUI (default)
  llmfit specs               Print the hardware report
  llmfit version             Show version information
  llmfit help                Show this help

Flags:
  --json                     Output in JSON format
  --plain                    Disable terminal styling
  --timeout <secs>           Detection timeout in seconds
  -q, --quiet                Suppress non-essential output
  -v, --verbose              Verbose output

Examples:
  llmfit specs               Hardware report with styling
  llmfit specs --json        Machine-readable snapshot
  llmfit specs --plain       Report without colors (for pipes/logs)
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	args := os.Args[1:]

	// Parse global flags first
	remaining, parsedArgs := parseGlobalFlags(args)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	// Check first argument for command
	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "specs", "spec", "hw":
		return CmdSpecs, parsedArgs

	case "version", "--version", "-V":
		return CmdVersion, parsedArgs

	case "help", "--help", "-h":
		return CmdHelp, parsedArgs

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, parsedArgs
	}
}

// parseGlobalFlags extracts flags valid for every command.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--plain", "--no-color":
			parsedArgs.Plain = true
		case "--timeout":
			if i+1 < len(args) {
				i++
				if secs, err := strconv.Atoi(args[i]); err == nil {
					parsedArgs.TimeoutSecs = secs
				}
			}
		default:
			if strings.HasPrefix(arg, "--timeout=") {
				if secs, err := strconv.Atoi(strings.TrimPrefix(arg, "--timeout=")); err == nil {
					parsedArgs.TimeoutSecs = secs
				}
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Print(usageText)
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args) error {
	if args.JSON {
		return NewJSONResponse("version", map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
			"go_version": runtime.Version(),
			"platform":   runtime.GOOS + "/" + runtime.GOARCH,
		}).Print()
	}

	fmt.Printf("llmfit %s\n", Version)
	fmt.Printf("  commit:   %s\n", GitCommit)
	fmt.Printf("  built:    %s\n", BuildDate)
	fmt.Printf("  go:       %s\n", runtime.Version())
	fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
