// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
	"time"

	"github.com/jeranaias/llmfit-tui/internal/config"
)

func TestParseGlobalFlags(t *testing.T) {
	remaining, args := parseGlobalFlags([]string{"--json", "specs", "--plain", "-v"})
	if !args.JSON || !args.Plain || !args.Verbose {
		t.Errorf("flags not parsed: %+v", args)
	}
	if len(remaining) != 1 || remaining[0] != "specs" {
		t.Errorf("remaining = %v", remaining)
	}
}

func TestParseGlobalFlagsTimeout(t *testing.T) {
	_, args := parseGlobalFlags([]string{"--timeout", "30"})
	if args.TimeoutSecs != 30 {
		t.Errorf("timeout = %d, want 30", args.TimeoutSecs)
	}

	_, args = parseGlobalFlags([]string{"--timeout=45"})
	if args.TimeoutSecs != 45 {
		t.Errorf("timeout = %d, want 45", args.TimeoutSecs)
	}

	_, args = parseGlobalFlags([]string{"--timeout", "soon"})
	if args.TimeoutSecs != 0 {
		t.Errorf("unparsable timeout = %d, want 0", args.TimeoutSecs)
	}
}

func TestDetectOptionsFlagWinsOverConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Detect.ToolTimeoutSecs = 20
	cfg.Detect.Disabled = []string{"windows"}

	opts := DetectOptions(Args{TimeoutSecs: 5}, cfg)
	if opts.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want flag override 5s", opts.Timeout)
	}
	if len(opts.Disabled) != 1 || opts.Disabled[0] != "windows" {
		t.Errorf("disabled = %v", opts.Disabled)
	}

	opts = DetectOptions(Args{}, cfg)
	if opts.Timeout != 20*time.Second {
		t.Errorf("timeout = %v, want config 20s", opts.Timeout)
	}
}
