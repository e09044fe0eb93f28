// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"context"
	"strconv"
	"strings"

	"github.com/jeranaias/llmfit-tui/internal/util"
)

// =============================================================================
// NVIDIA PROBE
// =============================================================================

// probeNvidia queries nvidia-smi. One output line per device; VRAM is
// summed across devices and the first device's name is kept.
func probeNvidia(ctx context.Context, env *probeEnv) *Result {
	output, err := env.run(ctx, "nvidia-smi",
		"--query-gpu=memory.total,name",
		"--format=csv,noheader,nounits")
	if err != nil {
		return nil
	}
	return parseNvidiaSMI(string(output))
}

// parseNvidiaSMI parses nvidia-smi CSV output of the form
// "12288, NVIDIA GeForce RTX 3060" (memory.total in MiB, then name).
// Returns nil when no line yields a device.
func parseNvidiaSMI(stdout string) *Result {
	var (
		totalGB float64
		name    string
		count   int
	)

	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) < 2 {
			continue
		}
		mib, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			// Driver in a bad state can emit "[N/A]"; the device still
			// counts, its memory just stays unknown.
			mib = 0
		}
		totalGB += util.MiBToGiB(mib)
		if name == "" {
			name = strings.TrimSpace(parts[1])
		}
		count++
	}

	if count == 0 {
		return nil
	}

	// A present device with an unreadable memory total still has a
	// well-known capacity for most consumer cards.
	if totalGB < 0.1 {
		totalGB = EstimateVRAMFromName(name)
	}

	return &Result{
		HasGPU:  true,
		VRAMGB:  totalGB,
		Name:    name,
		Count:   count,
		Backend: BackendCUDA,
	}
}
