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
// APPLE SILICON PROBE
// =============================================================================

// probeApple identifies an Apple Silicon GPU through system_profiler.
// Apple Silicon has unified memory: the GPU can address all of system
// RAM, so VRAMGB is the TOTAL physical memory read from sysctl, not a
// free/available figure that moves with memory pressure.
func probeApple(ctx context.Context, env *probeEnv) *Result {
	if env.goos != "darwin" {
		return nil
	}

	output, err := env.run(ctx, "system_profiler", "SPDisplaysDataType")
	if err != nil {
		return nil
	}

	name := parseAppleChipName(string(output))
	if name == "" {
		return nil
	}

	var vramGB float64
	if memOut, err := env.run(ctx, "sysctl", "-n", "hw.memsize"); err == nil {
		if bytes, err := strconv.ParseFloat(strings.TrimSpace(string(memOut)), 64); err == nil {
			vramGB = util.BytesToGiB(bytes)
		}
	}

	return &Result{
		HasGPU:        true,
		VRAMGB:        vramGB,
		Name:          name,
		Count:         1,
		UnifiedMemory: true,
		Backend:       BackendMetal,
	}
}

// parseAppleChipName extracts the chip name from system_profiler
// SPDisplaysDataType output. Only Apple GPUs count; an Intel Mac with a
// discrete Radeon falls through to nothing here.
func parseAppleChipName(stdout string) string {
	for _, line := range strings.Split(stdout, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "chipset model:") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimSpace(parts[1])
		lowerName := strings.ToLower(name)
		if strings.Contains(lowerName, "apple m") || strings.Contains(lowerName, "apple gpu") {
			return name
		}
	}
	return ""
}
