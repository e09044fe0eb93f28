// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"context"
	"strings"
)

// =============================================================================
// INTEL PROBE
// =============================================================================

// probeIntel looks for an Intel discrete GPU on Linux, first through the
// DRM sysfs layout (vendor 0x8086), then through lspci for Arc cards on
// kernels without an i915/xe sysfs node. Intel sysfs rarely exposes a
// VRAM total; a hit with VRAMGB 0 means "present, capacity unknown".
func probeIntel(ctx context.Context, env *probeEnv) *Result {
	if env.goos != "linux" {
		return nil
	}

	// A bare vendor match is not enough: integrated graphics expose the
	// same 0x8086 vendor id. Presence needs a nonzero VRAM total or an
	// Arc match in the lspci name; a plain iGPU defers to later probes
	// and the CPU fallback.
	_, vramGB := findSysfsCard(env.sysfsRoot, "0x8086")
	found := vramGB > 0

	name := ""
	if lspci, err := env.run(ctx, "lspci"); err == nil {
		if parsed := lspciGPUName(string(lspci), []string{"intel"}); parsed != "" {
			if strings.Contains(strings.ToLower(parsed), "arc") {
				found = true
				name = parsed
			} else if found {
				name = parsed
			}
		}
	}

	if !found {
		return nil
	}
	if name == "" {
		name = "Intel GPU"
	}

	return &Result{
		HasGPU:  true,
		VRAMGB:  vramGB,
		Name:    name,
		Count:   1,
		Backend: BackendSYCL,
	}
}
