// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jeranaias/llmfit-tui/internal/util"
)

// =============================================================================
// AMD ROCm PROBE
// =============================================================================

// probeROCm queries rocm-smi, which is only present on hosts with the
// ROCm stack installed. Memory and product name come from two separate
// invocations; only the memory query is load-bearing.
func probeROCm(ctx context.Context, env *probeEnv) *Result {
	memOut, err := env.run(ctx, "rocm-smi", "--showmeminfo", "vram")
	if err != nil {
		return nil
	}
	vramGB, count := parseROCmMemInfo(string(memOut))
	if count < 1 {
		count = 1
	}

	name := "AMD GPU"
	if nameOut, err := env.run(ctx, "rocm-smi", "--showproductname"); err == nil {
		if parsed := parseROCmProductName(string(nameOut)); parsed != "" {
			name = parsed
		}
	}

	if vramGB < 0.1 {
		vramGB = EstimateVRAMFromName(name)
	}

	return &Result{
		HasGPU:  true,
		VRAMGB:  vramGB,
		Name:    name,
		Count:   count,
		Backend: BackendROCm,
	}
}

// parseROCmMemInfo sums the VRAM totals in `rocm-smi --showmeminfo vram`
// output and counts one device per nonzero total. Totals live on lines
// mentioning "total" but not "used"; the byte count is the last numeric
// whitespace token on the line.
func parseROCmMemInfo(stdout string) (float64, int) {
	var totalBytes float64
	count := 0
	for _, line := range strings.Split(stdout, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "total") || strings.Contains(lower, "used") {
			continue
		}
		fields := strings.Fields(line)
		for i := len(fields) - 1; i >= 0; i-- {
			if v, err := strconv.ParseFloat(fields[i], 64); err == nil {
				totalBytes += v
				if v > 0 {
					count++
				}
				break
			}
		}
	}
	return util.BytesToGiB(totalBytes), count
}

// parseROCmProductName extracts the card name from
// `rocm-smi --showproductname` output ("Card series:" / "Card model:"
// lines, value after the colon).
func parseROCmProductName(stdout string) string {
	for _, line := range strings.Split(stdout, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "card series") && !strings.Contains(lower, "card model") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			continue
		}
		if name := strings.TrimSpace(parts[1]); name != "" {
			return name
		}
	}
	return ""
}

// =============================================================================
// AMD SYSFS PROBE
// =============================================================================

// probeAMDSysfs walks the DRM sysfs layout for an amdgpu device. Catches
// AMD cards on Linux boxes without ROCm installed.
func probeAMDSysfs(ctx context.Context, env *probeEnv) *Result {
	if env.goos != "linux" {
		return nil
	}

	card, vramGB := findSysfsCard(env.sysfsRoot, "0x1002")
	if card == "" {
		return nil
	}

	name := "AMD GPU"
	if lspci, err := env.run(ctx, "lspci"); err == nil {
		if parsed := lspciGPUName(string(lspci), []string{"amd", "ati"}); parsed != "" {
			name = parsed
		}
	}

	if vramGB < 0.1 {
		vramGB = EstimateVRAMFromName(name)
	}

	return &Result{
		HasGPU: true,
		VRAMGB: vramGB,
		Name:   name,
		Count:  1,
		// No ROCm on this host or the previous probe would have won.
		Backend: BackendVulkan,
	}
}

// findSysfsCard scans root for drm card directories (cardN; connector
// entries like card0-DP-1 are skipped) whose device vendor matches
// vendorID. Returns the first matching card name and its VRAM in GiB
// from mem_info_vram_total, or ("", 0).
func findSysfsCard(root, vendorID string) (string, float64) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", 0
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "card") || strings.Contains(name, "-") {
			continue
		}
		devDir := filepath.Join(root, name, "device")
		vendor, err := os.ReadFile(filepath.Join(devDir, "vendor"))
		if err != nil || strings.TrimSpace(string(vendor)) != vendorID {
			continue
		}
		var vramGB float64
		if data, err := os.ReadFile(filepath.Join(devDir, "mem_info_vram_total")); err == nil {
			if bytes, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64); err == nil {
				vramGB = util.BytesToGiB(bytes)
			}
		}
		return name, vramGB
	}
	return "", 0
}

// lspciGPUName pulls a display-controller name out of lspci output.
// Matches lines that look like a GPU (vga/3d) and mention one of the
// vendor keywords; prefers the bracketed marketing name at the end of
// the line ("Navi 31 [Radeon RX 7900 XTX]" yields "Radeon RX 7900 XTX").
func lspciGPUName(stdout string, vendorKeywords []string) string {
	for _, line := range strings.Split(stdout, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "vga") && !strings.Contains(lower, "3d") {
			continue
		}
		matched := false
		for _, kw := range vendorKeywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		// lspci lines read "<slot> <class>: <device>"; the colon inside
		// the slot has no trailing space, so the first ": " splits off
		// the device description.
		desc := line
		if idx := strings.Index(line, ": "); idx >= 0 {
			desc = line[idx+2:]
		}
		if open := strings.LastIndex(desc, "["); open >= 0 {
			if close := strings.Index(desc[open:], "]"); close > 0 {
				return strings.TrimSpace(desc[open+1 : open+close])
			}
		}
		return strings.TrimSpace(desc)
	}
	return ""
}
