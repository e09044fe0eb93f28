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
// WINDOWS PROBE
// =============================================================================

// adapterRAMCapGB is the ceiling of Win32_VideoController.AdapterRAM,
// a uint32 field. Cards with more than 4 GiB report a truncated value,
// so anything at or below this is cross-checked against the name table.
const adapterRAMCapGB = 4.1

// gpuCandidate is one video controller reported by Windows.
type gpuCandidate struct {
	name    string
	ramByte float64
}

// probeWindows queries Win32_VideoController through PowerShell, with
// wmic as the legacy fallback for hosts where PowerShell is locked down.
func probeWindows(ctx context.Context, env *probeEnv) *Result {
	if env.goos != "windows" {
		return nil
	}

	var candidates []gpuCandidate
	output, err := env.run(ctx, "powershell", "-NoProfile", "-Command",
		`Get-CimInstance Win32_VideoController | ForEach-Object { $_.Name + '|' + $_.AdapterRAM }`)
	if err == nil {
		candidates = parseVideoControllerEntries(string(output))
	} else {
		// Legacy path, only when the primary invocation fails outright.
		// A successful query with no usable entries means no GPU, not a
		// reason to re-ask an older tool.
		output, err = env.run(ctx, "wmic",
			"path", "win32_VideoController", "get", "AdapterRAM,Name", "/format:csv")
		if err != nil {
			return nil
		}
		candidates = parseWMICEntries(string(output))
	}

	best, count := pickBestCandidate(candidates)
	if count == 0 {
		return nil
	}

	vramGB := util.BytesToGiB(best.ramByte)
	// AdapterRAM is 32-bit: a 24 GB card reports ~4 GB. When the
	// reported value sits at or under the cap but the model is known to
	// carry more, trust the table.
	if estimate := EstimateVRAMFromName(best.name); vramGB < 0.1 ||
		(vramGB <= adapterRAMCapGB && estimate > adapterRAMCapGB) {
		vramGB = estimate
	}

	return &Result{
		HasGPU:  true,
		VRAMGB:  vramGB,
		Name:    best.name,
		Count:   count,
		Backend: InferBackend(best.name),
	}
}

// parseVideoControllerEntries parses "Name|AdapterRAM" lines from the
// PowerShell query. Lines without a parseable RAM field keep the name
// with RAM 0.
func parseVideoControllerEntries(stdout string) []gpuCandidate {
	var out []gpuCandidate
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sep := strings.LastIndex(line, "|")
		if sep < 0 {
			continue
		}
		name := strings.TrimSpace(line[:sep])
		if name == "" {
			continue
		}
		ram, _ := strconv.ParseFloat(strings.TrimSpace(line[sep+1:]), 64)
		out = append(out, gpuCandidate{name: name, ramByte: ram})
	}
	return out
}

// parseWMICEntries parses wmic CSV output: "Node,AdapterRAM,Name" with a
// header line and possible blank lines. The name is everything after the
// second comma, so commas inside model names survive.
func parseWMICEntries(stdout string) []gpuCandidate {
	var out []gpuCandidate
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) < 3 {
			continue
		}
		ram, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			// Header line ("Node,AdapterRAM,Name") lands here.
			continue
		}
		name := strings.TrimSpace(parts[2])
		if name == "" {
			continue
		}
		out = append(out, gpuCandidate{name: name, ramByte: ram})
	}
	return out
}

// pickBestCandidate drops software adapters (RDP, Hyper-V, the basic
// display driver) and returns the surviving candidate with the most
// reported RAM plus the survivor count. Ties and all-zero RAM keep the
// first survivor seen.
func pickBestCandidate(candidates []gpuCandidate) (gpuCandidate, int) {
	var best gpuCandidate
	count := 0
	for _, c := range candidates {
		lower := strings.ToLower(c.name)
		if strings.Contains(lower, "microsoft") ||
			strings.Contains(lower, "basic") ||
			strings.Contains(lower, "virtual") {
			continue
		}
		count++
		if count == 1 || c.ramByte > best.ramByte {
			best = c
		}
	}
	return best, count
}
