// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package specs

import (
	"context"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/jeranaias/llmfit-tui/internal/util"
)

// =============================================================================
// AVAILABLE MEMORY FALLBACK
// =============================================================================

// defaultPageSize is the Apple Silicon VM page size, used when the
// vm_stat header cannot be parsed.
const defaultPageSize = 16384

// availableRAMGB returns memory available for new allocations, in GiB.
// The kernel's own available counter is the primary source; the
// fallback ladder runs only when that reading is implausible (zero
// with a nonzero total): total minus used when the used figure is
// sane, vm_stat on macOS (whose "used" accounting hides reclaimable
// pages), and 80% of total as the floor. The result is always in
// (0, total].
func availableRAMGB(ctx context.Context, totalGB, usedGB, reportedAvailGB float64) float64 {
	return availableRAMWith(totalGB, usedGB, reportedAvailGB, runtime.GOOS, func() (string, error) {
		out, err := exec.CommandContext(ctx, "vm_stat").Output()
		return string(out), err
	})
}

func availableRAMWith(totalGB, usedGB, reportedAvailGB float64, goos string, vmStat func() (string, error)) float64 {
	if totalGB <= 0 {
		return 0
	}

	if reportedAvailGB > 0 {
		if reportedAvailGB > totalGB {
			return totalGB
		}
		return reportedAvailGB
	}

	avail := 0.0
	switch {
	case usedGB > 0 && usedGB < totalGB:
		avail = totalGB - usedGB
	case goos == "darwin":
		if out, err := vmStat(); err == nil {
			avail = parseVMStat(out)
		}
	}

	if avail <= 0 {
		avail = totalGB * 0.8
	}
	if avail > totalGB {
		avail = totalGB
	}
	return avail
}

// parseVMStat turns `vm_stat` output into reclaimable memory in GiB:
// free + inactive + purgeable pages times the page size from the header
// line ("Mach Virtual Memory Statistics: (page size of 16384 bytes)").
func parseVMStat(stdout string) float64 {
	pageSize := float64(defaultPageSize)
	var pages float64

	for _, line := range strings.Split(stdout, "\n") {
		lower := strings.ToLower(line)

		if strings.Contains(lower, "page size of") {
			for _, field := range strings.Fields(line) {
				if v, err := strconv.ParseFloat(field, 64); err == nil && v > 0 {
					pageSize = v
					break
				}
			}
			continue
		}

		if strings.HasPrefix(lower, "pages free:") ||
			strings.HasPrefix(lower, "pages inactive:") ||
			strings.HasPrefix(lower, "pages purgeable:") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) < 2 {
				continue
			}
			// Page counts carry a trailing period.
			val := strings.TrimSuffix(strings.TrimSpace(parts[1]), ".")
			if v, err := strconv.ParseFloat(val, 64); err == nil {
				pages += v
			}
		}
	}

	return util.BytesToGiB(pages * pageSize)
}
