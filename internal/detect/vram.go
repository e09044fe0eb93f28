// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import "strings"

// =============================================================================
// VRAM ESTIMATION
// =============================================================================

// vramEntry pairs a lowercase model-name fragment with its known VRAM
// capacity in GiB.
type vramEntry struct {
	fragment string
	gb       float64
}

// vramTable is ordered: variant tokens ("5070 ti") come before their
// generic prefixes ("5070") so the first match is the most specific one,
// and broad family fallbacks ("rtx", "radeon") come last. Order matters;
// do not sort.
var vramTable = []vramEntry{
	// NVIDIA RTX 50-series
	{"5090", 32},
	{"5080", 16},
	{"5070 ti", 16},
	{"5070", 12},
	{"5060 ti", 16},
	{"5060", 8},
	// NVIDIA RTX 40-series
	{"4090", 24},
	{"4080", 16},
	{"4070 ti", 12},
	{"4070", 12},
	{"4060 ti", 16},
	{"4060", 8},
	// NVIDIA RTX 30-series
	{"3090", 24},
	{"3080 ti", 12},
	{"3080", 10},
	{"3070", 8},
	{"3060 ti", 8},
	{"3060", 12},
	// NVIDIA datacenter
	{"h100", 80},
	{"a100", 80},
	{"l40", 48},
	{"a10", 24},
	{"t4", 16},
	// AMD RX 9000
	{"9070 xt", 16},
	{"9070", 12},
	// AMD RX 7000
	{"7900 xtx", 24},
	{"7900", 20},
	{"7800", 16},
	{"7700", 12},
	{"7600", 8},
	// AMD RX 6000
	{"6950", 16},
	{"6900", 16},
	{"6800", 16},
	{"6750", 12},
	{"6700", 12},
	{"6650", 8},
	{"6600", 8},
	{"6500", 4},
	// AMD RX 5000
	{"5700 xt", 8},
	{"5700", 8},
	{"5600", 6},
	{"5500", 4},
	// Family fallbacks
	{"rtx", 8},
	{"gtx", 4},
	{"rx ", 8},
	{"radeon", 8},
}

// EstimateVRAMFromName guesses a GPU's VRAM in GiB from its marketing
// name when the driver won't report a real number. Matching is a
// case-insensitive substring scan over vramTable; returns 0 when the
// name matches nothing (capacity unknown).
func EstimateVRAMFromName(name string) float64 {
	lower := strings.ToLower(name)
	for _, e := range vramTable {
		if strings.Contains(lower, e.fragment) {
			return e.gb
		}
	}
	return 0
}
