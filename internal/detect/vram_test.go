// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import "testing"

func TestEstimateVRAMFromName(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"NVIDIA GeForce RTX 5090", 32},
		{"NVIDIA GeForce RTX 4090", 24},
		{"NVIDIA GeForce RTX 3080", 10},
		{"NVIDIA H100 80GB HBM3", 80},
		{"Tesla T4", 16},
		{"AMD Radeon RX 7900 XTX", 24},
		{"AMD Radeon RX 7900 XT", 20},
		{"Radeon RX 6600", 8},
		// Family fallbacks
		{"NVIDIA GeForce RTX 2070 SUPER", 8},
		{"NVIDIA GeForce GTX 1050", 4},
		{"Some Radeon Thing", 8},
		// Unknown
		{"Intel Arc A770", 0},
		{"Matrox G200", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := EstimateVRAMFromName(tt.name); got != tt.want {
			t.Errorf("EstimateVRAMFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Variant tokens must out-rank their generic prefix: a "5070 Ti" is a
// 16 GB card, not the 12 GB base 5070.
func TestEstimateVRAMVariantPrecedence(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"NVIDIA GeForce RTX 5070 Ti", 16},
		{"NVIDIA GeForce RTX 5070", 12},
		{"NVIDIA GeForce RTX 4060 Ti", 16},
		{"NVIDIA GeForce RTX 4060", 8},
		{"NVIDIA GeForce RTX 3080 Ti", 12},
		{"AMD Radeon RX 9070 XT", 16},
		{"AMD Radeon RX 9070", 12},
		{"AMD Radeon RX 5700 XT", 8},
	}

	for _, tt := range tests {
		if got := EstimateVRAMFromName(tt.name); got != tt.want {
			t.Errorf("EstimateVRAMFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEstimateVRAMCaseInsensitive(t *testing.T) {
	if got := EstimateVRAMFromName("nvidia geforce rtx 4090"); got != 24 {
		t.Errorf("lowercase name = %v, want 24", got)
	}
	if got := EstimateVRAMFromName("NVIDIA GEFORCE RTX 4090"); got != 24 {
		t.Errorf("uppercase name = %v, want 24", got)
	}
}
