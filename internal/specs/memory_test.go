// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package specs

import (
	"errors"
	"math"
	"testing"
)

const vmStatSample = `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                              131072.
Pages active:                           1048576.
Pages inactive:                          262144.
Pages speculative:                        50000.
Pages throttled:                              0.
Pages wired down:                        400000.
Pages purgeable:                          65536.
`

func noVMStat() (string, error) { return "", errors.New("not darwin") }

func TestAvailableRAMPrimaryReadingWins(t *testing.T) {
	// A plausible kernel-reported available figure is used as-is; the
	// ladder never runs.
	got := availableRAMWith(64, 24, 30, "linux", noVMStat)
	if math.Abs(got-30) > 0.001 {
		t.Errorf("available = %v, want the reported 30", got)
	}
}

func TestAvailableRAMPrimaryReadingClamped(t *testing.T) {
	got := availableRAMWith(64, 24, 80, "linux", noVMStat)
	if math.Abs(got-64) > 0.001 {
		t.Errorf("available = %v, want clamp to total 64", got)
	}
}

func TestAvailableRAMTotalMinusUsed(t *testing.T) {
	// Zero reported available with nonzero total triggers the ladder.
	got := availableRAMWith(64, 24, 0, "linux", noVMStat)
	if math.Abs(got-40) > 0.001 {
		t.Errorf("available = %v, want 40", got)
	}
}

func TestAvailableRAMDarwinVMStat(t *testing.T) {
	// macOS used==0 path: free+inactive+purgeable = 458752 pages at
	// 16 KiB each = 7 GiB.
	got := availableRAMWith(64, 0, 0, "darwin", func() (string, error) {
		return vmStatSample, nil
	})
	if math.Abs(got-7) > 0.001 {
		t.Errorf("available = %v, want 7", got)
	}
}

func TestAvailableRAMEightyPercentFloor(t *testing.T) {
	tests := []struct {
		name    string
		totalGB float64
		usedGB  float64
		goos    string
	}{
		{"used zero on linux", 32, 0, "linux"},
		{"used exceeds total", 32, 40, "linux"},
		{"vm_stat unavailable", 32, 0, "darwin"},
	}
	for _, tt := range tests {
		got := availableRAMWith(tt.totalGB, tt.usedGB, 0, tt.goos, noVMStat)
		want := tt.totalGB * 0.8
		if math.Abs(got-want) > 0.001 {
			t.Errorf("%s: available = %v, want %v", tt.name, got, want)
		}
	}
}

func TestAvailableRAMBounds(t *testing.T) {
	// Whatever the inputs, the result stays in (0, total].
	cases := []struct {
		totalGB float64
		usedGB  float64
		availGB float64
	}{
		{64, 24, 0}, {64, 0, 0}, {64, 64, 0}, {64, 100, 0},
		{0.5, 0.1, 0}, {16, 0.0001, 0}, {64, 24, 30}, {64, 24, 200},
	}
	for _, c := range cases {
		got := availableRAMWith(c.totalGB, c.usedGB, c.availGB, "linux", noVMStat)
		if got <= 0 || got > c.totalGB {
			t.Errorf("total=%v used=%v avail=%v: available=%v out of (0, total]",
				c.totalGB, c.usedGB, c.availGB, got)
		}
	}
}

func TestParseVMStatDefaultPageSize(t *testing.T) {
	// Header missing: fall back to the 16 KiB Apple Silicon page size.
	out := "Pages free: 1024.\nPages inactive: 1024.\nPages purgeable: 0.\n"
	got := parseVMStat(out)
	want := 2048 * 16384.0 / (1024 * 1024 * 1024)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("parseVMStat = %v, want %v", got, want)
	}
}

func TestParseVMStatCustomPageSize(t *testing.T) {
	out := "Mach Virtual Memory Statistics: (page size of 4096 bytes)\n" +
		"Pages free: 262144.\n"
	got := parseVMStat(out)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("parseVMStat = %v, want 1", got)
	}
}

func TestParseVMStatGarbage(t *testing.T) {
	if got := parseVMStat("complete nonsense\n"); got != 0 {
		t.Errorf("parseVMStat = %v, want 0", got)
	}
}
