// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"context"
	"testing"
)

func TestProbeIntelSysfs(t *testing.T) {
	env := testEnv(t)
	writeSysfsCard(t, env.sysfsRoot, "card0", "0x8086", "")
	env.run = runnerFor(map[string]string{
		"lspci": "03:00.0 VGA compatible controller: Intel Corporation DG2 [Arc A770] (rev 08)\n",
	})

	res := probeIntel(context.Background(), env)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Name != "Arc A770" {
		t.Errorf("name = %q", res.Name)
	}
	if res.Backend != BackendSYCL {
		t.Errorf("backend = %v, want SYCL", res.Backend)
	}
	// Intel sysfs exposes no VRAM total: present, capacity unknown.
	if res.VRAMGB != 0 {
		t.Errorf("vram = %v, want 0 sentinel", res.VRAMGB)
	}
}

func TestProbeIntelLspciOnlyArc(t *testing.T) {
	// No sysfs node (e.g. container without /sys): an Arc card in lspci
	// still counts.
	env := testEnv(t)
	env.run = runnerFor(map[string]string{
		"lspci": "03:00.0 VGA compatible controller: Intel Corporation DG2 [Arc A750]\n",
	})

	res := probeIntel(context.Background(), env)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Name != "Arc A750" {
		t.Errorf("name = %q", res.Name)
	}
}

func TestProbeIntelSysfsWithVRAM(t *testing.T) {
	// A sysfs node with a nonzero VRAM total is a discrete card even
	// when the lspci name carries no Arc keyword.
	env := testEnv(t)
	writeSysfsCard(t, env.sysfsRoot, "card0", "0x8086", "17179869184")
	env.run = runnerFor(map[string]string{
		"lspci": "03:00.0 VGA compatible controller: Intel Corporation DG1 [Iris Xe MAX Graphics]\n",
	})

	res := probeIntel(context.Background(), env)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Name != "Iris Xe MAX Graphics" {
		t.Errorf("name = %q", res.Name)
	}
	if res.VRAMGB != 16 {
		t.Errorf("vram = %v, want 16", res.VRAMGB)
	}
}

func TestProbeIntelIgnoresIntegratedWithSysfs(t *testing.T) {
	// Integrated graphics expose vendor 0x8086 but no VRAM total; a
	// bare vendor match with a non-Arc lspci name must defer so the
	// host can fall through to the CPU backend.
	env := testEnv(t)
	writeSysfsCard(t, env.sysfsRoot, "card0", "0x8086", "")
	env.run = runnerFor(map[string]string{
		"lspci": "00:02.0 VGA compatible controller: Intel Corporation UHD Graphics 630\n",
	})

	if res := probeIntel(context.Background(), env); res != nil {
		t.Errorf("iGPU without VRAM total or Arc keyword must not match, got %+v", res)
	}
}

func TestProbeIntelIgnoresIntegratedWithoutSysfs(t *testing.T) {
	env := testEnv(t)
	env.run = runnerFor(map[string]string{
		"lspci": "00:02.0 VGA compatible controller: Intel Corporation UHD Graphics 630\n",
	})

	if res := probeIntel(context.Background(), env); res != nil {
		t.Errorf("integrated graphics without a sysfs hit must not match, got %+v", res)
	}
}

func TestProbeIntelNothingFound(t *testing.T) {
	if res := probeIntel(context.Background(), testEnv(t)); res != nil {
		t.Errorf("expected nil, got %+v", res)
	}
}

func TestProbeIntelNonLinux(t *testing.T) {
	env := testEnv(t)
	env.goos = "windows"
	writeSysfsCard(t, env.sysfsRoot, "card0", "0x8086", "")

	if res := probeIntel(context.Background(), env); res != nil {
		t.Errorf("probe must be linux-only, got %+v", res)
	}
}
