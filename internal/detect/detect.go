// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"context"
	"os/exec"
	"runtime"
	"time"
)

// defaultProbeTimeout bounds the whole detection run. External tools can
// hang on broken driver installs; the deadline keeps detection one-shot.
// CANCELLATION: Context enables timeout and cancellation
const defaultProbeTimeout = 10 * time.Second

// =============================================================================
// DETECTION RESULT
// =============================================================================

// Result is one complete GPU detection outcome. A Result is immutable
// once returned; callers read it, they never update it.
type Result struct {
	// HasGPU is false when every probe came up empty (CPU-only host).
	HasGPU bool
	// VRAMGB is the usable GPU memory in GiB. 0 with HasGPU=true means
	// a device is present but its capacity is unknown.
	VRAMGB float64
	// Name is the marketing name of the device (first device on
	// multi-GPU hosts).
	Name string
	// Count is the number of physical devices found by the winning
	// probe. 0 when HasGPU is false.
	Count int
	// UnifiedMemory is true on Apple Silicon, where VRAMGB is the full
	// system RAM shared between CPU and GPU.
	UnifiedMemory bool
	// Backend is the inference backend matching the device.
	Backend Backend
}

// =============================================================================
// PROBE ENVIRONMENT
// =============================================================================

// runner executes an external tool and returns its stdout. Tests swap in
// a fake to replay captured tool output.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCommand is the production runner.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// probeEnv carries everything a probe touches outside its own logic, so
// tests can substitute all of it: the tool runner, the sysfs root, and
// the apparent OS.
type probeEnv struct {
	run       runner
	sysfsRoot string
	goos      string
}

func defaultEnv() *probeEnv {
	return &probeEnv{
		run:       runCommand,
		sysfsRoot: "/sys/class/drm",
		goos:      runtime.GOOS,
	}
}

// =============================================================================
// PROBE CHAIN
// =============================================================================

// probe is one detection strategy. A probe returns a complete Result or
// nil; it never returns an error, since a failed probe just means "try
// the next one".
type probe struct {
	name string
	run  func(ctx context.Context, env *probeEnv) *Result
}

// probeChain is ordered by reliability of the underlying tool: vendor
// management CLIs first, raw kernel interfaces after, platform-wide
// queries last. First match wins.
var probeChain = []probe{
	{name: "nvidia", run: probeNvidia},
	{name: "rocm", run: probeROCm},
	{name: "amd-sysfs", run: probeAMDSysfs},
	{name: "windows", run: probeWindows},
	{name: "intel", run: probeIntel},
	{name: "apple", run: probeApple},
}

// Options tunes a detection run.
type Options struct {
	// Timeout bounds the whole run. Zero means defaultProbeTimeout.
	Timeout time.Duration
	// Disabled lists probe names to skip (nvidia, rocm, amd-sysfs,
	// windows, intel, apple). Unknown names are ignored.
	Disabled []string
}

// DetectGPU runs the probe chain and returns the first hit. A host with
// no detectable GPU gets a zero-value Result with HasGPU=false; the
// caller decides the CPU backend. Detection never fails with an error.
func DetectGPU(ctx context.Context, opts Options) Result {
	return detectWithEnv(ctx, opts, defaultEnv())
}

func detectWithEnv(ctx context.Context, opts Options, env *probeEnv) Result {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	disabled := make(map[string]bool, len(opts.Disabled))
	for _, name := range opts.Disabled {
		disabled[name] = true
	}

	for _, p := range probeChain {
		if disabled[p.name] {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		if res := p.run(ctx, env); res != nil {
			return *res
		}
	}
	return Result{}
}
