// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package detect identifies the GPU accelerator available on this machine.
//
// Detection is an ordered chain of vendor- and platform-specific probes;
// the first probe that finds a device wins. Each probe wraps one external
// tool or kernel interface:
//
//   - NVIDIA (via nvidia-smi, multi-GPU aware)
//   - AMD with ROCm (via rocm-smi)
//   - AMD without ROCm (via the amdgpu sysfs DRM layout)
//   - Windows (via PowerShell Win32_VideoController, wmic fallback)
//   - Intel Arc (via sysfs or lspci)
//   - Apple Silicon (via system_profiler, unified memory)
//
// Every failure mode of an external tool - not installed, nonzero exit,
// garbage output - collapses to "this probe found nothing" and the chain
// moves on. When no probe matches, the caller gets a CPU-only result.
package detect
