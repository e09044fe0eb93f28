// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// BACKEND DEFINITIONS
// =============================================================================

// Backend is the compute-acceleration target used for inference on the
// detected hardware. Exactly one backend is selected per detection run.
type Backend int

const (
	// BackendCUDA targets NVIDIA GPUs.
	BackendCUDA Backend = iota
	// BackendMetal targets Apple Silicon unified-memory GPUs.
	BackendMetal
	// BackendROCm targets AMD GPUs with the ROCm stack installed.
	BackendROCm
	// BackendVulkan targets AMD/other GPUs without ROCm (e.g. Windows AMD,
	// older AMD cards) and is the generic fallback for unrecognized GPUs.
	BackendVulkan
	// BackendSYCL targets Intel GPUs via oneAPI.
	BackendSYCL
	// BackendCPUARM is CPU-only inference on ARM-family processors.
	BackendCPUARM
	// BackendCPUx86 is CPU-only inference on x86-family processors.
	BackendCPUx86
)

// Label returns the human-readable backend name.
func (b Backend) Label() string {
	switch b {
	case BackendCUDA:
		return "CUDA"
	case BackendMetal:
		return "Metal"
	case BackendROCm:
		return "ROCm"
	case BackendVulkan:
		return "Vulkan"
	case BackendSYCL:
		return "SYCL"
	case BackendCPUARM:
		return "CPU (ARM)"
	case BackendCPUx86:
		return "CPU (x86)"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer.
func (b Backend) String() string {
	return b.Label()
}

// MarshalJSON encodes the backend as its label string.
func (b Backend) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Label())
}

// =============================================================================
// BACKEND CLASSIFICATION
// =============================================================================

// InferBackend picks the most likely inference backend from a GPU name.
// Used by the Windows probe, which can surface any vendor's card; the
// other probes know their backend by construction. An unrecognized name
// defaults to Vulkan rather than failing.
func InferBackend(name string) Backend {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "nvidia") || strings.Contains(lower, "geforce") ||
		strings.Contains(lower, "quadro") || strings.Contains(lower, "tesla") ||
		strings.Contains(lower, "rtx"):
		return BackendCUDA
	case strings.Contains(lower, "amd") || strings.Contains(lower, "radeon") ||
		strings.Contains(lower, "ati"):
		// ROCm support on Windows is limited; Vulkan is the primary
		// inference path for AMD cards reaching this classifier.
		return BackendVulkan
	case strings.Contains(lower, "intel") || strings.Contains(lower, "arc"):
		return BackendSYCL
	default:
		return BackendVulkan
	}
}

// CPUBackend selects the CPU-only backend from the CPU model name and the
// build architecture. The name check lets an ARM box running an x86 binary
// under emulation still classify as ARM.
func CPUBackend(cpuName, arch string) Backend {
	if arch == "arm64" || arch == "arm" || strings.Contains(strings.ToLower(cpuName), "apple") {
		return BackendCPUARM
	}
	return BackendCPUx86
}
