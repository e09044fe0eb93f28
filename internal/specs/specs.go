// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package specs

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/jeranaias/llmfit-tui/internal/detect"
	"github.com/jeranaias/llmfit-tui/internal/util"
)

// =============================================================================
// SYSTEM SPECS
// =============================================================================

// SystemSpecs is the complete hardware snapshot taken at startup. It is
// read-only after Detect returns; nothing refreshes it.
type SystemSpecs struct {
	// TotalRAMGB is the physical system memory in GiB.
	TotalRAMGB float64 `json:"total_ram_gb"`
	// AvailableRAMGB is the memory usable for new allocations, in GiB.
	// Always in (0, TotalRAMGB].
	AvailableRAMGB float64 `json:"available_ram_gb"`
	// TotalCPUCores is the logical core count.
	TotalCPUCores int `json:"total_cpu_cores"`
	// CPUName is the processor model name, "Unknown CPU" if unreadable.
	CPUName string `json:"cpu_name"`
	// HasGPU is false on CPU-only hosts.
	HasGPU bool `json:"has_gpu"`
	// GPUVRAMGB is GPU memory in GiB; 0 with HasGPU=true means unknown.
	GPUVRAMGB float64 `json:"gpu_vram_gb"`
	// GPUName is the device marketing name, empty without a GPU.
	GPUName string `json:"gpu_name"`
	// GPUCount is the number of physical devices.
	GPUCount int `json:"gpu_count"`
	// UnifiedMemory marks Apple Silicon, where GPUVRAMGB equals
	// TotalRAMGB.
	UnifiedMemory bool `json:"unified_memory"`
	// Backend is the inference backend for this hardware.
	Backend detect.Backend `json:"backend"`
	// WSL is true under Windows Subsystem for Linux.
	WSL bool `json:"wsl"`
}

// Detect takes the snapshot: RAM and CPU through gopsutil, then the GPU
// probe chain. It never returns an error; fields it cannot fill stay at
// their zero values (or the documented placeholders).
func Detect(ctx context.Context, opts detect.Options) SystemSpecs {
	var totalGB, usedGB, reportedAvailGB float64
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		totalGB = util.BytesToGiB(float64(vm.Total))
		usedGB = util.BytesToGiB(float64(vm.Used))
		reportedAvailGB = util.BytesToGiB(float64(vm.Available))
	}

	cpuName := ""
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		cpuName = infos[0].ModelName
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil || cores <= 0 {
		cores = runtime.NumCPU()
	}

	availGB := availableRAMGB(ctx, totalGB, usedGB, reportedAvailGB)
	gpu := detect.DetectGPU(ctx, opts)

	return assemble(totalGB, availGB, cores, cpuName, gpu, detect.IsWSL())
}

// assemble builds the snapshot from its parts. Split out so tests can
// exercise placeholder and backend-selection rules without real probes.
func assemble(totalGB, availGB float64, cores int, cpuName string, gpu detect.Result, wsl bool) SystemSpecs {
	if cpuName == "" {
		cpuName = "Unknown CPU"
	}

	backend := gpu.Backend
	if !gpu.HasGPU {
		backend = detect.CPUBackend(cpuName, runtime.GOARCH)
	}

	return SystemSpecs{
		TotalRAMGB:     totalGB,
		AvailableRAMGB: availGB,
		TotalCPUCores:  cores,
		CPUName:        cpuName,
		HasGPU:         gpu.HasGPU,
		GPUVRAMGB:      gpu.VRAMGB,
		GPUName:        gpu.Name,
		GPUCount:       gpu.Count,
		UnifiedMemory:  gpu.UnifiedMemory,
		Backend:        backend,
		WSL:            wsl,
	}
}
