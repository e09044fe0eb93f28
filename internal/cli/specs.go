// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// specs.go - Specs command implementation for llmfit.
//
// Command: specs
// Short:   Display the hardware snapshot report
// Aliases: spec, hw
//
// Examples:
//   llmfit specs                  Show the hardware report
//   llmfit specs --json           Snapshot in JSON format
//   llmfit specs --plain          Report without terminal styling
//
// Output Fields:
//   CPU            Processor model name and logical core count
//   Total RAM      Physical memory in GB
//   Available RAM  Memory usable for model loading
//   Backend        Inference backend for this hardware
//   GPU            Device name and VRAM (branching on unified/multi/
//                  unknown/absent)
//   Environment    WSL note when running under Windows Subsystem for Linux
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/llmfit-tui/internal/config"
	"github.com/jeranaias/llmfit-tui/internal/detect"
	"github.com/jeranaias/llmfit-tui/internal/specs"
)

// =============================================================================
// HANDLE SPECS
// =============================================================================

// HandleSpecs handles the "specs" command: run detection once and print
// the report (or the JSON snapshot).
func HandleSpecs(args Args, cfg *config.Config) error {
	opts := DetectOptions(args, cfg)

	start := time.Now()
	sp := specs.Detect(context.Background(), opts)
	if args.Verbose {
		fmt.Fprintf(os.Stderr, "detection took %s\n", time.Since(start).Round(time.Millisecond))
	}

	if args.JSON || cfg.Output.JSON {
		return NewJSONResponse("specs", sp).Print()
	}

	out := RenderReport(sp, args.Plain || cfg.Output.Plain)
	if args.Quiet {
		// Quiet drops the section header, leaving just the fields.
		if i := strings.Index(out, "\n"); i >= 0 {
			out = out[i+1:]
		}
	}
	fmt.Println(out)
	return nil
}

// DetectOptions merges config and CLI flags into detection options. The
// --timeout flag wins over the config file value.
func DetectOptions(args Args, cfg *config.Config) detect.Options {
	timeoutSecs := cfg.Detect.ToolTimeoutSecs
	if args.TimeoutSecs > 0 {
		timeoutSecs = args.TimeoutSecs
	}
	return detect.Options{
		Timeout:  time.Duration(timeoutSecs) * time.Second,
		Disabled: cfg.Detect.Disabled,
	}
}

// =============================================================================
// REPORT RENDERING
// =============================================================================

// RenderReport renders the snapshot as the ordered report lines: CPU,
// total RAM, available RAM, backend, then the GPU line. Plain mode
// drops all styling for pipes and logs.
func RenderReport(sp specs.SystemSpecs, plain bool) string {
	label := func(s string) string { return labelStyle.Render(s) }
	value := func(s string) string { return valueStyle.Render(s) }
	green := func(s string) string { return valueGreenStyle.Render(s) }
	dim := func(s string) string { return valueDimStyle.Render(s) }
	title := func(s string) string { return specsTitleStyle.Render(s) }
	if plain {
		pad := func(s string) string { return fmt.Sprintf("%-15s", s) }
		ident := func(s string) string { return s }
		label, value, green, dim, title = pad, ident, ident, ident, ident
	}

	var b strings.Builder
	b.WriteString(title("Hardware"))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", label("CPU"),
		value(fmt.Sprintf("%s (%d cores)", sp.CPUName, sp.TotalCPUCores)))
	fmt.Fprintf(&b, "%s %s\n", label("Total RAM"),
		value(fmt.Sprintf("%.2f GB", sp.TotalRAMGB)))
	fmt.Fprintf(&b, "%s %s\n", label("Available RAM"),
		value(fmt.Sprintf("%.2f GB", sp.AvailableRAMGB)))
	fmt.Fprintf(&b, "%s %s\n", label("Backend"), green(sp.Backend.Label()))
	fmt.Fprintf(&b, "%s %s", label("GPU"), gpuLine(sp, green, dim))

	if sp.WSL {
		fmt.Fprintf(&b, "\n%s %s", label("Environment"), dim("WSL"))
	}

	return b.String()
}

// gpuLine renders the GPU report line, branching on unified memory,
// multi-GPU, known VRAM, unknown VRAM, and absence.
func gpuLine(sp specs.SystemSpecs, green, dim func(string) string) string {
	switch {
	case !sp.HasGPU:
		return dim("Not detected")
	case sp.UnifiedMemory:
		return green(fmt.Sprintf("%s (unified memory, %.2f GB shared)", sp.GPUName, sp.GPUVRAMGB))
	case sp.GPUVRAMGB <= 0:
		return green(fmt.Sprintf("%s (VRAM unknown)", sp.GPUName))
	case sp.GPUCount > 1:
		return green(fmt.Sprintf("%s x%d (%.2f GB VRAM total)", sp.GPUName, sp.GPUCount, sp.GPUVRAMGB))
	default:
		return green(fmt.Sprintf("%s (%.2f GB VRAM)", sp.GPUName, sp.GPUVRAMGB))
	}
}

// =============================================================================
// STYLES
// =============================================================================

var (
	// Title style for the header
	specsTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// Label style for field names
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Light gray
			Width(15)

	// Value styles
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")) // White

	valueGreenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")) // Green

	valueDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim
)
