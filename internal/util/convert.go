// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small conversion helpers shared across llmfit.
package util

import "strconv"

// BytesToGiB converts a byte count to GiB.
func BytesToGiB(b float64) float64 {
	return b / (1024 * 1024 * 1024)
}

// MiBToGiB converts mebibytes to GiB.
func MiBToGiB(m float64) float64 {
	return m / 1024
}

// FloatToString converts a float64 to string with 2 decimal places.
// Uses strconv.FormatFloat for optimal performance.
func FloatToString(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// IntToString converts an int to string.
// Uses strconv.Itoa for optimal performance.
func IntToString(i int) string {
	return strconv.Itoa(i)
}
