// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"os"
	"strings"
	"sync"
)

// =============================================================================
// WSL DETECTION
// =============================================================================

// IsWSL reports whether the process is running inside Windows Subsystem
// for Linux. The answer cannot change while the process lives, so it is
// computed once and memoized.
var IsWSL = sync.OnceValue(detectWSL)

func detectWSL() bool {
	if os.Getenv("WSL_INTEROP") != "" || os.Getenv("WSL_DISTRO_NAME") != "" {
		return true
	}
	for _, path := range []string{"/proc/sys/kernel/osrelease", "/proc/version"} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(string(data)), "microsoft") {
			return true
		}
	}
	return false
}
