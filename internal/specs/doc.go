// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package specs assembles the one-shot hardware snapshot: CPU identity,
// RAM totals, and the GPU detection result, combined into an immutable
// SystemSpecs value. Snapshot assembly never fails; unknown fields
// degrade to zero values or placeholders.
package specs
