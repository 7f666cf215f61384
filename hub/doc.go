// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package hub keeps the set of connected channels and delivers broadcasts
// to them with per-channel failure isolation.
package hub
