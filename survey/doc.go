// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey holds the in-memory survey: an ordered list of named
entries with signed vote counters.

# Addressing

Entries are addressed by their 0-based position. An index stays valid
until an entry before it is removed; RemoveEntry shifts every later
entry down by one.

# Invariants

  - names are non-empty and unique (case-sensitive)
  - Len() <= MaxEntries() at all times
  - votes are unbounded in both directions

State performs no I/O and no locking. The processor package owns the
single instance and serializes every call.
*/
package survey
