// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache provides in-memory memoization wrappers used to avoid
// repeating an expensive calculation.
//
// Cacher is a single-slot cache: it remembers the result of the first call and
// returns it for every later call, whatever the argument. Keyed remembers one
// result per distinct argument. Both satisfy Valuer, so callers written against
// Valuer can switch between them without change.
//
// Cacher is not safe for concurrent use until its first Value call has
// returned. Guard the first call externally if it may race. Keyed writes its
// map for every new argument and is never safe for concurrent use without
// external locking.
package cache
