// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package search implements line oriented substring search over an in-memory
// body of text. It has no knowledge of where the text came from or how the
// results are rendered.
package search
