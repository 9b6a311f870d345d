// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package source resolves a source spec (a file path, "-" for stdin, or an
// s3://bucket/key URL) into the text to be searched. Failures are classified
// as ErrNotFound, ErrPermissionDenied or ErrIO.
package source
