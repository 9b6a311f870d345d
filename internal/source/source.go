// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/apex/log"
)

var (
	// ErrNotFound means the source does not exist.
	ErrNotFound = errors.New("source not found")
	// ErrPermissionDenied means the source exists but cannot be read.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrIO covers every other failure to read the source.
	ErrIO = errors.New("i/o failure")
)

const s3Scheme = "s3://"

type options struct {
	stdin    io.Reader
	s3Client GetObjectAPI
	s3Opts   []S3Option
}

// Option customizes Load.
type Option func(*options)

// WithStdin replaces os.Stdin as the reader for the "-" spec.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithS3Client supplies the client used for s3:// specs. Without it a client
// is built from the ambient AWS configuration.
func WithS3Client(c GetObjectAPI) Option {
	return func(o *options) { o.s3Client = c }
}

// WithS3Options passes profile, region and endpoint overrides through to the
// S3 client built for s3:// specs.
func WithS3Options(opts ...S3Option) Option {
	return func(o *options) { o.s3Opts = append(o.s3Opts, opts...) }
}

// Load returns the full text named by spec.
func Load(ctx context.Context, spec string, opts ...Option) (string, error) {
	o := options{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}

	log.Debugf("loading source %s", Describe(spec))

	switch {
	case spec == "" || spec == "-":
		b, err := io.ReadAll(o.stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrIO, err)
		}
		return string(b), nil

	case strings.HasPrefix(spec, s3Scheme):
		return loadS3(ctx, spec, o)

	default:
		b, err := os.ReadFile(spec)
		if err != nil {
			return "", classify(spec, err)
		}
		return string(b), nil
	}
}

// Describe returns a human label for spec.
func Describe(spec string) string {
	if spec == "" || spec == "-" {
		return "stdin"
	}
	return spec
}

// classify maps a file system error onto one of the package error kinds.
func classify(spec string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, spec, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, spec, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrIO, spec, err)
	}
}
