// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/staranto/minigrepgo/internal/aws"
)

// GetObjectAPI is the slice of the S3 client used to read a source.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// S3Option is an alias so callers don't need to import internal/aws.
type S3Option = aws.Option

// ParseS3 splits an s3://bucket/key spec.
func ParseS3(spec string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(spec, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("not an s3 url: %s", spec)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 url must be s3://bucket/key: %s", spec)
	}
	return bucket, key, nil
}

func loadS3(ctx context.Context, spec string, o options) (string, error) {
	bucket, key, err := ParseS3(spec)
	if err != nil {
		return "", err
	}

	client := o.s3Client
	if client == nil {
		c, err := aws.NewS3(ctx, o.s3Opts...)
		if err != nil {
			return "", fmt.Errorf("%w: %s: failed to load aws config: %w", ErrIO, spec, err)
		}
		client = c
	}

	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return "", classifyS3(spec, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrIO, spec, err)
	}
	return string(b), nil
}

// classifyS3 maps an S3 API error onto one of the package error kinds.
func classifyS3(spec string, err error) error {
	var nsk *types.NoSuchKey
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsk) || errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, spec, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %s: %w", ErrNotFound, spec, err)
		case "AccessDenied", "Forbidden", "AllAccessDisabled":
			return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, spec, err)
		}
	}

	return fmt.Errorf("%w: %s: %w", ErrIO, spec, err)
}
