// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadfmt

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// A Source is a flat collection of benchmark output files.
type Source interface {
	// List returns the names of the files in the source. The
	// order is unspecified.
	List(ctx context.Context) ([]string, error)
	// Open opens the named file for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Close releases any resources held by the source.
	Close() error
}

// Dir is a Source reading the regular files of a local directory.
// Subdirectories are not listed.
type Dir string

func (d Dir) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(string(d))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (d Dir) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(string(d), name))
}

func (d Dir) Close() error { return nil }

func (d Dir) String() string { return string(d) }

const gsScheme = "gs://"

// ParseLocation splits a "gs://bucket/prefix" location into its
// bucket and object prefix. ok is false if location is not a Cloud
// Storage location.
func ParseLocation(location string) (bucket, prefix string, ok bool) {
	if !strings.HasPrefix(location, gsScheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(location, gsScheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}
	return bucket, prefix, true
}

// OpenSource returns the Source for location, which is either a
// local directory or a "gs://bucket/prefix" Cloud Storage location.
// opts configure the Cloud Storage client, for example with
// option.WithCredentialsFile. The caller must Close the source.
func OpenSource(ctx context.Context, location string, opts ...option.ClientOption) (Source, error) {
	bucket, prefix, ok := ParseLocation(location)
	if !ok {
		if strings.HasPrefix(location, gsScheme) {
			return nil, errors.Errorf("bad Cloud Storage location %q", location)
		}
		return Dir(location), nil
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "creating Cloud Storage client")
	}
	b := NewBucket(client, bucket, prefix)
	b.owned = true
	return b, nil
}
