// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadfmt

import (
	"context"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// Bucket is a Source reading the objects stored directly under a
// prefix of a Cloud Storage bucket. Objects in nested "directories"
// are not listed.
type Bucket struct {
	client *storage.Client
	handle *storage.BucketHandle
	name   string
	prefix string
	owned  bool // Close closes client
}

// NewBucket returns a Source for the objects of bucket under
// prefix. The client remains owned by the caller.
func NewBucket(client *storage.Client, bucket, prefix string) *Bucket {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Bucket{
		client: client,
		handle: client.Bucket(bucket),
		name:   bucket,
		prefix: prefix,
	}
}

func (b *Bucket) List(ctx context.Context) ([]string, error) {
	it := b.handle.Objects(ctx, &storage.Query{Prefix: b.prefix, Delimiter: "/"})
	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "listing %s", b)
		}
		name := strings.TrimPrefix(attrs.Name, b.prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			// A nested prefix or a folder placeholder object.
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (b *Bucket) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := b.handle.Object(b.prefix + name).NewReader(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s%s", b, name)
	}
	return r, nil
}

func (b *Bucket) Close() error {
	if b.owned {
		return b.client.Close()
	}
	return nil
}

func (b *Bucket) String() string {
	return gsScheme + b.name + "/" + b.prefix
}
