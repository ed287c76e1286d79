// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadfmt

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Key identifies the benchmark run a file belongs to.
type Key struct {
	Server      string
	Round       int
	Concurrency int
}

// A Kind is the type of a benchmark output file, given by the last
// component of its name.
type Kind string

const (
	// KindLog files contain the load generator's report:
	// latency, request and socket error lines.
	KindLog Kind = "log"
	// KindStats files contain periodic container resource usage
	// snapshots.
	KindStats Kind = "stats"
)

// ParseKind validates a file kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindLog, KindStats:
		return k, nil
	}
	return "", errors.Wrapf(ErrUnknownFileKind, "%q", s)
}

// A Name is a decomposed benchmark file name of the form
// <server>.<round>.<concurrency>.<kind>.
type Name struct {
	Key
	// Kind is the raw kind component. ParseName does not validate
	// it; see ParseKind.
	Kind string
}

func (n Name) String() string {
	return n.Server + "." + itoa(n.Round) + "." + itoa(n.Concurrency) + "." + n.Kind
}

// ParseName decomposes a file name. The name must have exactly four
// dot-separated fields, and the round and concurrency fields must be
// integers. Server names are taken verbatim.
func ParseName(name string) (Name, error) {
	parts := strings.Split(name, ".")
	if len(parts) != 4 {
		return Name{}, errors.Wrapf(ErrMalformedFilename, "%q has %d fields, want 4", name, len(parts))
	}
	round, err := strconv.Atoi(parts[1])
	if err != nil {
		return Name{}, errors.Wrapf(ErrMalformedFilename, "%q: round %q is not an integer", name, parts[1])
	}
	conc, err := strconv.Atoi(parts[2])
	if err != nil {
		return Name{}, errors.Wrapf(ErrMalformedFilename, "%q: concurrency %q is not an integer", name, parts[2])
	}
	return Name{Key{parts[0], round, conc}, parts[3]}, nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
