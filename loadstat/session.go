// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loadstat aggregates HTTP load benchmark results into
// per-feature matrices of servers by concurrency level.
//
// A Session reads every file of a Source once, in name order, and
// records the samples it finds in a Store. Afterwards, Matrix
// averages the samples of each (server, concurrency) pair across all
// rounds and lines.
//
//	s := loadstat.NewSession(logger)
//	if err := s.Process(ctx, loadfmt.Dir("results")); err != nil {
//		...
//	}
//	for _, m := range s.Matrices() {
//		...
//	}
package loadstat

import (
	"context"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wsgibench/loadstat/loadfmt"
)

type readFunc func(r io.Reader, fileName string, key loadfmt.Key, rec loadfmt.Recorder) error

var readers = map[loadfmt.Kind]readFunc{
	loadfmt.KindLog:   loadfmt.ReadLog,
	loadfmt.KindStats: loadfmt.ReadStats,
}

// A Session accumulates the results of one benchmark batch.
// It is not safe for concurrent use.
type Session struct {
	log   logrus.FieldLogger
	store Store

	servers     map[string]bool
	rounds      map[int]bool
	concurrency map[int]bool
}

// NewSession returns an empty Session that logs to log. If log is
// nil, the standard logrus logger is used.
func NewSession(log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		log:         log,
		servers:     make(map[string]bool),
		rounds:      make(map[int]bool),
		concurrency: make(map[int]bool),
	}
}

// Process reads every file of src in ascending name order. It stops
// at the first file that cannot be read or parsed and returns its
// error; samples recorded up to that point are kept.
func (s *Session) Process(ctx context.Context, src loadfmt.Source) error {
	names, err := src.List(ctx)
	if err != nil {
		return errors.Wrap(err, "listing input files")
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.processFile(ctx, src, name); err != nil {
			return err
		}
	}
	return nil
}

// ProcessDir is shorthand for Process on a local directory.
func (s *Session) ProcessDir(dir string) error {
	return s.Process(context.Background(), loadfmt.Dir(dir))
}

func (s *Session) processFile(ctx context.Context, src loadfmt.Source, name string) error {
	s.log.WithField("file", name).Debug("processing file")

	n, err := s.collect(name)
	if err != nil {
		return err
	}
	kind, err := loadfmt.ParseKind(n.Kind)
	if err != nil {
		s.log.WithField("file", name).Error("invalid file")
		return errors.Wrapf(err, "file %q", name)
	}

	f, err := src.Open(ctx, name)
	if err != nil {
		return errors.Wrapf(err, "opening %q", name)
	}
	defer f.Close()

	before := s.store.Len()
	if err := readers[kind](f, name, n.Key, &s.store); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"file":        name,
		"server":      n.Server,
		"round":       n.Round,
		"concurrency": n.Concurrency,
		"kind":        kind,
		"samples":     s.store.Len() - before,
	}).Info("processed file")
	return nil
}

// collect parses a file name and registers its server, round and
// concurrency level.
func (s *Session) collect(name string) (loadfmt.Name, error) {
	n, err := loadfmt.ParseName(name)
	if err != nil {
		return n, err
	}
	s.servers[n.Server] = true
	s.rounds[n.Round] = true
	s.concurrency[n.Concurrency] = true
	return n, nil
}

// Store returns the session's samples.
func (s *Session) Store() *Store {
	return &s.store
}

// Servers returns the distinct server names seen, sorted.
func (s *Session) Servers() []string {
	out := make([]string, 0, len(s.servers))
	for k := range s.servers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Rounds returns the distinct rounds seen, sorted.
func (s *Session) Rounds() []int {
	return sortedInts(s.rounds)
}

// Concurrency returns the distinct concurrency levels seen, sorted.
func (s *Session) Concurrency() []int {
	return sortedInts(s.concurrency)
}

func sortedInts(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
