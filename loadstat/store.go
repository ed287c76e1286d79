// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadstat

import (
	"sort"

	"github.com/wsgibench/loadstat/loadfmt"
)

// A Store holds every sample recorded during a run, grouped by
// feature, server, concurrency level and round. Levels are created
// on first use. A Store is not safe for concurrent use.
//
// The zero Store is empty and ready to use.
type Store struct {
	m map[loadfmt.Feature]map[string]map[int]map[int][]float64
	n int
}

// Record appends value to the samples of f for key. It implements
// loadfmt.Recorder.
func (s *Store) Record(f loadfmt.Feature, key loadfmt.Key, value float64) {
	if s.m == nil {
		s.m = make(map[loadfmt.Feature]map[string]map[int]map[int][]float64)
	}
	servers := s.m[f]
	if servers == nil {
		servers = make(map[string]map[int]map[int][]float64)
		s.m[f] = servers
	}
	concs := servers[key.Server]
	if concs == nil {
		concs = make(map[int]map[int][]float64)
		servers[key.Server] = concs
	}
	rounds := concs[key.Concurrency]
	if rounds == nil {
		rounds = make(map[int][]float64)
		concs[key.Concurrency] = rounds
	}
	rounds[key.Round] = append(rounds[key.Round], value)
	s.n++
}

func (s *Store) rounds(f loadfmt.Feature, server string, concurrency int) map[int][]float64 {
	// Indexing nil maps is fine.
	return s.m[f][server][concurrency]
}

// Rounds returns the rounds with samples of f for server at the
// given concurrency level, in ascending order.
func (s *Store) Rounds(f loadfmt.Feature, server string, concurrency int) []int {
	rounds := s.rounds(f, server, concurrency)
	out := make([]int, 0, len(rounds))
	for r := range rounds {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}

// Values returns all samples of f for server at the given
// concurrency level, across every round. Rounds are concatenated in
// ascending order. If nothing was recorded, Values returns an empty
// slice.
func (s *Store) Values(f loadfmt.Feature, server string, concurrency int) []float64 {
	rounds := s.rounds(f, server, concurrency)
	var out []float64
	for _, r := range s.Rounds(f, server, concurrency) {
		out = append(out, rounds[r]...)
	}
	return out
}

// Len returns the total number of recorded samples.
func (s *Store) Len() int {
	return s.n
}
