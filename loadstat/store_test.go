// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadstat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wsgibench/loadstat/loadfmt"
)

func TestStore(t *testing.T) {
	var s Store
	if got := s.Values(loadfmt.Latency, "a", 10); len(got) != 0 {
		t.Errorf("empty store: Values = %v, want empty", got)
	}

	s.Record(loadfmt.Latency, loadfmt.Key{Server: "a", Round: 2, Concurrency: 10}, 3)
	s.Record(loadfmt.Latency, loadfmt.Key{Server: "a", Round: 1, Concurrency: 10}, 1)
	s.Record(loadfmt.Latency, loadfmt.Key{Server: "a", Round: 1, Concurrency: 10}, 2)
	s.Record(loadfmt.Latency, loadfmt.Key{Server: "a", Round: 1, Concurrency: 20}, 9)
	s.Record(loadfmt.Requests, loadfmt.Key{Server: "a", Round: 1, Concurrency: 10}, 100)
	s.Record(loadfmt.Latency, loadfmt.Key{Server: "b", Round: 1, Concurrency: 10}, 7)

	if got, want := s.Len(), 6; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, s.Values(loadfmt.Latency, "a", 10)); diff != "" {
		t.Errorf("Values(LATENCY, a, 10) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, s.Rounds(loadfmt.Latency, "a", 10)); diff != "" {
		t.Errorf("Rounds(LATENCY, a, 10) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{100}, s.Values(loadfmt.Requests, "a", 10)); diff != "" {
		t.Errorf("Values(REQUESTS, a, 10) mismatch (-want +got):\n%s", diff)
	}

	// Missing keys at every level.
	for _, tc := range []struct {
		f      loadfmt.Feature
		server string
		conc   int
	}{
		{loadfmt.CPU, "a", 10},
		{loadfmt.Latency, "c", 10},
		{loadfmt.Latency, "a", 30},
		{loadfmt.Requests, "b", 10},
	} {
		if got := s.Values(tc.f, tc.server, tc.conc); len(got) != 0 {
			t.Errorf("Values(%v, %s, %d) = %v, want empty", tc.f, tc.server, tc.conc, got)
		}
		if got := s.Rounds(tc.f, tc.server, tc.conc); len(got) != 0 {
			t.Errorf("Rounds(%v, %s, %d) = %v, want empty", tc.f, tc.server, tc.conc, got)
		}
	}
}

func TestStoreKeepsDuplicates(t *testing.T) {
	var s Store
	key := loadfmt.Key{Server: "a", Round: 1, Concurrency: 10}
	for i := 0; i < 3; i++ {
		s.Record(loadfmt.CPU, key, 5)
	}
	if diff := cmp.Diff([]float64{5, 5, 5}, s.Values(loadfmt.CPU, "a", 10)); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}
