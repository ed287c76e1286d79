// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadstat

import (
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/wsgibench/loadstat/loadfmt"
)

// A Matrix holds the averaged values of one feature, with one row
// per server and one column per concurrency level.
type Matrix struct {
	Feature loadfmt.Feature
	Unit    string

	// Servers and Concurrency label the rows and columns. Both
	// are sorted in ascending order.
	Servers     []string
	Concurrency []int

	// Values[i][j] is the mean of every sample for Servers[i] at
	// Concurrency[j]. It is 0 if there were no samples.
	Values [][]float64
}

// Mean returns the arithmetic mean of xs, or 0 if xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stats.Sample{Xs: xs}.Mean()
}

// Matrix averages the samples of f into a Matrix covering every
// server and concurrency level seen by the session. The result is
// built fresh on each call.
func (s *Session) Matrix(f loadfmt.Feature) *Matrix {
	m := &Matrix{
		Feature:     f,
		Unit:        f.Unit(),
		Servers:     s.Servers(),
		Concurrency: s.Concurrency(),
	}
	m.Values = make([][]float64, len(m.Servers))
	for i, server := range m.Servers {
		row := make([]float64, len(m.Concurrency))
		for j, c := range m.Concurrency {
			row[j] = Mean(s.store.Values(f, server, c))
		}
		m.Values[i] = row
	}
	return m
}

// Matrices returns the Matrix of every feature, in the order of
// loadfmt.Features.
func (s *Session) Matrices() []*Matrix {
	ms := make([]*Matrix, 0, len(loadfmt.Features))
	for _, f := range loadfmt.Features {
		ms = append(ms, s.Matrix(f))
	}
	return ms
}

func (m *Matrix) serverIndex(server string) int {
	for i, s := range m.Servers {
		if s == server {
			return i
		}
	}
	return -1
}

// At returns the value for server at concurrency level c.
// ok is false if m has no such row or column.
func (m *Matrix) At(server string, c int) (v float64, ok bool) {
	i := m.serverIndex(server)
	if i < 0 {
		return 0, false
	}
	for j, mc := range m.Concurrency {
		if mc == c {
			return m.Values[i][j], true
		}
	}
	return 0, false
}

// Series returns the row of server, indexed like m.Concurrency, or
// nil if m has no such row.
func (m *Matrix) Series(server string) []float64 {
	i := m.serverIndex(server)
	if i < 0 {
		return nil
	}
	return m.Values[i]
}

// Select returns a copy of m restricted to the concurrency levels
// for which keep returns true. Values are copied, not recomputed.
func (m *Matrix) Select(keep func(concurrency int) bool) *Matrix {
	var cols []int
	out := &Matrix{Feature: m.Feature, Unit: m.Unit, Servers: append([]string(nil), m.Servers...)}
	for j, c := range m.Concurrency {
		if keep(c) {
			cols = append(cols, j)
			out.Concurrency = append(out.Concurrency, c)
		}
	}
	out.Values = make([][]float64, len(m.Values))
	for i, row := range m.Values {
		sel := make([]float64, len(cols))
		for k, j := range cols {
			sel[k] = row[j]
		}
		out.Values[i] = sel
	}
	return out
}

// Table returns m as a table with a "concurrency" column followed by
// one column per server.
func (m *Matrix) Table() *table.Table {
	// Builder.Add treats a nil slice as a column removal, so
	// always allocate.
	b := table.NewBuilder(nil)
	conc := make([]int, len(m.Concurrency))
	copy(conc, m.Concurrency)
	b.Add("concurrency", conc)
	for i, server := range m.Servers {
		row := make([]float64, len(m.Values[i]))
		copy(row, m.Values[i])
		b.Add(server, row)
	}
	return b.Done()
}

func (m *Matrix) String() string {
	return m.Feature.String() + " (" + m.Unit + ") " +
		strconv.Itoa(len(m.Servers)) + "x" + strconv.Itoa(len(m.Concurrency))
}
