// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadfmt

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wsgibench/loadstat/loadunit"
)

// StatsColumns is the number of whitespace separated fields in a
// container stats data row:
//
//	ID NAME CPU% MEM / LIMIT MEM% NETIN / NETOUT BLOCKIN / BLOCKOUT PIDS
const StatsColumns = 14

const (
	statsCPUColumn    = 2
	statsMemoryColumn = 3
)

// IsStatsRow reports whether fields form a container stats data
// row. Header rows, whose first field contains "CONTAINER", and rows
// with any other number of fields are not data rows.
func IsStatsRow(fields []string) bool {
	return len(fields) == StatsColumns && !strings.Contains(fields[0], "CONTAINER")
}

// ReadStats reads container resource usage snapshots from r and
// records one CPU and one Memory sample per data row under key.
// Lines that are not data rows are skipped.
//
// Memory is recorded as the bare magnitude of the usage field; its
// unit is not applied, so "512MiB" and "512GiB" both record 512.
func ReadStats(r io.Reader, fileName string, key Key, rec Recorder) error {
	lr := newLineReader(r, fileName)
	for {
		fields, ok := lr.next()
		if !ok {
			break
		}
		if !IsStatsRow(fields) {
			continue
		}

		cpuField := fields[statsCPUColumn]
		cpu, err := strconv.ParseFloat(strings.TrimSuffix(cpuField, "%"), 64)
		if err != nil || math.IsInf(cpu, 0) || math.IsNaN(cpu) {
			return lr.syntaxError(ErrMalformedStatsRow, "cpu usage "+strconv.Quote(cpuField)+" is not a percentage")
		}
		mem, err := loadunit.Parse(fields[statsMemoryColumn])
		if err != nil {
			return lr.syntaxError(ErrMalformedStatsRow, "memory usage: "+err.Error())
		}

		rec.Record(CPU, key, cpu)
		rec.Record(Memory, key, mem.Value)
	}
	return lr.err()
}
