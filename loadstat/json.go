// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadstat

import (
	"encoding/json"
	"io"
	"strconv"
)

// PerfDataVersion is the version written in PerfData.Version.
const PerfDataVersion = "v1"

// DataItem is one averaged matrix cell in the perfdash data format.
type DataItem struct {
	// Data maps a statistic name to its value. Only "Average" is
	// produced.
	Data   map[string]float64 `json:"data"`
	Unit   string             `json:"unit"`
	Labels map[string]string  `json:"labels,omitempty"`
}

// PerfData is a set of DataItems in the perfdash data format.
type PerfData struct {
	Version   string            `json:"version"`
	DataItems []DataItem        `json:"dataItems"`
	Labels    map[string]string `json:"labels,omitempty"`
}

// ToPerfData converts matrices to PerfData, with one item per cell
// labeled by feature, server and concurrency level.
func ToPerfData(ms []*Matrix) *PerfData {
	pd := &PerfData{Version: PerfDataVersion, DataItems: []DataItem{}}
	for _, m := range ms {
		for i, server := range m.Servers {
			for j, c := range m.Concurrency {
				pd.DataItems = append(pd.DataItems, DataItem{
					Data: map[string]float64{"Average": m.Values[i][j]},
					Unit: m.Unit,
					Labels: map[string]string{
						"Feature":     m.Feature.String(),
						"Server":      server,
						"Concurrency": strconv.Itoa(c),
					},
				})
			}
		}
	}
	return pd
}

// FormatJSON writes the matrices as indented perfdash JSON.
func FormatJSON(w io.Writer, ms []*Matrix) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToPerfData(ms))
}
