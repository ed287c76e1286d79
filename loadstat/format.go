// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadstat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// FormatText writes each matrix as an aligned text table headed by
// its feature and unit.
func FormatText(w io.Writer, ms []*Matrix) error {
	for i, m := range ms {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s [%s]\n", m.Feature, m.Unit); err != nil {
			return err
		}
		if len(m.Concurrency) == 0 {
			if _, err := io.WriteString(w, "no data\n"); err != nil {
				return err
			}
			continue
		}
		formats := []string{"%d"}
		for range m.Servers {
			formats = append(formats, "%.3f")
		}
		if err := table.Fprint(w, m.Table(), formats...); err != nil {
			return err
		}
	}
	return nil
}

// FormatCSV writes each matrix as a CSV block: a line with the
// feature name, a header of "server" followed by the concurrency
// levels, and one row per server. Blocks are separated by a blank
// line.
func FormatCSV(w io.Writer, ms []*Matrix) error {
	for i, m := range ms {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		cw := csv.NewWriter(w)
		cw.Write([]string{m.Feature.String()})
		header := []string{"server"}
		for _, c := range m.Concurrency {
			header = append(header, strconv.Itoa(c))
		}
		cw.Write(header)
		for r, server := range m.Servers {
			row := []string{server}
			for _, v := range m.Values[r] {
				row = append(row, formatValue(v))
			}
			cw.Write(row)
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
	}
	return nil
}

// formatValue formats v with the fewest digits that represent it
// exactly, for consumption by other programs.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
