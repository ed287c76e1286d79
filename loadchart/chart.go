// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loadchart draws line charts of load benchmark matrices.
//
// Each chart has concurrency levels on the x axis, the feature's unit
// on the y axis, and one line per server.
package loadchart

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/wsgibench/loadstat/loadfmt"
	"github.com/wsgibench/loadstat/loadstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// XLabel is the label of the x axis of every chart.
const XLabel = "Simultaneous connections"

// ErrEmpty is returned when asked to chart a matrix with no servers
// or no concurrency levels.
var ErrEmpty = errors.New("no data to chart")

// Formats lists the file extensions charts can be written as.
var Formats = []string{"png", "pdf", "svg", "eps", "jpg", "tif"}

// IsFormat reports whether ext is one of Formats.
func IsFormat(ext string) bool {
	for _, f := range Formats {
		if f == ext {
			return true
		}
	}
	return false
}

// A Style is the look of one server's line.
type Style struct {
	Color  color.Color
	Shape  draw.GlyphDrawer
	Dashes []vg.Length
}

// StyleFor returns the style of the i'th server. Styles cycle through
// the plotutil palettes, so the same index always looks the same.
func StyleFor(i int) Style {
	return Style{
		Color:  plotutil.Color(i),
		Shape:  plotutil.Shape(i),
		Dashes: plotutil.Dashes(i),
	}
}

// New returns a line chart of m.
func New(m *loadstat.Matrix) (*plot.Plot, error) {
	if len(m.Servers) == 0 || len(m.Concurrency) == 0 {
		return nil, errors.Wrapf(ErrEmpty, "%s", m.Feature)
	}

	p := plot.New()
	p.Title.Text = m.Feature.String()
	p.X.Label.Text = XLabel
	p.Y.Label.Text = m.Unit
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, server := range m.Servers {
		xys := make(plotter.XYs, len(m.Concurrency))
		for j, c := range m.Concurrency {
			xys[j].X = float64(c)
			xys[j].Y = m.Values[i][j]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: server %s", m.Feature, server)
		}
		st := StyleFor(i)
		line.Color = st.Color
		line.Dashes = st.Dashes
		points.Color = st.Color
		points.Shape = st.Shape
		p.Add(line, points)
		p.Legend.Add(server, line, points)
	}
	return p, nil
}

// Options controls the size and encoding of a rendered chart.
type Options struct {
	Width, Height vg.Length
	// Format is one of Formats.
	Format string
}

// DefaultOptions returns 16cm by 10cm PNG options.
func DefaultOptions() Options {
	return Options{Width: 16 * vg.Centimeter, Height: 10 * vg.Centimeter, Format: "png"}
}

// Write renders the chart of m to w.
func Write(w io.Writer, m *loadstat.Matrix, opts Options) error {
	if !IsFormat(opts.Format) {
		return errors.Errorf("unsupported chart format %q", opts.Format)
	}
	p, err := New(m)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return errors.Wrapf(err, "%s", m.Feature)
	}
	_, err = wt.WriteTo(w)
	return err
}

// A Variant is a column selection applied to a matrix before it is
// charted. Its Suffix distinguishes the exported file.
type Variant struct {
	Name   string
	Suffix string
	Keep   func(concurrency int) bool
}

// Complete keeps every concurrency level.
func Complete() Variant {
	return Variant{Name: "complete", Suffix: "-complete", Keep: func(int) bool { return true }}
}

// Small keeps the concurrency levels up to and including max.
func Small(max int) Variant {
	return Variant{Name: "small", Suffix: "-small", Keep: func(c int) bool { return c <= max }}
}

// ParseVariant returns the variant called name. smallMax is the
// limit used by the "small" variant.
func ParseVariant(name string, smallMax int) (Variant, error) {
	switch strings.ToLower(name) {
	case "complete":
		return Complete(), nil
	case "small":
		return Small(smallMax), nil
	}
	return Variant{}, errors.Errorf("unknown chart variant %q", name)
}

// FileName returns the base name of the chart of f in variant v.
func FileName(f loadfmt.Feature, v Variant, format string) string {
	return f.String() + v.Suffix + "." + format
}

// Export writes the chart of m restricted by v into dir and returns
// the path of the new file. Nothing is written if the selection is
// empty. No file is left behind if rendering fails.
func Export(dir string, m *loadstat.Matrix, v Variant, opts Options) (string, error) {
	if !IsFormat(opts.Format) {
		return "", errors.Errorf("unsupported chart format %q", opts.Format)
	}
	sel := m.Select(v.Keep)
	if len(sel.Servers) == 0 || len(sel.Concurrency) == 0 {
		return "", errors.Wrapf(ErrEmpty, "%s%s", m.Feature, v.Suffix)
	}
	path := filepath.Join(dir, FileName(m.Feature, v, opts.Format))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Write(f, sel, opts); err != nil {
		f.Close()
		os.Remove(path)
		return "", errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
