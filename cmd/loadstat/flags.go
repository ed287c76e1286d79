// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/wsgibench/loadstat/loadchart"
	"github.com/wsgibench/loadstat/loadfmt"
	"gonum.org/v1/plot/vg"
	"gopkg.in/alecthomas/kingpin.v2"
)

const help = `loadstat reads the wrk logs and docker stats captured by a WSGI load
benchmark, averages every feature per server and concurrency level, and
exports one line chart per feature.

Input files are named <server>.<round>.<concurrency>.<log|stats>. The input
is a local directory or a Cloud Storage location gs://bucket/prefix.

Every flag may also be set through the environment variable
LOADSTAT_<FLAG>, for example LOADSTAT_SMALL_MAX=500.`

// tables lists the values accepted by --table.
var tables = []string{"text", "csv", "html", "json", "none"}

// A config is the parsed command line.
type config struct {
	input       string
	output      string
	format      string
	variants    []loadchart.Variant
	table       string
	features    []loadfmt.Feature
	credentials string
	width       vg.Length
	height      vg.Length
	debug       bool
	verbose     bool
}

// listValue is a comma separated, repeatable flag.
type listValue []string

func (l *listValue) Set(value string) error {
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}

func (l *listValue) String() string {
	return strings.Join(*l, ",")
}

func (l *listValue) IsCumulative() bool {
	return true
}

func list(s kingpin.Settings) *[]string {
	target := new([]string)
	s.SetValue((*listValue)(target))
	return target
}

func envar(name string) string {
	return "LOADSTAT_" + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}

// parseFlags parses args into a config. If ok is false the program
// should exit immediately with the returned code: 0 after --help and
// 2 on a usage error.
func parseFlags(args []string, stderr io.Writer) (cfg *config, code int, ok bool) {
	app := kingpin.New("loadstat", help)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	exited, exitCode := false, 0
	app.Terminate(func(c int) {
		if !exited {
			exited, exitCode = true, c
		}
	})

	flag := func(name, help string) *kingpin.FlagClause {
		return app.Flag(name, help).Envar(envar(name))
	}
	var (
		input       = flag("input", "directory or gs://bucket/prefix holding the benchmark files").Short('i').Required().String()
		output      = flag("output", "directory the charts are written to").Short('o').Required().String()
		format      = flag("extension", "chart file format").Short('e').Default("png").Enum(loadchart.Formats...)
		variants    = list(flag("variant", "chart variants to export (complete, small)").Default("complete,small"))
		smallMax    = flag("small-max", "largest concurrency level shown by the small variant").Default("1000").Int()
		table       = flag("table", "format of the table printed to stdout").Default("text").Enum(tables...)
		features    = list(flag("features", "features to report (default all)"))
		credentials = flag("credentials", "service account key file for Cloud Storage").String()
		width       = flag("width", "chart width").Default("16cm").String()
		height      = flag("height", "chart height").Default("10cm").String()
		debug       = flag("debug", "log every processed file").Bool()
		verbose     = flag("verbose", "log progress").Short('v').Bool()
	)

	usageError := func(err error) (*config, int, bool) {
		app.Errorf("%s", err)
		return nil, 2, false
	}

	_, err := app.Parse(args)
	if exited {
		return nil, exitCode, false
	}
	if err != nil {
		return usageError(err)
	}

	cfg = &config{
		input:       *input,
		output:      *output,
		format:      *format,
		table:       *table,
		credentials: *credentials,
		debug:       *debug,
		verbose:     *verbose,
	}
	if *smallMax < 0 {
		return usageError(errors.Errorf("--small-max must not be negative, got %d", *smallMax))
	}
	for _, name := range *variants {
		v, err := loadchart.ParseVariant(name, *smallMax)
		if err != nil {
			return usageError(err)
		}
		cfg.variants = append(cfg.variants, v)
	}
	for _, name := range *features {
		f, err := loadfmt.ParseFeature(name)
		if err != nil {
			return usageError(err)
		}
		cfg.features = append(cfg.features, f)
	}
	if len(cfg.features) == 0 {
		cfg.features = loadfmt.Features
	}
	if cfg.width, err = vg.ParseLength(*width); err != nil {
		return usageError(errors.Wrap(err, "--width"))
	}
	if cfg.height, err = vg.ParseLength(*height); err != nil {
		return usageError(errors.Wrap(err, "--height"))
	}
	return cfg, 0, true
}
