// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Loadstat summarizes the results of a WSGI server load benchmark.
//
// Usage:
//
//	loadstat -i DIR|gs://bucket/prefix -o OUTDIR [-e png] [--variant complete,small]
//	         [--small-max 1000] [--table text|csv|html|json|none] [--features LIST]
//	         [--credentials FILE] [--width 16cm] [--height 10cm] [--debug | -v]
//
// The input holds one wrk log and one docker stats capture per server,
// round and concurrency level, named
//
//	<server>.<round>.<concurrency>.log
//	<server>.<round>.<concurrency>.stats
//
// Loadstat averages every feature (requests, latency, CPU, memory and
// the four socket error counters) per server and concurrency level
// across all rounds. It writes a line chart of each feature to the
// output directory as <FEATURE>-complete.<ext>, covering every
// concurrency level, and <FEATURE>-small.<ext>, covering the levels up
// to --small-max. The averaged matrices are also printed to stdout in
// the format chosen by --table.
//
// Every flag can also be set with an environment variable named
// LOADSTAT_ followed by the flag name in upper case, with dashes
// replaced by underscores.
//
// Loadstat exits with status 1 if any input file cannot be parsed
// and 2 on a usage error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wsgibench/loadstat/loadchart"
	"github.com/wsgibench/loadstat/loadfmt"
	"github.com/wsgibench/loadstat/loadstat"
	"google.golang.org/api/option"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, code, ok := parseFlags(args, stderr)
	if !ok {
		return code
	}
	log := newLogger(cfg, stderr)
	if err := summarize(context.Background(), cfg, log, stdout); err != nil {
		fmt.Fprintf(stderr, "loadstat: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(cfg *config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	switch {
	case cfg.debug:
		log.SetLevel(logrus.DebugLevel)
	case cfg.verbose:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func summarize(ctx context.Context, cfg *config, log *logrus.Logger, stdout io.Writer) error {
	var opts []option.ClientOption
	if cfg.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.credentials))
	}
	src, err := loadfmt.OpenSource(ctx, cfg.input, opts...)
	if err != nil {
		return err
	}
	defer src.Close()

	s := loadstat.NewSession(log)
	if err := s.Process(ctx, src); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"servers":     len(s.Servers()),
		"rounds":      len(s.Rounds()),
		"concurrency": len(s.Concurrency()),
		"samples":     s.Store().Len(),
	}).Info("processed input")

	ms := make([]*loadstat.Matrix, 0, len(cfg.features))
	for _, f := range cfg.features {
		ms = append(ms, s.Matrix(f))
	}

	if err := exportCharts(cfg, log, ms); err != nil {
		return err
	}
	return printTable(stdout, cfg.table, ms)
}

func exportCharts(cfg *config, log *logrus.Logger, ms []*loadstat.Matrix) error {
	if err := os.MkdirAll(cfg.output, 0777); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	opts := loadchart.Options{Width: cfg.width, Height: cfg.height, Format: cfg.format}
	for _, m := range ms {
		for _, v := range cfg.variants {
			path, err := loadchart.Export(cfg.output, m, v, opts)
			if errors.Is(err, loadchart.ErrEmpty) {
				log.WithFields(logrus.Fields{"feature": m.Feature, "variant": v.Name}).Warn("no data to chart")
				continue
			}
			if err != nil {
				return err
			}
			log.WithField("file", path).Info("exported chart")
		}
	}
	return nil
}

func printTable(w io.Writer, format string, ms []*loadstat.Matrix) error {
	switch format {
	case "text":
		return loadstat.FormatText(w, ms)
	case "csv":
		return loadstat.FormatCSV(w, ms)
	case "html":
		return loadstat.FormatHTML(w, ms)
	case "json":
		return loadstat.FormatJSON(w, ms)
	}
	return nil
}
