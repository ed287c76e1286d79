// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadfmt

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/wsgibench/loadstat/loadunit"
)

// socketErrorFeatures are the features recorded from the digit runs
// of a Socket line, in order.
var socketErrorFeatures = [...]Feature{ConnectionErrors, ReadErrors, WriteErrors, TimeoutErrors}

// ReadLog reads a load generator report from r and records its
// samples under key. fileName is used in error messages only.
//
// Three kinds of line are recognized by their first field:
//
//	Latency 12.3ms ...            one Latency sample, in milliseconds
//	Requests/sec: 1234.5          one Requests sample (any field containing "Requests")
//	Socket errors: connect 1, read 2, write 3, timeout 4
//
// For Socket lines the first four runs of digits anywhere in the
// line are the connection, read, write and timeout error counts.
// All other lines are ignored. ReadLog stops at the first line it
// cannot parse and returns a *SyntaxError.
func ReadLog(r io.Reader, fileName string, key Key, rec Recorder) error {
	lr := newLineReader(r, fileName)
	for {
		fields, ok := lr.next()
		if !ok {
			break
		}
		if len(fields) == 0 {
			continue
		}
		switch {
		case fields[0] == "Latency":
			v, err := parseLatency(lr, fields)
			if err != nil {
				return err
			}
			rec.Record(Latency, key, v)
		case strings.Contains(fields[0], "Requests"):
			v, err := parseRequests(lr, fields)
			if err != nil {
				return err
			}
			rec.Record(Requests, key, v)
		case fields[0] == "Socket":
			runs := digitRuns(lr.text(), len(socketErrorFeatures))
			if len(runs) < len(socketErrorFeatures) {
				return lr.syntaxError(ErrInsufficientErrorFields,
					"socket errors: found "+strconv.Itoa(len(runs))+" counts, want 4")
			}
			// Convert everything before recording so a bad line
			// records nothing.
			var counts [len(socketErrorFeatures)]float64
			for i, run := range runs {
				v, err := strconv.ParseFloat(run, 64)
				if err != nil {
					return lr.syntaxError(ErrInsufficientErrorFields, "socket errors: "+err.Error())
				}
				counts[i] = v
			}
			for i, f := range socketErrorFeatures {
				rec.Record(f, key, counts[i])
			}
		}
	}
	return lr.err()
}

func parseLatency(lr *lineReader, fields []string) (float64, error) {
	if len(fields) < 2 {
		return 0, lr.syntaxError(ErrMalformedLatencyToken, "latency line has no value")
	}
	v, err := loadunit.ParseMillis(fields[1])
	switch {
	case errors.Is(err, loadunit.ErrUnrecognizedUnit):
		return 0, lr.syntaxError(ErrUnrecognizedUnit, err.Error())
	case err != nil:
		return 0, lr.syntaxError(ErrMalformedLatencyToken, err.Error())
	}
	return v, nil
}

func parseRequests(lr *lineReader, fields []string) (float64, error) {
	if len(fields) < 2 {
		return 0, lr.syntaxError(ErrMalformedRequestsToken, fields[0]+" line has no value")
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, lr.syntaxError(ErrMalformedRequestsToken, "requests value "+strconv.Quote(fields[1])+" is not a number")
	}
	return v, nil
}

// digitRuns returns up to max maximal runs of ASCII digits in s,
// left to right.
func digitRuns(s string, max int) []string {
	var runs []string
	for i := 0; i < len(s) && len(runs) < max; {
		if !isDigit(s[i]) {
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		runs = append(runs, s[i:j])
		i = j
	}
	return runs
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
