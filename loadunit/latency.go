// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadunit

import "github.com/pkg/errors"

// ErrUnrecognizedUnit is returned when a latency unit has no
// millisecond conversion.
var ErrUnrecognizedUnit = errors.New("unrecognized unit")

// latencyFactors maps a latency unit to the factor that converts it
// to milliseconds.
var latencyFactors = map[string]float64{
	"us": 0.001,
	"ms": 1.0,
	"s":  1000.0,
}

// Millis converts a latency quantity to milliseconds.
// Only the units "us", "ms" and "s" are understood.
func Millis(q Quantity) (float64, error) {
	f, ok := latencyFactors[q.Unit]
	if !ok {
		return 0, errors.Wrapf(ErrUnrecognizedUnit, "latency unit %q", q.Unit)
	}
	return q.Value * f, nil
}

// ParseMillis parses a latency token such as "1500us" and returns
// its value in milliseconds.
func ParseMillis(tok string) (float64, error) {
	q, err := Parse(tok)
	if err != nil {
		return 0, err
	}
	return Millis(q)
}
