// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadfmt

import (
	"strings"

	"github.com/pkg/errors"
)

// A Feature is a kind of measurement extracted from benchmark output.
type Feature int

const (
	Requests Feature = iota
	Latency
	CPU
	Memory
	ConnectionErrors
	ReadErrors
	WriteErrors
	TimeoutErrors

	numFeatures
)

// Features lists every Feature in declaration order.
var Features = []Feature{
	Requests,
	Latency,
	CPU,
	Memory,
	ConnectionErrors,
	ReadErrors,
	WriteErrors,
	TimeoutErrors,
}

var featureNames = [numFeatures]string{
	Requests:         "REQUESTS",
	Latency:          "LATENCY",
	CPU:              "CPU",
	Memory:           "MEMORY",
	ConnectionErrors: "CONNECTION_ERRORS",
	ReadErrors:       "READ_ERRORS",
	WriteErrors:      "WRITE_ERRORS",
	TimeoutErrors:    "TIMEOUT_ERRORS",
}

var featureUnits = [numFeatures]string{
	Requests:         "Number",
	Latency:          "Milliseconds",
	CPU:              "% - 2 cores",
	Memory:           "MB",
	ConnectionErrors: "Number",
	ReadErrors:       "Number",
	WriteErrors:      "Number",
	TimeoutErrors:    "Number",
}

func (f Feature) String() string {
	if f < 0 || f >= numFeatures {
		return "Feature(" + itoa(int(f)) + ")"
	}
	return featureNames[f]
}

// Unit returns the display unit of values recorded for f.
func (f Feature) Unit() string {
	if f < 0 || f >= numFeatures {
		return ""
	}
	return featureUnits[f]
}

// ParseFeature returns the Feature named s, ignoring case.
func ParseFeature(s string) (Feature, error) {
	for _, f := range Features {
		if strings.EqualFold(featureNames[f], s) {
			return f, nil
		}
	}
	return 0, errors.Errorf("unknown feature %q", s)
}
