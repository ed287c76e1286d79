// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadfmt

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/wsgibench/loadstat/loadunit"
)

// Errors reported while reading benchmark output. Use errors.Is to
// test for them; they are usually wrapped in a *SyntaxError.
var (
	ErrMalformedFilename       = errors.New("malformed file name")
	ErrUnknownFileKind         = errors.New("unknown file kind")
	ErrMalformedLatencyToken   = errors.New("malformed latency token")
	ErrUnrecognizedUnit        = loadunit.ErrUnrecognizedUnit
	ErrMalformedRequestsToken  = errors.New("malformed requests token")
	ErrInsufficientErrorFields = errors.New("insufficient socket error fields")
	ErrMalformedStatsRow       = errors.New("malformed stats row")
)

// A SyntaxError reports a line of a benchmark output file that
// could not be parsed.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
	Err      error // one of the Err* values above
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
