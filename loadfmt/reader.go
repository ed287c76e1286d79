// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loadfmt reads the output files of an HTTP load benchmark:
// load generator reports ("log" files) and container resource usage
// snapshots ("stats" files).
//
// Files are named <server>.<round>.<concurrency>.<kind>. The readers
// in this package turn each recognized line of a file into one or
// more samples and hand them to a Recorder together with the file's
// Key.
package loadfmt

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// A Recorder receives the samples read from a file.
type Recorder interface {
	Record(f Feature, key Key, value float64)
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(f Feature, key Key, value float64)

func (fn RecorderFunc) Record(f Feature, key Key, value float64) {
	fn(f, key, value)
}

// lineReader tracks the position in an input file for error
// reporting.
type lineReader struct {
	s        *bufio.Scanner
	fileName string
	line     int
}

func newLineReader(r io.Reader, fileName string) *lineReader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &lineReader{s: bufio.NewScanner(r), fileName: fileName}
}

// next advances to the next line and returns its whitespace
// separated fields.
func (r *lineReader) next() (fields []string, ok bool) {
	if !r.s.Scan() {
		return nil, false
	}
	r.line++
	return strings.Fields(r.s.Text()), true
}

// text returns the current line.
func (r *lineReader) text() string {
	return r.s.Text()
}

func (r *lineReader) err() error {
	if err := r.s.Err(); err != nil {
		return errors.Wrapf(err, "%s:%d", r.fileName, r.line)
	}
	return nil
}

// syntaxError returns a *SyntaxError at the current line.
func (r *lineReader) syntaxError(kind error, msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg, kind}
}
