// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loadunit decomposes measurement tokens such as "12.3ms"
// or "512MiB" into a magnitude and a unit, and normalizes latencies
// to milliseconds.
package loadunit

import (
	"strconv"
	"unicode"

	"github.com/pkg/errors"
)

// ErrNoQuantity is returned by Parse when a token does not start
// with a number immediately followed by a unit.
var ErrNoQuantity = errors.New("not a <number><unit> quantity")

// A Quantity is a numeric magnitude with a unit suffix.
type Quantity struct {
	Value float64
	Unit  string
}

func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + q.Unit
}

// Split decomposes tok into its leading run of digits and decimal
// points and the run of letters that immediately follows it.
// Anything after the unit is ignored. ok is false if either part is
// empty.
func Split(tok string) (num, unit string, ok bool) {
	end := 0
	for end < len(tok) && (tok[end] == '.' || '0' <= tok[end] && tok[end] <= '9') {
		end++
	}
	if end == 0 {
		return "", "", false
	}
	num = tok[:end]

	rest := tok[end:]
	uend := len(rest)
	for i, r := range rest {
		if !unicode.IsLetter(r) {
			uend = i
			break
		}
	}
	if uend == 0 {
		return "", "", false
	}
	return num, rest[:uend], true
}

// Parse splits tok with Split and converts the numeric part.
func Parse(tok string) (Quantity, error) {
	num, unit, ok := Split(tok)
	if !ok {
		return Quantity{}, errors.Wrapf(ErrNoQuantity, "%q", tok)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Quantity{}, errors.Wrapf(ErrNoQuantity, "%q: bad number %q", tok, num)
	}
	return Quantity{v, unit}, nil
}
