// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadfmt

import (
	"errors"
	"testing"
)

func TestParseName(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Name
	}{
		{"gunicorn.1.100.log", Name{Key{"gunicorn", 1, 100}, "log"}},
		{"uwsgi.3.5000.stats", Name{Key{"uwsgi", 3, 5000}, "stats"}},
		{"Bjoern.10.1.log", Name{Key{"Bjoern", 10, 1}, "log"}},
		{"x.0.0.txt", Name{Key{"x", 0, 0}, "txt"}},
		{".1.2.log", Name{Key{"", 1, 2}, "log"}},
	} {
		got, err := ParseName(tc.name)
		if err != nil {
			t.Errorf("ParseName(%q): %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseName(%q) = %+v, want %+v", tc.name, got, tc.want)
		}
		if got.String() != tc.name {
			t.Errorf("ParseName(%q).String() = %q", tc.name, got.String())
		}
	}
}

func TestParseNameErrors(t *testing.T) {
	for _, name := range []string{
		"gunicorn.1.100",
		"gunicorn.1.100.log.bak",
		"gunicorn",
		"",
		"gunicorn.one.100.log",
		"gunicorn.1.many.log",
		"gunicorn.1.1e3.log",
		"gunicorn. 1.100.log",
	} {
		if _, err := ParseName(name); !errors.Is(err, ErrMalformedFilename) {
			t.Errorf("ParseName(%q): got %v, want ErrMalformedFilename", name, err)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"log", "stats"} {
		k, err := ParseKind(s)
		if err != nil || string(k) != s {
			t.Errorf("ParseKind(%q) = %q, %v", s, k, err)
		}
	}
	for _, s := range []string{"txt", "LOG", ""} {
		if _, err := ParseKind(s); !errors.Is(err, ErrUnknownFileKind) {
			t.Errorf("ParseKind(%q): got %v, want ErrUnknownFileKind", s, err)
		}
	}
}

func TestFeature(t *testing.T) {
	if len(Features) != int(numFeatures) {
		t.Fatalf("Features has %d entries, want %d", len(Features), numFeatures)
	}
	for _, f := range Features {
		g, err := ParseFeature(f.String())
		if err != nil || g != f {
			t.Errorf("ParseFeature(%q) = %v, %v", f, g, err)
		}
		if f.Unit() == "" {
			t.Errorf("%v has no unit", f)
		}
	}
	if f, err := ParseFeature("latency"); err != nil || f != Latency {
		t.Errorf("ParseFeature(latency) = %v, %v", f, err)
	}
	if _, err := ParseFeature("THROUGHPUT"); err == nil {
		t.Errorf("ParseFeature(THROUGHPUT) succeeded")
	}
	if got := Feature(42).String(); got != "Feature(42)" {
		t.Errorf("Feature(42).String() = %q", got)
	}
	if got := CPU.Unit(); got != "% - 2 cores" {
		t.Errorf("CPU.Unit() = %q", got)
	}
}
