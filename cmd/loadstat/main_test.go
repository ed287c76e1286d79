// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wsgibench/loadstat/loadfmt"
	"github.com/wsgibench/loadstat/loadstat"
)

type result struct {
	code           int
	stdout, stderr string
	files          []string
}

func runArgs(t *testing.T, args ...string) (out string, res result) {
	t.Helper()
	out = t.TempDir()
	var stdout, stderr bytes.Buffer
	res.code = run(append([]string{"-o", out}, args...), &stdout, &stderr)
	res.stdout, res.stderr = stdout.String(), stderr.String()
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		res.files = append(res.files, e.Name())
	}
	sort.Strings(res.files)
	return out, res
}

func chartNames(ext string, variants ...string) []string {
	var names []string
	for _, f := range loadfmt.Features {
		for _, v := range variants {
			names = append(names, f.String()+"-"+v+"."+ext)
		}
	}
	sort.Strings(names)
	return names
}

func TestRun(t *testing.T) {
	out, res := runArgs(t, "-i", filepath.Join("testdata", "run"), "-e", "svg", "--table", "csv")
	if res.code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", res.code, res.stderr)
	}

	want, err := os.ReadFile(filepath.Join("testdata", "run.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), res.stdout); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(chartNames("svg", "complete", "small"), res.files); diff != "" {
		t.Errorf("charts mismatch (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(filepath.Join(out, "LATENCY-small.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("LATENCY-small.svg is not an SVG")
	}
	if res.stderr != "" {
		t.Errorf("unexpected stderr output:\n%s", res.stderr)
	}
}

func TestRunSelection(t *testing.T) {
	_, res := runArgs(t, "-i", filepath.Join("testdata", "run"), "-e", "svg",
		"--features", "latency,Requests", "--variant", "small", "--table", "none")
	if res.code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", res.code, res.stderr)
	}
	want := []string{"LATENCY-small.svg", "REQUESTS-small.svg"}
	if diff := cmp.Diff(want, res.files); diff != "" {
		t.Errorf("charts mismatch (-want +got):\n%s", diff)
	}
	if res.stdout != "" {
		t.Errorf("--table none printed:\n%s", res.stdout)
	}
}

func TestRunSmallEmpty(t *testing.T) {
	_, res := runArgs(t, "-i", filepath.Join("testdata", "run"), "-e", "svg",
		"--features", "cpu", "--small-max", "5", "--table", "none")
	if res.code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", res.code, res.stderr)
	}
	if diff := cmp.Diff([]string{"CPU-complete.svg"}, res.files); diff != "" {
		t.Errorf("charts mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(res.stderr, `msg="no data to chart"`) || !strings.Contains(res.stderr, "variant=small") {
		t.Errorf("missing warning about the empty chart:\n%s", res.stderr)
	}
}

func TestRunEnv(t *testing.T) {
	t.Setenv("LOADSTAT_TABLE", "json")
	t.Setenv("LOADSTAT_FEATURES", "memory")
	t.Setenv("LOADSTAT_VARIANT", "complete")
	_, res := runArgs(t, "-i", filepath.Join("testdata", "run"), "-e", "svg")
	if res.code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", res.code, res.stderr)
	}
	var pd loadstat.PerfData
	if err := json.Unmarshal([]byte(res.stdout), &pd); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if len(pd.DataItems) != 2 {
		t.Fatalf("got %d data items, want 2", len(pd.DataItems))
	}
	if got := pd.DataItems[0].Data["Average"]; got != 25 {
		t.Errorf("MEMORY(meinheld, 10) = %v, want 25", got)
	}
	if diff := cmp.Diff([]string{"MEMORY-complete.svg"}, res.files); diff != "" {
		t.Errorf("charts mismatch (-want +got):\n%s", diff)
	}
}

func TestRunVerbose(t *testing.T) {
	_, res := runArgs(t, "-i", filepath.Join("testdata", "run"), "-e", "svg", "-v",
		"--features", "latency", "--variant", "complete", "--table", "none")
	if res.code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", res.code, res.stderr)
	}
	for _, want := range []string{
		`msg="processed file"`,
		`msg="processed input"`,
		"samples=",
		`msg="exported chart"`,
	} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("log missing %q:\n%s", want, res.stderr)
		}
	}
	if strings.Contains(res.stderr, `msg="processing file"`) {
		t.Errorf("debug message logged at info level:\n%s", res.stderr)
	}
}

func TestRunParseError(t *testing.T) {
	_, res := runArgs(t, "-i", filepath.Join("testdata", "bad"), "--table", "csv")
	if res.code != 1 {
		t.Errorf("exit %d, want 1", res.code)
	}
	if !strings.Contains(res.stderr, "meinheld.1.10.log:2:") {
		t.Errorf("error does not name the line:\n%s", res.stderr)
	}
	if res.stdout != "" {
		t.Errorf("table printed after a parse error:\n%s", res.stdout)
	}
	if len(res.files) != 0 {
		t.Errorf("charts written after a parse error: %v", res.files)
	}
}

func TestRunMissingInput(t *testing.T) {
	_, res := runArgs(t, "-i", filepath.Join("testdata", "missing"))
	if res.code != 1 {
		t.Errorf("exit %d, want 1", res.code)
	}
}

func TestRunUsage(t *testing.T) {
	in := filepath.Join("testdata", "run")
	for _, args := range [][]string{
		{},
		{"-i", in, "--table", "xml"},
		{"-i", in, "-e", "gif"},
		{"-i", in, "--variant", "tiny"},
		{"-i", in, "--features", "bandwidth"},
		{"-i", in, "--width", "wide"},
		{"-i", in, "--small-max", "-1"},
		{"-i", in, "extra"},
	} {
		_, res := runArgs(t, args...)
		if res.code != 2 {
			t.Errorf("%v: exit %d, want 2", args, res.code)
		}
		if !strings.Contains(res.stderr, "loadstat: error:") {
			t.Errorf("%v: no usage error on stderr:\n%s", args, res.stderr)
		}
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Errorf("exit %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "--small-max") {
		t.Errorf("help does not list flags:\n%s", stderr.String())
	}
}
