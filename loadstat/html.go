// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadstat

import (
	"io"
	"strconv"

	"github.com/google/safehtml/template"
)

const htmlReport = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Load benchmark results</title>
</head>
<body>
{{- range $m := .}}
<h2>{{$m.Feature}} <small>{{$m.Unit}}</small></h2>
<table class="loadstat">
<tr><th>server</th>{{range $m.Concurrency}}<th>{{.}}</th>{{end}}</tr>
{{- range $i, $server := $m.Servers}}
<tr><td>{{$server}}</td>{{range index $m.Values $i}}<td>{{value .}}</td>{{end}}</tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"value": formatHTMLValue,
}).Parse(htmlReport))

func formatHTMLValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatHTML writes the matrices as an HTML page with one table per
// feature.
func FormatHTML(w io.Writer, ms []*Matrix) error {
	return htmlTemplate.Execute(w, ms)
}
