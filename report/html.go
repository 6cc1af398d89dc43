package report

import (
	"html/template"
	"io"
	"strings"

	"protein_analyzer_go/analyzer"
)

var htmlReport = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Protein Sequence Report</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		pre { white-space: pre-wrap; word-break: break-all; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>Protein Sequence Report</h1>
	<pre>{{.Sequence}}</pre>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
		{{- range .Rows}}
		<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
		{{- end}}
	</table>
	<h2>Amino Acid Composition</h2>
	<table>
		<tr><th>Residue</th><th>Count</th><th>%</th></tr>
		{{- range .Composition}}
		<tr><td>{{.Residue}}</td><td>{{.Count}}</td><td>{{.Percent}}</td></tr>
		{{- end}}
	</table>
	<div>{{.Chart}}</div>
</body>
</html>
`))

// WriteHTML writes a standalone HTML report with the composition chart
// embedded. svg is trusted output of the chart package.
func WriteHTML(w io.Writer, seq string, r *analyzer.Result, svg string) error {
	return htmlReport.Execute(w, struct {
		Sequence    string
		Rows        []Row
		Composition []CompositionRow
		Chart       template.HTML
	}{
		Sequence:    strings.ToUpper(seq),
		Rows:        Rows(r),
		Composition: CompositionRows(r),
		Chart:       template.HTML(svg),
	})
}
