package web

import "html/template"

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>{{.Title}}</title>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<style>
		body { font-family: Arial, sans-serif; max-width: 760px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		input[type=text] { width: 100%; padding: 8px; box-sizing: border-box; font-family: monospace; }
		.error { color: #8a1c1c; background-color: #fde8e8; padding: 10px; border-radius: 4px; }
		.success { color: #1c6b2a; background-color: #e6f6ea; padding: 10px; border-radius: 4px; }
		table { border-collapse: collapse; margin-top: 10px; }
		th, td { padding: 6px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
		.caption { color: #777; font-size: small; }
		svg { max-width: 100%; height: auto; }
	</style>
</head>
<body>
	<h1>🔬 Protein Sequence Analyzer</h1>
	<p>Enter a protein sequence to analyze its properties.</p>
	<form method="post" action="/">
		<label for="sequence">Enter Protein Sequence:</label>
		<input type="text" id="sequence" name="sequence" maxlength="{{.MaxChars}}" value="{{.Sequence}}" autofocus>
	</form>
	{{- if .Error}}
	<p class="error">{{.Error}}</p>
	{{- else if .Rows}}
	<p class="success">✅ Analysis Complete</p>
	<h3>Results:</h3>
	<table>
		{{- range .Rows}}
		<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
		{{- end}}
	</table>
	<table>
		<tr><th>Residue</th><th>Count</th><th>%</th></tr>
		{{- range .Composition}}
		<tr><td>{{.Residue}}</td><td>{{.Count}}</td><td>{{.Percent}}</td></tr>
		{{- end}}
	</table>
	{{- if .Chart}}
	<h3>Amino Acid Composition Graph:</h3>
	<div>{{.Chart}}</div>
	{{- end}}
	<hr>
	<p class="caption">Made with Go and gonum/plot</p>
	{{- end}}
</body>
</html>
`))
