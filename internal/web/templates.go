// ===== internal/web/templates.go =====
package web

import (
	"ulagen/pkg/models"
)

// PageData holds data for the form page template
type PageData struct {
	MAC    string
	Result *models.Result
	Error  string
	Status models.RegistryStatus
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>ulagen - ULA prefix generator</title>
<style>
body { font-family: monospace; margin: 2em; }
input[type=text] { width: 24em; }
.error { color: #a00; }
.result td { padding: 0 1em 0 0; }
.muted { color: #888; }
</style>
</head>
<body>
<h1>ULA prefix generator</h1>
<form method="get" action="/">
<p>MAC address: <input type="text" name="mac" value="{{.MAC}}" placeholder="00:0d:3a:00:00:01"></p>
<p>NTP timestamp: <input type="text" name="time" placeholder="leave empty to use the clock"></p>
<p><input type="submit" value="Generate"></p>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Result}}
<table class="result">
<tr><td>ULA prefix</td><td><b>{{.Result.ULA}}</b></td></tr>
<tr><td>MAC</td><td>{{.Result.MAC}}</td></tr>
<tr><td>Vendor</td><td>{{.Result.Vendor}}</td></tr>
<tr><td>Timestamp</td><td>{{.Result.Timestamp}}</td></tr>
<tr><td>EUI-64</td><td>{{.Result.EUI64}}</td></tr>
</table>
{{end}}
<p class="muted">Registry: {{.Status.Entries}} OUI entries from {{.Status.File}}</p>
</body>
</html>
`
