package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/status"
	"github.com/sweeney/peer-beacon/internal/telemetry"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"kmh": func(mps float32) string {
		return fmt.Sprintf("%.2f", telemetry.KMH(mps))
	},
	"kmh64": func(mps *float64) string {
		if mps == nil {
			return ""
		}
		return fmt.Sprintf("%.2f", *mps*3.6)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Peer Beacon</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.on { color: green; font-weight: bold; }
.off { color: #888; }
.peer { color: orange; font-weight: bold; }
</style>
</head>
<body>
<h1>Peer Beacon</h1>

<h2>State</h2>
<table>
<tr><th>Device</th><td class="{{if eq .State.String "Off"}}off{{else if eq .State.String "On"}}on{{else}}peer{{end}}">{{.State}}</td></tr>
<tr><th>Peak Speed</th><td>{{kmh .PeakSpeedMPS}} km/h</td></tr>
{{if .LastFix}}<tr><th>Last Fix</th><td>{{printf "%.5f" .LastFix.Lat}}, {{printf "%.5f" .LastFix.Lon}}{{if .LastFix.SpeedMPS}} at {{kmh64 .LastFix.SpeedMPS}} km/h{{end}}</td></tr>
<tr><th>Fix Time</th><td>{{.FixTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>{{end}}
</table>

<h2>Trigger Counts</h2>
<table>
{{range .TriggerRows}}<tr><th>{{.Name}}</th><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>System</h2>
<table>
<tr><th>Role</th><td>{{.Config.Role}}</td></tr>
<tr><th>Name</th><td>{{.Config.Name}}</td></tr>
{{if .Config.ReportURL}}<tr><th>Report URL</th><td>{{.Config.ReportURL}}</td></tr>{{end}}
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

type triggerRow struct {
	Name  string
	Count uint64
}

func renderHTML(w io.Writer, snap status.Snapshot) {
	rows := make([]triggerRow, 0, len(bus.Triggers))
	for _, trig := range bus.Triggers {
		rows = append(rows, triggerRow{Name: trig.String(), Count: snap.Counts[trig]})
	}
	// Snapshot has an Uptime() method but the template wants plain fields.
	data := struct {
		status.Snapshot
		Uptime      time.Duration
		TriggerRows []triggerRow
	}{
		Snapshot:    snap,
		Uptime:      snap.Uptime(),
		TriggerRows: rows,
	}
	indexTmpl.Execute(w, data)
}
