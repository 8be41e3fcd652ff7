package web

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/status"
	"github.com/sweeney/peer-beacon/internal/telemetry"
)

// StatusJSON is the JSON representation of the daemon status.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	State         string            `json:"state"`
	PeakSpeedKMH  string            `json:"peak_speed_kmh"`
	Fix           *FixJSON          `json:"fix,omitempty"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	StartTime     string            `json:"start_time"`
	Timestamp     string            `json:"timestamp"`
	Counts        map[string]uint64 `json:"trigger_counts"`
	Config        ConfigJSON        `json:"config"`
}

// FixJSON is the JSON representation of the last GPS fix.
type FixJSON struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	SpeedKMH string  `json:"speed_kmh,omitempty"`
	Time     string  `json:"time"`
}

// ConfigJSON is the JSON representation of the daemon config.
type ConfigJSON struct {
	Role      string `json:"role"`
	Name      string `json:"name"`
	ReportURL string `json:"report_url,omitempty"`
	HTTPAddr  string `json:"http_addr"`
}

func formatJSON(snap status.Snapshot) []byte {
	counts := make(map[string]uint64, len(snap.Counts))
	for _, trig := range bus.Triggers {
		if n, ok := snap.Counts[trig]; ok {
			counts[trig.String()] = n
		}
	}

	sj := StatusJSON{
		Status: StatusInner{
			State:         snap.State.String(),
			PeakSpeedKMH:  fmt.Sprintf("%.2f", telemetry.KMH(snap.PeakSpeedMPS)),
			UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
			StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
			Timestamp:     snap.Now.UTC().Format(time.RFC3339),
			Counts:        counts,
			Config: ConfigJSON{
				Role:      snap.Config.Role,
				Name:      snap.Config.Name,
				ReportURL: snap.Config.ReportURL,
				HTTPAddr:  snap.Config.HTTPAddr,
			},
		},
	}

	if snap.LastFix != nil {
		fix := &FixJSON{
			Lat:  snap.LastFix.Lat,
			Lon:  snap.LastFix.Lon,
			Time: snap.FixTime.UTC().Format(time.RFC3339),
		}
		if snap.LastFix.SpeedMPS != nil {
			fix.SpeedKMH = fmt.Sprintf("%.2f", *snap.LastFix.SpeedMPS*3.6)
		}
		sj.Status.Fix = fix
	}

	data, _ := json.MarshalIndent(sj, "", "  ")
	return data
}
