// Command peer-beacon advertises this device over BLE, watches for peer
// beacons, and either tracks peak GPS speed (tracker role) or relays a
// sighted tracker's speed to a report endpoint (relay role).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/sweeney/peer-beacon/internal/ble"
	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/button"
	"github.com/sweeney/peer-beacon/internal/config"
	"github.com/sweeney/peer-beacon/internal/device"
	"github.com/sweeney/peer-beacon/internal/gps"
	"github.com/sweeney/peer-beacon/internal/led"
	"github.com/sweeney/peer-beacon/internal/logic"
	"github.com/sweeney/peer-beacon/internal/report"
	"github.com/sweeney/peer-beacon/internal/status"
	"github.com/sweeney/peer-beacon/internal/web"
)

type overrides struct {
	role      string
	name      string
	reportURL string
	httpAddr  string
}

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	role := flag.String("role", "", "override role: tracker or relay")
	name := flag.String("name", "", "override beacon name")
	reportURL := flag.String("report-url", "", "override report endpoint URL")
	httpAddr := flag.String("http", "", `override diagnostics listen address ("off" disables)`)
	flag.Parse()

	cfg, err := loadConfig(*configPath, overrides{
		role:      *role,
		name:      *name,
		reportURL: *reportURL,
		httpAddr:  *httpAddr,
	})
	if err != nil {
		fatal(err)
	}
	if err := run(cfg); err != nil {
		fatal(err)
	}
}

// fatal logs the error and exits nonzero. The pause keeps a supervisor
// with Restart=always from spinning on a persistent fault.
func fatal(err error) {
	log.Printf("fatal: %v", err)
	time.Sleep(time.Second)
	os.Exit(1)
}

// loadConfig layers the optional config file over the defaults, applies
// flag overrides, and validates the result.
func loadConfig(path string, ov overrides) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}
	if ov.role != "" {
		cfg.Beacon.Role = ov.role
	}
	if ov.name != "" {
		cfg.Beacon.Name = ov.name
	}
	if ov.reportURL != "" {
		cfg.Beacon.Report.URL = ov.reportURL
	}
	if ov.httpAddr != "" {
		cfg.Beacon.HTTP = ov.httpAddr
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	b := cfg.Beacon
	trig := bus.New()
	gate := device.NewGate(true)

	input, err := button.NewRealInput(b.Button.Chip, b.Button.Pin)
	if err != nil {
		return fmt.Errorf("init button: %w", err)
	}
	defer input.Close()
	poller := button.NewPoller(input, trig.Notifier(), gate,
		time.Duration(b.Button.PollMs)*time.Millisecond,
		time.Duration(b.Button.DebounceMs)*time.Millisecond)

	driver, err := led.NewRealDriver(b.LED.Chip, b.LED.RedPin, b.LED.GreenPin, b.LED.BluePin)
	if err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	defer driver.Close()
	indicator := led.NewIndicator(driver)
	blinker := led.NewBlinker(trig.Notifier(), time.Second/time.Duration(b.LED.BlinkHz), fatal)

	adapter, err := ble.NewRealAdapter()
	if err != nil {
		return fmt.Errorf("init bluetooth: %w", err)
	}
	advertiser, err := ble.NewAdvertiser(adapter, true, ble.DefaultDerive(b.Name))
	if err != nil {
		return fmt.Errorf("init advertiser: %w", err)
	}

	payloads := &device.PayloadSlot{}
	scanner := ble.NewScanner(adapter, trig.Notifier(), gate, payloads, ble.ScanConfig{
		Match:          ble.DefaultMatch,
		NotFound:       bus.DeviceNotFound,
		PayloadTrigger: bus.DeviceFoundActive,
		Period:         time.Duration(b.Scan.PeriodMs) * time.Millisecond,
		Window:         time.Duration(b.Scan.WindowMs) * time.Millisecond,
	})

	stat := status.NewTracker(status.Config{
		Role:      b.Role,
		Name:      b.Name,
		ReportURL: b.Report.URL,
		HTTPAddr:  b.HTTP,
	})
	if b.HTTP != "" && b.HTTP != "off" {
		srv := web.New(b.HTTP, stat)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("diagnostics server listening on %s", b.HTTP)
	}

	core, err := logic.NewCore(device.On, trig, advertiser, indicator, blinker)
	if err != nil {
		return fmt.Errorf("init control loop: %w", err)
	}
	core.SetStatus(stat)

	errs := make(chan error, 4)
	go func() { errs <- poller.Run() }()
	go func() { errs <- scanner.Run() }()

	log.Printf("started: role=%s name=%s", b.Role, b.Name)

	switch b.Role {
	case config.RoleTracker:
		port, err := gps.OpenSerial(b.GPS.Device, b.GPS.Baud)
		if err != nil {
			return fmt.Errorf("open gps: %w", err)
		}
		defer port.Close()
		readings := &gps.Slot{}
		sensor := gps.NewSensor(port, trig.Notifier(), gate, readings)
		go func() { errs <- sensor.Run() }()
		go func() { errs <- logic.NewTracker(core, readings).Run() }()

	case config.RoleRelay:
		reporter, err := report.New(b.Report.URL, b.Report.Param, b.Report.Topic)
		if err != nil {
			return fmt.Errorf("init reporter: %w", err)
		}
		defer reporter.Close()
		go func() { errs <- logic.NewRelay(core, payloads, reporter).Run() }()

	default:
		return fmt.Errorf("unknown role %q", b.Role)
	}

	return <-errs
}
