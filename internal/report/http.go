package report

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Poster is the HTTP half a reporter needs, small enough to fake.
type Poster interface {
	Post(url string) (int, error)
}

// HTTPPoster posts with an empty body and a bounded timeout.
type HTTPPoster struct {
	client *http.Client
}

func NewHTTPPoster() *HTTPPoster {
	return &HTTPPoster{client: &http.Client{Timeout: 10 * time.Second}}
}

func (p *HTTPPoster) Post(url string) (int, error) {
	resp, err := p.client.Post(url, "text/plain", nil)
	if err != nil {
		return 0, err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode, nil
}

// HTTPReporter hands the speed to an HTTP endpoint as a query parameter.
type HTTPReporter struct {
	poster Poster
	url    string
	param  string
}

func NewHTTPReporter(poster Poster, url, param string) *HTTPReporter {
	return &HTTPReporter{poster: poster, url: url, param: param}
}

func (r *HTTPReporter) Report(kmh float64) error {
	target := fmt.Sprintf("%s?%s=%.2f", r.url, r.param, kmh)
	status, err := r.poster.Post(target)
	if err != nil {
		return fmt.Errorf("posting report: %w", err)
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("report endpoint returned %d", status)
	}
	log.Printf("reported %.2f km/h to %s", kmh, r.url)
	return nil
}

func (r *HTTPReporter) Close() {}
