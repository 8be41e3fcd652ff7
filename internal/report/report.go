// Package report delivers relayed speed figures to the operator's
// endpoint, over plain HTTP or an MQTT broker depending on the URL.
package report

import (
	"fmt"
	"net/url"
)

// Reporter is implemented by every delivery backend.
type Reporter interface {
	Report(kmh float64) error
	Close()
}

// New picks a backend from the URL scheme. http and https post a query
// parameter; mqtt and tcp publish JSON to a broker topic.
func New(rawURL, param, topic string) (Reporter, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing report url: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
		return NewHTTPReporter(NewHTTPPoster(), rawURL, param), nil
	case "mqtt", "tcp":
		return NewMQTTReporter(rawURL, topic)
	default:
		return nil, fmt.Errorf("unsupported report scheme %q", u.Scheme)
	}
}
