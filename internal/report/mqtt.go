package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	clientID             = "peer-beacon"
	connectRetryInterval = 5 * time.Second
	publishTimeout       = 5 * time.Second
	bufferCapacity       = 64
)

// MQTTReporter publishes reports to a broker topic. Reports made while the
// broker is unreachable are held in a small ring buffer and flushed on
// reconnect.
type MQTTReporter struct {
	client mqtt.Client
	topic  string

	mu     sync.Mutex
	buffer *ringBuffer
}

func NewMQTTReporter(rawURL, topic string) (*MQTTReporter, error) {
	if topic == "" {
		return nil, errors.New("mqtt reporting needs a topic")
	}
	// paho speaks tcp://, not mqtt://.
	broker := strings.Replace(rawURL, "mqtt://", "tcp://", 1)

	r := &MQTTReporter{topic: topic, buffer: newRingBuffer(bufferCapacity)}
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(connectRetryInterval).
		SetOnConnectHandler(r.onConnect).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Printf("mqtt connection lost: %v", err)
		})
	r.client = mqtt.NewClient(opts)

	// Connect retries in the background; reports buffer until it lands.
	r.client.Connect()
	return r, nil
}

func (r *MQTTReporter) Report(kmh float64) error {
	payload, err := formatReport(time.Now(), kmh)
	if err != nil {
		return err
	}
	if !r.client.IsConnectionOpen() {
		r.mu.Lock()
		r.buffer.push(payload)
		r.mu.Unlock()
		log.Printf("mqtt offline, buffered report (%d pending)", r.pending())
		return nil
	}
	return r.publish(payload)
}

func (r *MQTTReporter) publish(payload []byte) error {
	token := r.client.Publish(r.topic, 1, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return errors.New("mqtt publish timed out")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish: %w", err)
	}
	return nil
}

func (r *MQTTReporter) onConnect(mqtt.Client) {
	r.mu.Lock()
	pending := r.buffer.drainAll()
	r.mu.Unlock()
	if len(pending) == 0 {
		return
	}
	log.Printf("mqtt connected, flushing %d buffered reports", len(pending))
	for _, payload := range pending {
		if err := r.publish(payload); err != nil {
			log.Printf("flushing buffered report: %v", err)
		}
	}
}

func (r *MQTTReporter) pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buffer.len()
}

func (r *MQTTReporter) Close() {
	r.client.Disconnect(250)
}

type reportBody struct {
	Timestamp string `json:"timestamp"`
	SpeedKMH  string `json:"speed_kmh"`
}

func formatReport(at time.Time, kmh float64) ([]byte, error) {
	return json.Marshal(struct {
		Report reportBody `json:"report"`
	}{Report: reportBody{
		Timestamp: at.UTC().Format(time.RFC3339),
		SpeedKMH:  fmt.Sprintf("%.2f", kmh),
	}})
}
