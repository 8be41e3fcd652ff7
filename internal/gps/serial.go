package gps

import (
	"fmt"
	"io"
	"time"

	"github.com/goburrow/serial"
)

// OpenSerial opens the positioning receiver's serial port. Read timeouts
// are reported as empty reads so the sensor can keep polling instead of
// treating them as fatal.
func OpenSerial(device string, baud int) (io.ReadCloser, error) {
	port, err := serial.Open(&serial.Config{
		Address:  device,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", device, err)
	}
	return &serialPort{port: port}, nil
}

type serialPort struct {
	port serial.Port
}

func (p *serialPort) Read(b []byte) (int, error) {
	n, err := p.port.Read(b)
	if err == serial.ErrTimeout {
		return n, nil
	}
	return n, err
}

func (p *serialPort) Close() error {
	return p.port.Close()
}
