// Package telemetry defines the wire form of the speed figure carried in
// the beacon's manufacturer data.
package telemetry

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Size is the exact encoded length, a single little-endian float32.
const Size = 4

// Encode renders a speed in meters per second as manufacturer data bytes.
func Encode(speedMPS float32) []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(speedMPS))
	return buf
}

// Decode parses manufacturer data back into meters per second. Payloads of
// any other length are malformed and rejected outright.
func Decode(data []byte) (float32, error) {
	if len(data) != Size {
		return 0, fmt.Errorf("speed payload is %d bytes, want %d", len(data), Size)
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(data)), nil
}

// KMH converts a decoded speed to kilometers per hour for reporting.
func KMH(speedMPS float32) float64 {
	return float64(speedMPS) * 3.6
}
