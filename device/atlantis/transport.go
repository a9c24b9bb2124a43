package atlantis

import (
	"fmt"

	"github.com/atlantiscfg/atlantiscfg/device"
)

// maxResponseAttempts is the number of candidate response reads the
// transport tries before giving up with NoResponse.
const maxResponseAttempts = 3

// RawLogger receives the raw bytes of every report written to or read from
// the device, for diagnostics. A nil RawLogger disables logging.
type RawLogger interface {
	LogOutgoing(data []byte)
	LogIncoming(data []byte)
}

// Transport serialises requests to a HID device and matches responses to
// them, retrying past unrelated status reports the firmware may emit.
type Transport struct {
	dev    device.HIDDevice
	logger RawLogger
}

// NewTransport wraps dev for request/response exchanges.
func NewTransport(dev device.HIDDevice) *Transport {
	return &Transport{dev: dev}
}

// SetRawLogger attaches a RawLogger that records every report's raw bytes.
func (t *Transport) SetRawLogger(logger RawLogger) {
	t.logger = logger
}

// Close releases the underlying device handle.
func (t *Transport) Close() error {
	return t.dev.Close()
}

// MakeRequest writes req and returns the first response whose command
// matches it, trying up to maxResponseAttempts reads. A response whose
// error byte is non-zero is surfaced as MouseErrorResponse.
func (t *Transport) MakeRequest(req StandardReport) (StandardReport, error) {
	wire := req.Encode()
	if t.logger != nil {
		t.logger.LogOutgoing(wire[:])
	}
	if _, err := t.dev.Write(wire[:]); err != nil {
		return StandardReport{}, device.Hid(fmt.Errorf("write request: %w", err))
	}

	for attempt := 0; attempt < maxResponseAttempts; attempt++ {
		buf := make([]byte, reportLength)
		n, err := t.dev.Read(buf)
		if err != nil {
			return StandardReport{}, device.Hid(fmt.Errorf("read response: %w", err))
		}
		if t.logger != nil {
			t.logger.LogIncoming(buf[:n])
		}
		if n != reportLength {
			return StandardReport{}, device.UnexpectedReport(fmt.Sprintf("read %d bytes, want %d", n, reportLength))
		}

		resp, err := DecodeReport(buf)
		if err != nil {
			return StandardReport{}, err
		}
		if !req.IsValidResponseFor(resp) {
			continue
		}
		if resp.Error != 0 {
			return StandardReport{}, device.MouseErrorResponse(resp.Error)
		}
		return resp, nil
	}

	return StandardReport{}, device.NoResponse(fmt.Sprintf("no response matching command %s after %d attempts", req.Command, maxResponseAttempts))
}
