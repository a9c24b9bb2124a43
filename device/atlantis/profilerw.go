package atlantis

import (
	"fmt"
	"io"

	"github.com/atlantiscfg/atlantiscfg/device"
)

// ProfileMemorySize is the exclusive upper bound of profile memory
// addresses; no read or write may reach or cross it.
const ProfileMemorySize = 0x1B00

// ProfileReader is a buffered, seekable byte stream over a window of device
// profile memory starting at origin, materialised via ReadProfileData
// requests chunked to at most 10 bytes each.
type ProfileReader struct {
	transport *Transport
	origin    uint16
	pos       int // bytes consumed, relative to origin
	buf       []byte
}

// NewProfileReader opens a ProfileReader over profile memory starting at
// origin and ending at the exclusive bound ProfileMemorySize.
func NewProfileReader(transport *Transport, origin uint16) *ProfileReader {
	return &ProfileReader{transport: transport, origin: origin}
}

// Read implements io.Reader, fetching more data from the device as needed.
func (r *ProfileReader) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		if err := r.fill(); err != nil {
			return 0, err
		}
		if len(r.buf) == 0 {
			return 0, io.EOF
		}
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	r.pos += n
	return n, nil
}

// fill issues one ReadProfileData request for up to 10 bytes at the current
// stream position, or leaves buf empty (without error) at the window's end.
func (r *ProfileReader) fill() error {
	addr := int(r.origin) + r.pos
	remaining := ProfileMemorySize - addr
	if remaining <= 0 {
		return nil
	}
	size := remaining
	if size > dataCapacity {
		size = dataCapacity
	}

	resp, err := r.transport.MakeRequest(NewReadProfileData(uint16(addr), uint8(size)))
	if err != nil {
		return err
	}
	if int(resp.Length) > dataCapacity {
		return device.UnexpectedReport(fmt.Sprintf("response length %d exceeds packet capacity", resp.Length))
	}
	r.buf = append([]byte(nil), resp.Data[:resp.Length]...)
	return nil
}

// Seek implements io.Seeker. Position 0 is origin; seeking before origin is
// an error. A forward seek discards any buffered lookahead so the next Read
// re-fetches from the device at the new position.
func (r *ProfileReader) Seek(offset int64, whence int) (int64, error) {
	target, err := seekTarget(r.pos, ProfileMemorySize-int(r.origin), offset, whence)
	if err != nil {
		return 0, err
	}
	r.pos = target
	r.buf = nil
	return int64(r.pos), nil
}

// seekTarget computes a new relative position from a seek request, rejecting
// negative results.
func seekTarget(cur, end int, offset int64, whence int) (int, error) {
	var base int
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = cur
	case io.SeekEnd:
		base = end
	default:
		return 0, device.Io(fmt.Errorf("invalid whence %d", whence))
	}
	target := base + int(offset)
	if target < 0 {
		return 0, device.Io(fmt.Errorf("seek to %d before stream origin", target))
	}
	return target, nil
}

// ProfileWriter is a buffered, seekable byte stream over a window of device
// profile memory starting at origin. Writes are batched and flushed in
// chunks of at most 10 bytes via WriteProfileData.
type ProfileWriter struct {
	transport *Transport
	origin    uint16
	pos       int // address (relative to origin) of pending[0]
	pending   []byte
}

// NewProfileWriter opens a ProfileWriter over profile memory starting at
// origin.
func NewProfileWriter(transport *Transport, origin uint16) *ProfileWriter {
	return &ProfileWriter{transport: transport, origin: origin}
}

// Write implements io.Writer, appending to the pending batch and flushing
// full 10-byte chunks as they accumulate.
func (w *ProfileWriter) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)
	for len(w.pending) >= dataCapacity {
		if err := w.flushChunk(dataCapacity); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// flushChunk sends the first n pending bytes as one WriteProfileData
// request and advances pos past them.
func (w *ProfileWriter) flushChunk(n int) error {
	addr := int(w.origin) + w.pos
	if addr+n > ProfileMemorySize {
		return device.Io(fmt.Errorf("write of %d bytes at 0x%04x would cross profile memory bound 0x%04x", n, addr, ProfileMemorySize))
	}
	chunk := w.pending[:n]
	if _, err := w.transport.MakeRequest(NewWriteProfileData(uint16(addr), chunk)); err != nil {
		return err
	}
	w.pos += n
	w.pending = w.pending[n:]
	return nil
}

// Flush drains every pending byte to the device, in one final chunk of
// fewer than 10 bytes if that's all that remains.
func (w *ProfileWriter) Flush() error {
	for len(w.pending) > 0 {
		n := len(w.pending)
		if n > dataCapacity {
			n = dataCapacity
		}
		if err := w.flushChunk(n); err != nil {
			return err
		}
	}
	return nil
}

// Seek implements io.Seeker. It flushes the current batch first (so a skip
// forward never silently drops staged bytes), then repositions without
// writing the skipped range — preserving whatever the device already holds
// there, per the "seek, don't pad" rule for encoding gaps.
func (w *ProfileWriter) Seek(offset int64, whence int) (int64, error) {
	if err := w.Flush(); err != nil {
		return 0, err
	}
	target, err := seekTarget(w.pos, ProfileMemorySize-int(w.origin), offset, whence)
	if err != nil {
		return 0, err
	}
	w.pos = target
	return int64(w.pos), nil
}

// Close flushes any remaining pending bytes. Callers must call Close (via
// defer) when done writing; a failed flush here means the write did not
// fully reach the device.
func (w *ProfileWriter) Close() error {
	return w.Flush()
}
