package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawHID logs every HID report written to or read from the device as a hex
// dump, implementing device/atlantis.RawLogger.
type RawHID interface {
	LogOutgoing(data []byte)
	LogIncoming(data []byte)
}

// rawHID implements RawHID with a thread-safe writer.
type rawHID struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawHID. If w is nil, the returned logger discards
// everything, so callers never need a nil check before use.
func NewRaw(w io.Writer) RawHID {
	return &rawHID{w: w}
}

func (r *rawHID) LogOutgoing(data []byte) { r.log("host->mouse", data) }
func (r *rawHID) LogIncoming(data []byte) { r.log("mouse->host", data) }

func (r *rawHID) log(dir string, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s report: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
