package atlantis

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memDevice emulates profile memory: it answers ReadProfileData and
// WriteProfileData requests against an in-memory byte array, so
// ProfileReader/ProfileWriter can be exercised without a real device.
type memDevice struct {
	mem     [ProfileMemorySize]byte
	pending []byte
}

func (d *memDevice) Write(b []byte) (int, error) {
	req, err := DecodeReport(b)
	if err != nil {
		return 0, err
	}
	var resp StandardReport
	switch req.Command {
	case ReadProfileData:
		resp = StandardReport{Command: ReadProfileData, Address: req.Address, Length: req.Length}
		copy(resp.Data[:req.Length], d.mem[req.Address:int(req.Address)+int(req.Length)])
	case WriteProfileData:
		copy(d.mem[req.Address:int(req.Address)+int(req.Length)], req.Data[:req.Length])
		resp = StandardReport{Command: WriteProfileData}
	default:
		resp = StandardReport{Command: req.Command}
	}
	wire := resp.Encode()
	d.pending = append(d.pending, wire[:]...)
	return len(b), nil
}

func (d *memDevice) Read(p []byte) (int, error) {
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

func (d *memDevice) Close() error { return nil }

func TestProfileReaderChunksTenBytesAtATime(t *testing.T) {
	dev := &memDevice{}
	for i := range 25 {
		dev.mem[i] = byte(i)
	}
	tr := NewTransport(dev)
	r := NewProfileReader(tr, 0)

	buf := make([]byte, 25)
	n, err := io.ReadFull(r, buf)
	require.NoError(t, err)
	assert.Equal(t, 25, n)
	for i := range 25 {
		assert.Equal(t, byte(i), buf[i])
	}
}

func TestProfileReaderEOFAtBound(t *testing.T) {
	dev := &memDevice{}
	tr := NewTransport(dev)
	r := NewProfileReader(tr, ProfileMemorySize-3)

	buf := make([]byte, 10)
	n, err := io.ReadFull(r, buf)
	assert.Equal(t, io.ErrUnexpectedEOF, err)
	assert.Equal(t, 3, n)
}

func TestProfileReaderSeek(t *testing.T) {
	dev := &memDevice{}
	dev.mem[10] = 0xAB
	tr := NewTransport(dev)
	r := NewProfileReader(tr, 0)

	_, err := r.Seek(10, io.SeekStart)
	require.NoError(t, err)

	buf := make([]byte, 1)
	_, err = r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), buf[0])
}

func TestProfileReaderSeekBeforeOriginErrors(t *testing.T) {
	dev := &memDevice{}
	tr := NewTransport(dev)
	r := NewProfileReader(tr, 100)

	_, err := r.Seek(-1, io.SeekStart)
	assert.Error(t, err)
}

func TestProfileWriterFlushesInTenByteChunks(t *testing.T) {
	dev := &memDevice{}
	tr := NewTransport(dev)
	w := NewProfileWriter(tr, 0)

	data := make([]byte, 25)
	for i := range data {
		data[i] = byte(i + 1)
	}
	n, err := w.Write(data)
	require.NoError(t, err)
	assert.Equal(t, 25, n)
	require.NoError(t, w.Close())

	for i := range data {
		assert.Equal(t, data[i], dev.mem[i])
	}
}

func TestProfileWriterSeekSkipsWithoutPadding(t *testing.T) {
	dev := &memDevice{}
	dev.mem[5] = 0x42
	tr := NewTransport(dev)
	w := NewProfileWriter(tr, 0)

	_, err := w.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	_, err = w.Seek(5, io.SeekStart)
	require.NoError(t, err)
	_, err = w.Write([]byte{9})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, byte(9), dev.mem[5])
	assert.Equal(t, byte(1), dev.mem[0])
}

func TestProfileWriterRejectsCrossingBound(t *testing.T) {
	dev := &memDevice{}
	tr := NewTransport(dev)
	w := NewProfileWriter(tr, ProfileMemorySize-5)

	_, err := w.Write(make([]byte, 10))
	assert.Error(t, err)
}
