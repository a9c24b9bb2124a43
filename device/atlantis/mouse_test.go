package atlantis

import (
	"testing"

	"github.com/atlantiscfg/atlantiscfg/device"
	"github.com/atlantiscfg/atlantiscfg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mouseDevice emulates a full mouse: one active-profile register and four
// independent profile-memory banks, so Mouse can be exercised end to end
// without real hardware.
type mouseDevice struct {
	active  uint8
	mem     [numProfiles][ProfileMemorySize]byte
	pending []byte
}

func (d *mouseDevice) Write(b []byte) (int, error) {
	req, err := DecodeReport(b)
	if err != nil {
		return 0, err
	}
	var resp StandardReport
	switch req.Command {
	case ReadProfileData:
		resp = StandardReport{Command: ReadProfileData, Address: req.Address, Length: req.Length}
		copy(resp.Data[:req.Length], d.mem[d.active][req.Address:int(req.Address)+int(req.Length)])
	case WriteProfileData:
		copy(d.mem[d.active][req.Address:int(req.Address)+int(req.Length)], req.Data[:req.Length])
		resp = StandardReport{Command: WriteProfileData}
	case ReadActiveProfile:
		resp = StandardReport{Command: ReadActiveProfile}
		resp.Data[0] = d.active
	case WriteActiveProfile:
		d.active = req.Data[0]
		resp = StandardReport{Command: WriteActiveProfile}
	default:
		resp = StandardReport{Command: req.Command}
	}
	wire := resp.Encode()
	d.pending = append(d.pending, wire[:]...)
	return len(b), nil
}

func (d *mouseDevice) Read(p []byte) (int, error) {
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

func (d *mouseDevice) Close() error { return nil }

var testProduct = device.Product{ID: 0xf50d, Name: "Atlantis", NumButtons: 8, MaxPollRate: 1000}

func uint16p(v uint16) *uint16 { return &v }
func uint8p(v uint8) *uint8    { return &v }

func TestMouseWriteReadProfileRoundTrip(t *testing.T) {
	dev := &mouseDevice{}
	m := NewMouse(NewTransport(dev), testProduct)

	p := &profile.Profile{
		PollRate:   uint16p(500),
		DebounceMs: uint8p(4),
		DPIs:       []profile.DPI{profile.LinkedDPI(800), profile.LinkedDPI(1600)},
		ButtonActions: []profile.Action{
			profile.LeftClick(),
			profile.RightClick(),
		},
	}

	_, err := m.WriteProfile(2, p)
	require.NoError(t, err)

	got, _, err := m.ReadProfile(2)
	require.NoError(t, err)
	require.NotNil(t, got.PollRate)
	assert.Equal(t, uint16(500), *got.PollRate)
	require.Len(t, got.DPIs, 2)
	assert.Equal(t, uint16(800), got.DPIs[0].X)
	assert.Equal(t, profile.LeftClick(), got.ButtonActions[0])
	assert.Equal(t, profile.RightClick(), got.ButtonActions[1])
}

func TestMouseSwitchRestoresActiveProfile(t *testing.T) {
	dev := &mouseDevice{active: 1}
	m := NewMouse(NewTransport(dev), testProduct)

	_, _, err := m.ReadProfile(3)
	require.NoError(t, err)

	active, err := m.ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), active)
}

func TestMouseClampsPollRateToProductMaximum(t *testing.T) {
	dev := &mouseDevice{}
	m := NewMouse(NewTransport(dev), testProduct)

	p := &profile.Profile{PollRate: uint16p(4000)}
	warnings, err := m.WriteProfile(0, p)
	require.NoError(t, err)
	require.NotEmpty(t, warnings)

	got, _, err := m.ReadProfile(0)
	require.NoError(t, err)
	require.NotNil(t, got.PollRate)
	assert.Equal(t, uint16(1000), *got.PollRate)
}

func TestMouseSetActiveProfileRejectsOutOfRange(t *testing.T) {
	dev := &mouseDevice{}
	m := NewMouse(NewTransport(dev), testProduct)
	err := m.SetActiveProfile(numProfiles)
	assert.Error(t, err)
}

func TestWriteAllProfilesRejectsTooMany(t *testing.T) {
	dev := &mouseDevice{}
	m := NewMouse(NewTransport(dev), testProduct)
	profiles := make([]*profile.Profile, numProfiles+1)
	for i := range profiles {
		profiles[i] = &profile.Profile{}
	}
	_, err := m.WriteAllProfiles(profiles)
	assert.Error(t, err)
}

func TestReadAllProfilesReadsEverySlot(t *testing.T) {
	dev := &mouseDevice{}
	m := NewMouse(NewTransport(dev), testProduct)
	profiles, _, err := m.ReadAllProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, numProfiles)
}
