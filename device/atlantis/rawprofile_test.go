package atlantis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRawProfile(numButtons uint8) *RawProfile {
	p := &RawProfile{
		PollRate:        settingOf[uint8](2),
		DpiCount:        settingOf[uint8](2),
		CurrentDpiIndex: settingOf[uint8](0),
		LiftOffDistance: settingOf[uint8](1),
		Dpis: []setting[RawDpi]{
			settingOf(RawDpi{X: 16, Y: 16}),
			settingOf(RawDpi{X: 32, Y: 32}),
		},
		DpiColors: []setting[RawColor]{
			settingOf(RawColor{Red: 255, Green: 0, Blue: 0}),
			settingOf(RawColor{Red: 0, Green: 255, Blue: 0}),
		},
		DebounceMs:          settingOf[uint8](4),
		MotionSync:          settingOf[uint8](1),
		RippleControl:       settingOf[uint8](0),
		PeakPerformanceTime: settingOf[uint8](10),
		HighPerformance:     settingOf[uint8](1),
	}
	p.ButtonActions = make([]setting[RawAction], numButtons)
	p.ButtonActions[0] = settingOf(RawAction{Kind: RawButton, ButtonID: 1})
	p.ButtonActions[1] = settingOf(RawAction{Kind: RawCombo})

	p.Combos = make([]setting[RawCombo], numButtons)
	p.Combos[1] = settingOf(RawCombo{Events: []RawKeyEvent{
		{State: 1, SubKind: subModifier, Value: 1},
	}})

	p.Macros = make([]setting[RawMacro], numButtons)
	p.Macros[2] = settingOf(RawMacro{
		Name: "burst",
		Events: []RawMacroEvent{
			{KeyEvent: RawKeyEvent{State: 1, SubKind: subHID, Value: 0x05}, DelayMs: 50},
		},
	})
	return p
}

func TestRawProfileRoundTrip(t *testing.T) {
	dev := &memDevice{}
	tr := NewTransport(dev)
	want := sampleRawProfile(4)

	require.NoError(t, want.WriteToMouse(tr, 4))

	got, err := ReadRawProfile(tr, 4)
	require.NoError(t, err)

	assertSettingEqual(t, want.PollRate, got.PollRate)
	assertSettingEqual(t, want.CurrentDpiIndex, got.CurrentDpiIndex)
	assertSettingEqual(t, want.DebounceMs, got.DebounceMs)
	assertSettingEqual(t, want.HighPerformance, got.HighPerformance)
	require.Len(t, got.Dpis, 2)
	assertSettingEqual(t, want.Dpis[0], got.Dpis[0])
	assertSettingEqual(t, want.Dpis[1], got.Dpis[1])
	require.Len(t, got.ButtonActions, 4)
	assertSettingEqual(t, want.ButtonActions[0], got.ButtonActions[0])
	assertSettingEqual(t, want.ButtonActions[1], got.ButtonActions[1])
	require.Len(t, got.Combos, 4)
	assertSettingEqual(t, want.Combos[1], got.Combos[1])
	require.Len(t, got.Macros, 4)
	assertSettingEqual(t, want.Macros[2], got.Macros[2])
}

func TestRawProfileAbsentSlotsStayAbsent(t *testing.T) {
	dev := &memDevice{}
	tr := NewTransport(dev)

	got, err := ReadRawProfile(tr, 4)
	require.NoError(t, err)

	_, present := got.PollRate.Get()
	assert.False(t, present)
	_, present = got.DpiCount.Get()
	assert.False(t, present)
	assert.Len(t, got.Dpis, 0)
	assert.Len(t, got.ButtonActions, 4)
	for _, b := range got.ButtonActions {
		_, present := b.Get()
		assert.False(t, present)
	}
}

func TestRawProfileWriteSkipsAbsentWithoutZeroing(t *testing.T) {
	dev := &memDevice{}
	dev.mem[offsetDebounceMs] = 0x99
	tr := NewTransport(dev)

	p := &RawProfile{PollRate: settingOf[uint8](1)}
	p.ButtonActions = make([]setting[RawAction], 2)
	p.Combos = make([]setting[RawCombo], 2)
	p.Macros = make([]setting[RawMacro], 2)

	require.NoError(t, p.WriteToMouse(tr, 2))
	assert.Equal(t, byte(0x99), dev.mem[offsetDebounceMs], "absent slot must not zero an existing byte")
}

func TestReadRawProfileRejectsTooManyButtons(t *testing.T) {
	dev := &memDevice{}
	tr := NewTransport(dev)
	_, err := ReadRawProfile(tr, maxButtonActions+1)
	assert.Error(t, err)
}

func assertSettingEqual[T any](t *testing.T, want, got setting[T]) {
	t.Helper()
	wv, wp := want.Get()
	gv, gp := got.Get()
	assert.Equal(t, wp, gp)
	if wp && gp {
		assert.Equal(t, wv, gv)
	}
}
