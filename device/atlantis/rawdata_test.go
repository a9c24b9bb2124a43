package atlantis

import (
	"testing"

	"github.com/atlantiscfg/atlantiscfg/keycode"
	"github.com/atlantiscfg/atlantiscfg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRawActionVariants(t *testing.T) {
	cases := []RawAction{
		{Kind: RawDisabled},
		{Kind: RawButton, ButtonID: 4},
		{Kind: RawDpiLoop},
		{Kind: RawDpiUp},
		{Kind: RawDpiDown},
		{Kind: RawWheelLeft},
		{Kind: RawWheelRight},
		{Kind: RawFire, Interval: 10, Repeat: 5},
		{Kind: RawCombo},
		{Kind: RawMacro, MacroIndex: 3},
		{Kind: RawPollRateLoop},
		{Kind: RawDpiLock, DpiRaw: 31},
		{Kind: RawWheelUp},
		{Kind: RawWheelDown},
	}
	for _, want := range cases {
		wire := EncodeRawAction(want)
		got, err := DecodeRawAction(wire[:])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecodeRawActionUnknownTag(t *testing.T) {
	_, err := DecodeRawAction([]byte{0xFF, 0x00, 0x00})
	assert.Error(t, err)
}

func TestRawKeyEventModifierRoundTrip(t *testing.T) {
	e := profile.KeyEvent{Key: keycode.ControlLeft, State: keycode.Pressed}
	raw, err := keyEventToRaw(e)
	require.NoError(t, err)
	assert.Equal(t, subModifier, raw.SubKind)

	got, err := rawToKeyEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestRawKeyEventHIDRoundTrip(t *testing.T) {
	e := profile.KeyEvent{Key: keycode.KeyA, State: keycode.Released}
	raw, err := keyEventToRaw(e)
	require.NoError(t, err)
	assert.Equal(t, subHID, raw.SubKind)

	got, err := rawToKeyEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestRawKeyEventDirectionMapping(t *testing.T) {
	cases := map[keycode.KeyID]uint16{
		keycode.ArrowLeft:  directionLeft,
		keycode.ArrowRight: directionRight,
		keycode.ArrowDown:  directionBack,
		keycode.ArrowUp:    directionForward,
	}
	for key, wantValue := range cases {
		raw, err := keyEventToRaw(profile.KeyEvent{Key: key, State: keycode.Pressed})
		require.NoError(t, err)
		assert.Equal(t, wantValue, raw.Value)

		got, err := rawToKeyEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, key, got.Key)
	}
}

func TestRawKeyEventMiddleDirectionDecodesToNone(t *testing.T) {
	raw := RawKeyEvent{State: keycode.Pressed, SubKind: subDirection, Value: directionMiddle}
	got, err := rawToKeyEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, keycode.None, got.Key)
}

func TestRawKeyEventConsumerIsUnsupported(t *testing.T) {
	raw := RawKeyEvent{State: keycode.Pressed, SubKind: subConsumer, Value: 1}
	_, err := rawToKeyEvent(raw)
	assert.Error(t, err)
}

func TestRawComboRoundTrip(t *testing.T) {
	combo := RawCombo{Events: []RawKeyEvent{
		{State: keycode.Pressed, SubKind: subModifier, Value: 1},
		{State: keycode.Pressed, SubKind: subHID, Value: 0x04},
		{State: keycode.Released, SubKind: subHID, Value: 0x04},
		{State: keycode.Released, SubKind: subModifier, Value: 1},
	}}
	wire, err := combo.Encode()
	require.NoError(t, err)

	got, err := DecodeRawCombo(wire[:])
	require.NoError(t, err)
	assert.Equal(t, combo, got)
}

func TestRawComboRejectsTooManyEvents(t *testing.T) {
	events := make([]RawKeyEvent, maxComboEvents+1)
	_, err := RawCombo{Events: events}.Encode()
	assert.Error(t, err)
}

func TestRawMacroRoundTrip(t *testing.T) {
	macro := RawMacro{
		Name: "burst",
		Events: []RawMacroEvent{
			{KeyEvent: RawKeyEvent{State: keycode.Pressed, SubKind: subHID, Value: 0x05}, DelayMs: 100},
			{KeyEvent: RawKeyEvent{State: keycode.Released, SubKind: subHID, Value: 0x05}, DelayMs: 0},
		},
	}
	wire, err := macro.Encode()
	require.NoError(t, err)

	got, err := DecodeRawMacro(wire[:])
	require.NoError(t, err)
	assert.Equal(t, macro, got)
}

func TestRawMacroRejectsOverlongName(t *testing.T) {
	_, err := RawMacro{Name: string(make([]byte, macroNameFieldLen+1))}.Encode()
	assert.Error(t, err)
}

func TestDpiRawRoundTrip(t *testing.T) {
	cases := []uint16{50, 100, 800, 1600, 12800}
	for _, dpi := range cases {
		raw := dpiToRaw(dpi)
		got := dpiFromRaw(raw)
		assert.Equal(t, dpi, got, "dpi=%d", dpi)
	}
}

func TestDpiToRawSaturatesAtZero(t *testing.T) {
	assert.Equal(t, uint8(0), dpiToRaw(0))
	assert.Equal(t, uint8(0), dpiToRaw(49))
}
