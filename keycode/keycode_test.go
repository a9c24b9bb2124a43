package keycode_test

import (
	"testing"

	"github.com/atlantiscfg/atlantiscfg/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHIDUsageRoundTrip(t *testing.T) {
	usage, ok := keycode.KeyA.HIDUsage()
	require.True(t, ok)
	assert.Equal(t, uint16(0x04), usage)

	_, ok = keycode.ControlLeft.HIDUsage()
	assert.False(t, ok, "modifiers have no HID usage code")

	_, ok = keycode.ArrowUp.HIDUsage()
	assert.False(t, ok, "directions have no HID usage code")
}

func TestIsModifierIsDirection(t *testing.T) {
	assert.True(t, keycode.ShiftRight.IsModifier())
	assert.False(t, keycode.KeyA.IsModifier())

	assert.True(t, keycode.ArrowDown.IsDirection())
	assert.False(t, keycode.KeyA.IsDirection())
}

func TestModifierBitRoundTrip(t *testing.T) {
	for _, id := range []keycode.KeyID{
		keycode.ControlLeft, keycode.ShiftLeft, keycode.AltLeft, keycode.MetaLeft,
		keycode.ControlRight, keycode.ShiftRight, keycode.AltRight, keycode.MetaRight,
	} {
		bit, ok := keycode.ModifierBit(id)
		require.True(t, ok)
		assert.NotZero(t, bit, "bit count")

		got, ok := keycode.ModifierFromBit(bit)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestModifierFromBitRejectsMultipleBits(t *testing.T) {
	_, ok := keycode.ModifierFromBit(keycode.ModControlLeft | keycode.ModShiftLeft)
	assert.False(t, ok)

	_, ok = keycode.ModifierFromBit(0)
	assert.False(t, ok)
}

func TestNameRoundTrip(t *testing.T) {
	for id, name := range keycode.Name {
		got, ok := keycode.ByName(name)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
}
