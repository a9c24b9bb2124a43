package atlantis

import (
	"testing"

	"github.com/atlantiscfg/atlantiscfg/keycode"
	"github.com/atlantiscfg/atlantiscfg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileToRawToProfileRoundTrip(t *testing.T) {
	pollRate := uint16(500)
	debounce := uint8(4)
	motionSync := true

	p := &profile.Profile{
		PollRate:   &pollRate,
		DebounceMs: &debounce,
		MotionSync: &motionSync,
		DPIs:       []profile.DPI{profile.LinkedDPI(800), profile.IndependentDPI(1200, 1600)},
		DPIColors:  []profile.Color{{Red: 255}, {Green: 255}},
		ButtonActions: []profile.Action{
			profile.LeftClick(),
			profile.RightClick(),
			profile.Combo([]profile.KeyEvent{
				{Key: keycode.ControlLeft, State: keycode.Pressed},
				{Key: keycode.KeyC, State: keycode.Pressed},
				{Key: keycode.KeyC, State: keycode.Released},
				{Key: keycode.ControlLeft, State: keycode.Released},
			}),
			profile.Macro("burst"),
		},
		Macros: map[string][]profile.MacroEvent{
			"burst": {
				{KeyEvent: profile.KeyEvent{Key: keycode.KeyA, State: keycode.Pressed}, DelayMs: 10},
				{KeyEvent: profile.KeyEvent{Key: keycode.KeyA, State: keycode.Released}, DelayMs: 0},
			},
		},
	}

	raw, warnings, err := ProfileToRaw(p, 8)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	got, warnings, err := RawToProfile(raw)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, got.PollRate)
	assert.Equal(t, uint16(500), *got.PollRate)
	require.Len(t, got.DPIs, 2)
	assert.Equal(t, uint16(800), got.DPIs[0].X)
	assert.Equal(t, uint16(1200), got.DPIs[1].X)
	assert.Equal(t, uint16(1600), got.DPIs[1].Y)

	require.Len(t, got.ButtonActions, 8)
	assert.Equal(t, profile.LeftClick(), got.ButtonActions[0])
	assert.Equal(t, profile.RightClick(), got.ButtonActions[1])
	assert.Equal(t, profile.ActionCombo, got.ButtonActions[2].Kind)
	assert.Equal(t, p.ButtonActions[2].ComboEvents, got.ButtonActions[2].ComboEvents)
	assert.Equal(t, profile.ActionMacro, got.ButtonActions[3].Kind)
	assert.Equal(t, "burst", got.ButtonActions[3].MacroName)
	assert.Equal(t, p.Macros["burst"], got.Macros["burst"])
}

func TestProfileToRawWarnsOnUndefinedMacro(t *testing.T) {
	p := &profile.Profile{
		ButtonActions: []profile.Action{profile.Macro("missing")},
	}
	raw, warnings, err := ProfileToRaw(p, 4)
	require.NoError(t, err)
	require.NotEmpty(t, warnings)

	action, ok := raw.ButtonActions[0].Get()
	require.True(t, ok)
	assert.Equal(t, RawDisabled, action.Kind)
}

func TestProfileToRawRejectsUnsupportedPollRate(t *testing.T) {
	rate := uint16(333)
	p := &profile.Profile{PollRate: &rate}
	_, _, err := ProfileToRaw(p, 8)
	assert.Error(t, err)
}

func TestProfileToRawWarnsOnTooManyButtonActions(t *testing.T) {
	p := &profile.Profile{
		ButtonActions: []profile.Action{
			profile.LeftClick(), profile.RightClick(), profile.MiddleClick(),
		},
	}
	_, warnings, err := ProfileToRaw(p, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
}

func TestRawToProfileFillsMacroNameUnlikeOriginal(t *testing.T) {
	raw := &RawProfile{
		ButtonActions: []setting[RawAction]{settingOf(RawAction{Kind: RawMacro, MacroIndex: 0})},
		Macros: []setting[RawMacro]{settingOf(RawMacro{
			Name: "combo1",
			Events: []RawMacroEvent{
				{KeyEvent: RawKeyEvent{State: keycode.Pressed, SubKind: subHID, Value: 0x04}, DelayMs: 5},
			},
		})},
		Combos: []setting[RawCombo]{{}},
	}
	p, _, err := RawToProfile(raw)
	require.NoError(t, err)
	assert.Equal(t, "combo1", p.ButtonActions[0].MacroName)
}

func TestRawToProfileDefaultsMissingActionToDisabled(t *testing.T) {
	raw := &RawProfile{
		ButtonActions: []setting[RawAction]{{}},
		Combos:        []setting[RawCombo]{{}},
		Macros:        []setting[RawMacro]{{}},
	}
	p, warnings, err := RawToProfile(raw)
	require.NoError(t, err)
	assert.Equal(t, profile.Disabled(), p.ButtonActions[0])
	assert.NotEmpty(t, warnings)
}
