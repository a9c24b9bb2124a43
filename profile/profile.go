// Package profile defines the human-editable mouse configuration model and
// the button actions, macros, and DPI stages it is built from.
//
// Every scalar setting is optional (a nil pointer) to express both "leave
// unchanged on write" and "was never set on device" on read — the same
// tri-state the wire layer keeps for its checksummed slots. Nothing in this
// package folds an absent value into a default; callers that want a default
// must apply one explicitly.
package profile

import "github.com/atlantiscfg/atlantiscfg/keycode"

// Profile is the full set of configurable mouse settings for one profile
// slot. All fields are optional or empty-by-default so a Profile can
// represent a sparse partial write.
type Profile struct {
	PollRate        *uint16 // Hz: one of 125, 250, 500, 1000 (4000 on some products)
	CurrentDPIIndex *uint8  // 0..8
	LiftOffDistance *uint8  // 0 or 1
	DebounceMs      *uint8  // 0..16
	MotionSync      *bool
	AngleSnapping   *bool
	RippleControl   *bool
	PeakPerformance *bool
	PeakPerfTimeMs  *uint16 // 0..2550, stored on-wire as ms/10
	HighPerformance *bool
	DPIs            []DPI
	DPIColors       []Color
	ButtonActions   []Action
	Macros          map[string][]MacroEvent
}

// DPI is one DPI stage: either Linked (same resolution on both axes) or
// Independent (distinct X/Y resolution).
type DPI struct {
	X, Y uint16
}

// LinkedDPI builds a DPI stage with matching X and Y resolution.
func LinkedDPI(dpi uint16) DPI { return DPI{X: dpi, Y: dpi} }

// IndependentDPI builds a DPI stage with distinct X and Y resolution.
func IndependentDPI(x, y uint16) DPI { return DPI{X: x, Y: y} }

// IsLinked reports whether the DPI stage has matching X and Y resolution.
func (d DPI) IsLinked() bool { return d.X == d.Y }

// Color is an RGB LED color.
type Color struct {
	Red, Green, Blue uint8
}

// KeyEvent is a single key press or release, used by combos and macros.
type KeyEvent struct {
	Key   keycode.KeyID
	State keycode.KeyState
}

// MacroEvent is a KeyEvent with the delay (in milliseconds) to wait before
// sending it.
type MacroEvent struct {
	KeyEvent KeyEvent
	DelayMs  uint16
}

// ActionKind identifies which variant of Action is populated.
type ActionKind int

const (
	ActionDisabled ActionKind = iota
	ActionLeftClick
	ActionRightClick
	ActionMiddleClick
	ActionBackClick
	ActionForwardClick
	ActionDpiLoop
	ActionDpiUp
	ActionDpiDown
	ActionDpiLock
	ActionPollRateLoop
	ActionWheelLeft
	ActionWheelRight
	ActionWheelUp
	ActionWheelDown
	ActionFire
	ActionCombo
	ActionMacro
)

// Action is a button mapping. Only the fields relevant to Kind are
// meaningful; the rest are zero.
type Action struct {
	Kind ActionKind

	DPI            uint16     // ActionDpiLock
	FireIntervalMs uint8      // ActionFire
	FireRepeat     uint8      // ActionFire
	ComboEvents    []KeyEvent // ActionCombo
	MacroName      string     // ActionMacro
}

// Disabled returns an Action that does nothing when the button is pressed.
func Disabled() Action { return Action{Kind: ActionDisabled} }

// LeftClick, RightClick, MiddleClick, BackClick, and ForwardClick return the
// five fixed mouse-button click actions.
func LeftClick() Action    { return Action{Kind: ActionLeftClick} }
func RightClick() Action   { return Action{Kind: ActionRightClick} }
func MiddleClick() Action  { return Action{Kind: ActionMiddleClick} }
func BackClick() Action    { return Action{Kind: ActionBackClick} }
func ForwardClick() Action { return Action{Kind: ActionForwardClick} }

// DpiLoop, DpiUp, and DpiDown cycle through the configured DPI stages.
func DpiLoop() Action { return Action{Kind: ActionDpiLoop} }
func DpiUp() Action   { return Action{Kind: ActionDpiUp} }
func DpiDown() Action { return Action{Kind: ActionDpiDown} }

// DpiLock sets the mouse to a fixed DPI value while the button is held.
func DpiLock(dpi uint16) Action { return Action{Kind: ActionDpiLock, DPI: dpi} }

// PollRateLoop cycles through the supported poll rates.
func PollRateLoop() Action { return Action{Kind: ActionPollRateLoop} }

// WheelLeft, WheelRight, WheelUp, and WheelDown emulate wheel scroll ticks.
func WheelLeft() Action  { return Action{Kind: ActionWheelLeft} }
func WheelRight() Action { return Action{Kind: ActionWheelRight} }
func WheelUp() Action    { return Action{Kind: ActionWheelUp} }
func WheelDown() Action  { return Action{Kind: ActionWheelDown} }

// Fire repeats a click at the given interval (ms) for repeat presses.
func Fire(intervalMs, repeat uint8) Action {
	return Action{Kind: ActionFire, FireIntervalMs: intervalMs, FireRepeat: repeat}
}

// Combo sends a fixed sequence of key events when the button is pressed.
func Combo(events []KeyEvent) Action {
	return Action{Kind: ActionCombo, ComboEvents: events}
}

// Macro runs a named macro (looked up in Profile.Macros) when the button is
// pressed.
func Macro(name string) Action {
	return Action{Kind: ActionMacro, MacroName: name}
}
