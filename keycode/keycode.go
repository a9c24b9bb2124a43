// Package keycode maps between human-readable key identifiers and the USB
// HID usage codes the Atlantis wire protocol carries.
//
// Standard keys are numbered by their USB HID keyboard/keypad usage ID, so
// KeyID is a 1:1 stand-in for the usage code on the wire. Modifier keys and
// directional (arrow) keys don't have a single HID usage each on this
// protocol — the mouse encodes them as distinct RawKeyId sub-kinds — so
// they're given synthetic ranges above the HID usage page (which tops out
// at 0xE7 for the keyboard page) to keep KeyID a single flat type.
package keycode

// KeyID identifies a key that can appear in a combo or macro event.
type KeyID uint16

// None represents the absence of a mapped key (the mouse's "Middle"
// direction has no keyboard equivalent).
const None KeyID = 0

// Modifier keys. The wire protocol only allows a single modifier bit per
// event, so each left/right modifier gets its own KeyID rather than being
// expressed as a bitmask here.
const (
	ControlLeft KeyID = 0x1000 + iota
	ShiftLeft
	AltLeft
	MetaLeft
	ControlRight
	ShiftRight
	AltRight
	MetaRight
)

// Directional keys, a distinct sub-kind on the wire (tag low-nibble 0x8),
// used by the mouse's scroll-wheel direction buttons rather than a real
// keyboard key.
const (
	ArrowLeft KeyID = 0x2000 + iota
	ArrowRight
	ArrowUp
	ArrowDown
)

// Standard keys, numbered by USB HID keyboard/keypad usage ID.
const (
	KeyA KeyID = 0x04 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEqual
	KeyLeftBrace
	KeyRightBrace
	KeyBackslash
	KeyNonUSHash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyCapsLock

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown

	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	KeyNumLock
	KeyKpSlash
	KeyKpAsterisk
	KeyKpMinus
	KeyKpPlus
	KeyKpEnter
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKp0
	KeyKpDot

	KeyNonUSBackslash
	KeyApplication
	KeyPower
	KeyKpEqual

	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

// Name maps a KeyID to a human-readable name, used by the text profile
// codec. Keys not present here (e.g. unmapped HID usages) render as a
// hex fallback by the caller.
var Name = map[KeyID]string{
	ControlLeft:  "ControlLeft",
	ShiftLeft:    "ShiftLeft",
	AltLeft:      "AltLeft",
	MetaLeft:     "MetaLeft",
	ControlRight: "ControlRight",
	ShiftRight:   "ShiftRight",
	AltRight:     "AltRight",
	MetaRight:    "MetaRight",

	ArrowLeft:  "ArrowLeft",
	ArrowRight: "ArrowRight",
	ArrowUp:    "ArrowUp",
	ArrowDown:  "ArrowDown",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyLeftBrace:  "LeftBrace",
	KeyRightBrace: "RightBrace",
	KeyBackslash:  "Backslash",
	KeyNonUSHash:  "NonUSHash",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeyCapsLock:   "CapsLock",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",

	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",

	KeyNumLock:    "NumLock",
	KeyKpSlash:    "KpSlash",
	KeyKpAsterisk: "KpAsterisk",
	KeyKpMinus:    "KpMinus",
	KeyKpPlus:     "KpPlus",
	KeyKpEnter:    "KpEnter",
	KeyKp1:        "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp4: "Kp4", KeyKp5: "Kp5",
	KeyKp6: "Kp6", KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9", KeyKp0: "Kp0",
	KeyKpDot: "KpDot",

	KeyNonUSBackslash: "NonUSBackslash",
	KeyApplication:    "Application",
	KeyPower:          "Power",
	KeyKpEqual:        "KpEqual",
}

var byName = func() map[string]KeyID {
	m := make(map[string]KeyID, len(Name))
	for id, name := range Name {
		m[name] = id
	}
	return m
}()

// ByName resolves a key name produced by Name back to a KeyID.
func ByName(name string) (KeyID, bool) {
	id, ok := byName[name]
	return id, ok
}

// IsModifier reports whether id names one of the eight single-bit modifier
// keys rather than a standard or directional key.
func (id KeyID) IsModifier() bool {
	return id >= ControlLeft && id <= MetaRight
}

// IsDirection reports whether id names one of the wheel-direction keys.
func (id KeyID) IsDirection() bool {
	return id >= ArrowLeft && id <= ArrowDown
}

// HIDUsage returns the USB HID keyboard/keypad usage code for a standard
// key, and false for modifiers, directions, and None.
func (id KeyID) HIDUsage() (uint16, bool) {
	if id.IsModifier() || id.IsDirection() || id == None {
		return 0, false
	}
	return uint16(id), true
}

// KeyState is whether a key event is a press or a release.
type KeyState int

const (
	Pressed KeyState = iota
	Released
)

func (s KeyState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}
