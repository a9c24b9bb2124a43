package atlantis

import (
	"encoding/binary"
	"fmt"

	"github.com/atlantiscfg/atlantiscfg/device"
	"github.com/atlantiscfg/atlantiscfg/keycode"
	"github.com/atlantiscfg/atlantiscfg/profile"
)

// RawActionKind identifies which variant of RawAction a 3-byte button
// action payload encodes.
type RawActionKind uint8

const (
	RawDisabled RawActionKind = iota
	RawButton
	RawDpiLoop
	RawDpiUp
	RawDpiDown
	RawWheelLeft
	RawWheelRight
	RawFire
	RawCombo
	RawMacro
	RawPollRateLoop
	RawDpiLock
	RawWheelUp
	RawWheelDown
)

// RawAction is the decoded form of a button-action slot's 3-byte payload
// (before the trailing checksum byte).
type RawAction struct {
	Kind       RawActionKind
	ButtonID   uint8 // RawButton
	Interval   uint8 // RawFire
	Repeat     uint8 // RawFire
	MacroIndex uint8 // RawMacro
	DpiRaw     uint8 // RawDpiLock
}

// actionPayloadLen is the fixed size of a button-action payload, excluding
// its checksum byte.
const actionPayloadLen = 3

// EncodeRawAction renders a to its 3-byte wire payload.
func EncodeRawAction(a RawAction) [actionPayloadLen]byte {
	var b [actionPayloadLen]byte
	switch a.Kind {
	case RawDisabled:
		// all zero
	case RawButton:
		b[0], b[1] = 0x01, a.ButtonID
	case RawDpiLoop:
		b[0], b[1] = 0x02, 0x01
	case RawDpiUp:
		b[0], b[1] = 0x02, 0x02
	case RawDpiDown:
		b[0], b[1] = 0x02, 0x03
	case RawWheelLeft:
		b[0], b[1] = 0x03, 0x01
	case RawWheelRight:
		b[0], b[1] = 0x03, 0x02
	case RawFire:
		b[0], b[1], b[2] = 0x04, a.Interval, a.Repeat
	case RawCombo:
		b[0] = 0x05
	case RawMacro:
		b[0], b[1] = 0x06, a.MacroIndex
	case RawPollRateLoop:
		b[0] = 0x07
	case RawDpiLock:
		b[0], b[1] = 0x0A, a.DpiRaw
	case RawWheelUp:
		b[0], b[1] = 0x0B, 0x01
	case RawWheelDown:
		b[0], b[1] = 0x0B, 0x02
	}
	return b
}

// DecodeRawAction parses a 3-byte button-action payload.
func DecodeRawAction(b []byte) (RawAction, error) {
	if len(b) != actionPayloadLen {
		return RawAction{}, device.UnexpectedReport(fmt.Sprintf("action payload length %d, want %d", len(b), actionPayloadLen))
	}
	switch b[0] {
	case 0x00:
		return RawAction{Kind: RawDisabled}, nil
	case 0x01:
		return RawAction{Kind: RawButton, ButtonID: b[1]}, nil
	case 0x02:
		switch b[1] {
		case 0x01:
			return RawAction{Kind: RawDpiLoop}, nil
		case 0x02:
			return RawAction{Kind: RawDpiUp}, nil
		case 0x03:
			return RawAction{Kind: RawDpiDown}, nil
		}
	case 0x03:
		switch b[1] {
		case 0x01:
			return RawAction{Kind: RawWheelLeft}, nil
		case 0x02:
			return RawAction{Kind: RawWheelRight}, nil
		}
	case 0x04:
		return RawAction{Kind: RawFire, Interval: b[1], Repeat: b[2]}, nil
	case 0x05:
		return RawAction{Kind: RawCombo}, nil
	case 0x06:
		return RawAction{Kind: RawMacro, MacroIndex: b[1]}, nil
	case 0x07:
		return RawAction{Kind: RawPollRateLoop}, nil
	case 0x0A:
		return RawAction{Kind: RawDpiLock, DpiRaw: b[1]}, nil
	case 0x0B:
		switch b[1] {
		case 0x01:
			return RawAction{Kind: RawWheelUp}, nil
		case 0x02:
			return RawAction{Kind: RawWheelDown}, nil
		}
	}
	return RawAction{}, device.InvalidConversion(fmt.Sprintf("unknown action tag 0x%02x 0x%02x", b[0], b[1]))
}

// rawKeySubKind is the low nibble of a RawKeyEvent tag byte, selecting what
// its 2-byte little-endian value means.
type rawKeySubKind uint8

const (
	subModifier  rawKeySubKind = 1
	subHID       rawKeySubKind = 2
	subConsumer  rawKeySubKind = 4
	subDirection rawKeySubKind = 8
)

// RawKeyEvent is the decoded form of one 3-byte key event inside a combo or
// macro slot.
type RawKeyEvent struct {
	State   keycode.KeyState
	SubKind rawKeySubKind
	Value   uint16
}

// rawKeyEventLen is the fixed size of one RawKeyEvent.
const rawKeyEventLen = 3

// Direction values, little-endian on the wire, used only by the
// press/release-direction RawKeyEvent sub-kind.
const (
	directionLeft    uint16 = 1
	directionRight   uint16 = 2
	directionMiddle  uint16 = 4
	directionBack    uint16 = 8
	directionForward uint16 = 16
)

// Encode renders e to its 3-byte wire form.
func (e RawKeyEvent) Encode() [rawKeyEventLen]byte {
	var b [rawKeyEventLen]byte
	nibble := uint8(0x80)
	if e.State == keycode.Released {
		nibble = 0x40
	}
	b[0] = nibble | uint8(e.SubKind)
	binary.LittleEndian.PutUint16(b[1:3], e.Value)
	return b
}

// DecodeRawKeyEvent parses a 3-byte key event.
func DecodeRawKeyEvent(b []byte) (RawKeyEvent, error) {
	if len(b) != rawKeyEventLen {
		return RawKeyEvent{}, device.UnexpectedReport(fmt.Sprintf("key event length %d, want %d", len(b), rawKeyEventLen))
	}
	var state keycode.KeyState
	switch b[0] & 0xF0 {
	case 0x80:
		state = keycode.Pressed
	case 0x40:
		state = keycode.Released
	default:
		return RawKeyEvent{}, device.InvalidConversion(fmt.Sprintf("unknown key event tag 0x%02x", b[0]))
	}
	sub := rawKeySubKind(b[0] & 0x0F)
	switch sub {
	case subModifier, subHID, subConsumer, subDirection:
	default:
		return RawKeyEvent{}, device.InvalidConversion(fmt.Sprintf("unknown key event sub-kind in tag 0x%02x", b[0]))
	}
	return RawKeyEvent{State: state, SubKind: sub, Value: binary.LittleEndian.Uint16(b[1:3])}, nil
}

// keyEventToRaw converts a user-facing KeyEvent to its wire form.
func keyEventToRaw(e profile.KeyEvent) (RawKeyEvent, error) {
	if bit, ok := keycode.ModifierBit(e.Key); ok {
		return RawKeyEvent{State: e.State, SubKind: subModifier, Value: uint16(bit)}, nil
	}
	if e.Key.IsDirection() {
		value, err := directionValueFor(e.Key)
		if err != nil {
			return RawKeyEvent{}, err
		}
		return RawKeyEvent{State: e.State, SubKind: subDirection, Value: value}, nil
	}
	if usage, ok := e.Key.HIDUsage(); ok {
		return RawKeyEvent{State: e.State, SubKind: subHID, Value: usage}, nil
	}
	return RawKeyEvent{}, device.InvalidConversion(fmt.Sprintf("key %v has no wire encoding", e.Key))
}

func directionValueFor(key keycode.KeyID) (uint16, error) {
	switch key {
	case keycode.ArrowLeft:
		return directionLeft, nil
	case keycode.ArrowRight:
		return directionRight, nil
	case keycode.ArrowDown:
		return directionBack, nil
	case keycode.ArrowUp:
		return directionForward, nil
	default:
		return 0, device.InvalidConversion(fmt.Sprintf("key %v is not a direction key", key))
	}
}

// rawToKeyEvent converts a wire RawKeyEvent to a user-facing KeyEvent.
func rawToKeyEvent(r RawKeyEvent) (profile.KeyEvent, error) {
	switch r.SubKind {
	case subModifier:
		key, ok := keycode.ModifierFromBit(uint8(r.Value))
		if !ok {
			return profile.KeyEvent{}, device.InvalidConversion(fmt.Sprintf("invalid modifier bitmask 0x%02x", r.Value))
		}
		return profile.KeyEvent{Key: key, State: r.State}, nil
	case subHID:
		key := keycode.KeyID(r.Value)
		if usage, ok := key.HIDUsage(); !ok || usage != r.Value {
			return profile.KeyEvent{}, device.InvalidConversion(fmt.Sprintf("unmapped HID usage 0x%02x", r.Value))
		}
		return profile.KeyEvent{Key: key, State: r.State}, nil
	case subConsumer:
		return profile.KeyEvent{}, device.InvalidConversion("consumer-control key codes are not supported")
	case subDirection:
		key, err := keyForDirectionValue(r.Value)
		if err != nil {
			return profile.KeyEvent{}, err
		}
		return profile.KeyEvent{Key: key, State: r.State}, nil
	default:
		return profile.KeyEvent{}, device.InvalidConversion(fmt.Sprintf("unknown key event sub-kind %d", r.SubKind))
	}
}

func keyForDirectionValue(v uint16) (keycode.KeyID, error) {
	switch v {
	case directionLeft:
		return keycode.ArrowLeft, nil
	case directionRight:
		return keycode.ArrowRight, nil
	case directionMiddle:
		return keycode.None, nil
	case directionBack:
		return keycode.ArrowDown, nil
	case directionForward:
		return keycode.ArrowUp, nil
	default:
		return keycode.None, device.InvalidConversion(fmt.Sprintf("unknown direction value %d", v))
	}
}

// RawMacroEvent is a RawKeyEvent with the delay, in milliseconds, to wait
// before it, as stored in a macro slot.
type RawMacroEvent struct {
	KeyEvent RawKeyEvent
	DelayMs  uint16
}

// rawMacroEventLen is the fixed size of one RawMacroEvent.
const rawMacroEventLen = rawKeyEventLen + 2

func (e RawMacroEvent) encode() [rawMacroEventLen]byte {
	var b [rawMacroEventLen]byte
	key := e.KeyEvent.Encode()
	copy(b[:rawKeyEventLen], key[:])
	binary.BigEndian.PutUint16(b[rawKeyEventLen:], e.DelayMs)
	return b
}

func decodeRawMacroEvent(b []byte) (RawMacroEvent, error) {
	if len(b) != rawMacroEventLen {
		return RawMacroEvent{}, device.UnexpectedReport(fmt.Sprintf("macro event length %d, want %d", len(b), rawMacroEventLen))
	}
	key, err := DecodeRawKeyEvent(b[:rawKeyEventLen])
	if err != nil {
		return RawMacroEvent{}, err
	}
	return RawMacroEvent{KeyEvent: key, DelayMs: binary.BigEndian.Uint16(b[rawKeyEventLen:])}, nil
}

// maxComboEvents is the largest number of key events a combo slot can hold.
const maxComboEvents = 6

// comboPayloadLen is the fixed payload size of a combo slot, excluding its
// checksum byte (32-byte slot minus 1 checksum byte).
const comboPayloadLen = 31

// RawCombo is the decoded contents of a combo slot.
type RawCombo struct {
	Events []RawKeyEvent
}

// Encode renders c to its fixed-length combo payload.
func (c RawCombo) Encode() ([comboPayloadLen]byte, error) {
	var b [comboPayloadLen]byte
	if len(c.Events) > maxComboEvents {
		return b, device.InvalidConversion(fmt.Sprintf("combo has %d events, max %d", len(c.Events), maxComboEvents))
	}
	b[0] = uint8(len(c.Events))
	for i, e := range c.Events {
		wire := e.Encode()
		copy(b[1+i*rawKeyEventLen:], wire[:])
	}
	return b, nil
}

// DecodeRawCombo parses a combo slot's payload.
func DecodeRawCombo(b []byte) (RawCombo, error) {
	if len(b) != comboPayloadLen {
		return RawCombo{}, device.UnexpectedReport(fmt.Sprintf("combo payload length %d, want %d", len(b), comboPayloadLen))
	}
	count := int(b[0])
	if count > maxComboEvents {
		return RawCombo{}, device.InvalidConversion(fmt.Sprintf("combo declares %d events, max %d", count, maxComboEvents))
	}
	events := make([]RawKeyEvent, count)
	for i := range events {
		off := 1 + i*rawKeyEventLen
		e, err := DecodeRawKeyEvent(b[off : off+rawKeyEventLen])
		if err != nil {
			return RawCombo{}, err
		}
		events[i] = e
	}
	return RawCombo{Events: events}, nil
}

// maxMacroEvents is the largest number of events a macro slot can hold.
const maxMacroEvents = 70

// macroNameFieldLen is the fixed, zero-padded width of a macro's name field.
const macroNameFieldLen = 30

// macroPayloadLen is the fixed payload size of a macro slot, excluding its
// checksum byte (384-byte slot minus 1 checksum byte). The final byte after
// the event area is unused and always zero.
const macroPayloadLen = 1 + macroNameFieldLen + 1 + maxMacroEvents*rawMacroEventLen + 1

// RawMacro is the decoded contents of a macro slot.
type RawMacro struct {
	Name   string
	Events []RawMacroEvent
}

// Encode renders m to its fixed-length macro payload.
func (m RawMacro) Encode() ([macroPayloadLen]byte, error) {
	var b [macroPayloadLen]byte
	if len(m.Name) > macroNameFieldLen {
		return b, device.InvalidConversion(fmt.Sprintf("macro name %q longer than %d bytes", m.Name, macroNameFieldLen))
	}
	if len(m.Events) > maxMacroEvents {
		return b, device.InvalidConversion(fmt.Sprintf("macro %q has %d events, max %d", m.Name, len(m.Events), maxMacroEvents))
	}
	b[0] = uint8(len(m.Name))
	copy(b[1:1+macroNameFieldLen], m.Name)
	b[1+macroNameFieldLen] = uint8(len(m.Events))
	eventsOff := 1 + macroNameFieldLen + 1
	for i, e := range m.Events {
		wire := e.encode()
		copy(b[eventsOff+i*rawMacroEventLen:], wire[:])
	}
	return b, nil
}

// DecodeRawMacro parses a macro slot's payload.
func DecodeRawMacro(b []byte) (RawMacro, error) {
	if len(b) != macroPayloadLen {
		return RawMacro{}, device.UnexpectedReport(fmt.Sprintf("macro payload length %d, want %d", len(b), macroPayloadLen))
	}
	nameLen := int(b[0])
	if nameLen > macroNameFieldLen {
		return RawMacro{}, device.InvalidConversion(fmt.Sprintf("macro declares name length %d, max %d", nameLen, macroNameFieldLen))
	}
	name := string(b[1 : 1+nameLen])
	eventCount := int(b[1+macroNameFieldLen])
	if eventCount > maxMacroEvents {
		return RawMacro{}, device.InvalidConversion(fmt.Sprintf("macro %q declares %d events, max %d", name, eventCount, maxMacroEvents))
	}
	eventsOff := 1 + macroNameFieldLen + 1
	events := make([]RawMacroEvent, eventCount)
	for i := range events {
		off := eventsOff + i*rawMacroEventLen
		e, err := decodeRawMacroEvent(b[off : off+rawMacroEventLen])
		if err != nil {
			return RawMacro{}, err
		}
		events[i] = e
	}
	return RawMacro{Name: name, Events: events}, nil
}

// RawDpi is a DPI stage's 3-byte payload (X, Y, and one padding byte).
type RawDpi struct {
	X, Y uint8
}

func (d RawDpi) encode() [3]byte { return [3]byte{d.X, d.Y, 0} }

func decodeRawDpi(b []byte) (RawDpi, error) {
	if len(b) != 3 {
		return RawDpi{}, device.UnexpectedReport(fmt.Sprintf("dpi payload length %d, want 3", len(b)))
	}
	return RawDpi{X: b[0], Y: b[1]}, nil
}

// RawColor is an RGB color's 3-byte payload.
type RawColor struct {
	Red, Green, Blue uint8
}

func (c RawColor) encode() [3]byte { return [3]byte{c.Red, c.Green, c.Blue} }

func decodeRawColor(b []byte) (RawColor, error) {
	if len(b) != 3 {
		return RawColor{}, device.UnexpectedReport(fmt.Sprintf("color payload length %d, want 3", len(b)))
	}
	return RawColor{Red: b[0], Green: b[1], Blue: b[2]}, nil
}

// dpiToRaw converts a DPI value to its wire byte: (dpi/50)-1, saturating at
// zero and at 255 rather than wrapping.
func dpiToRaw(dpi uint16) uint8 {
	step := dpi / 50
	if step == 0 {
		return 0
	}
	if step-1 > 0xFF {
		return 0xFF
	}
	return uint8(step - 1)
}

// dpiFromRaw converts a wire byte back to a DPI value.
func dpiFromRaw(raw uint8) uint16 {
	return (uint16(raw) + 1) * 50
}
