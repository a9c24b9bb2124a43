package keycode

// Modifier bitmasks, one bit per modifier key. The Atlantis wire protocol
// only ever sets exactly one of these per RawKeyEvent.
const (
	ModControlLeft  uint8 = 0x01
	ModShiftLeft    uint8 = 0x02
	ModAltLeft      uint8 = 0x04
	ModMetaLeft     uint8 = 0x08
	ModControlRight uint8 = 0x10
	ModShiftRight   uint8 = 0x20
	ModAltRight     uint8 = 0x40
	ModMetaRight    uint8 = 0x80
)

var modifierToBit = map[KeyID]uint8{
	ControlLeft:  ModControlLeft,
	ShiftLeft:    ModShiftLeft,
	AltLeft:      ModAltLeft,
	MetaLeft:     ModMetaLeft,
	ControlRight: ModControlRight,
	ShiftRight:   ModShiftRight,
	AltRight:     ModAltRight,
	MetaRight:    ModMetaRight,
}

var bitToModifier = func() map[uint8]KeyID {
	m := make(map[uint8]KeyID, len(modifierToBit))
	for k, v := range modifierToBit {
		m[v] = k
	}
	return m
}()

// ModifierBit returns the single-bit wire encoding for a modifier key, and
// false if id does not name a modifier.
func ModifierBit(id KeyID) (uint8, bool) {
	bit, ok := modifierToBit[id]
	return bit, ok
}

// ModifierFromBit resolves a single-bit modifier mask back to a KeyID. It
// only accepts masks with exactly one bit set, matching the device's
// restriction of one modifier per event.
func ModifierFromBit(bit uint8) (KeyID, bool) {
	if bit == 0 || bit&(bit-1) != 0 {
		return None, false
	}
	id, ok := bitToModifier[bit]
	return id, ok
}
