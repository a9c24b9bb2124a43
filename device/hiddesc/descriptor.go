// Package hiddesc scans a raw USB HID report descriptor for the items this
// driver cares about, without building a full descriptor parser.
package hiddesc

import "fmt"

// longItemPrefix marks a long-form item (HID 1.11 §6.2.2.3). No device this
// driver targets emits one; encountering it is treated as unimplemented
// rather than guessed at.
const longItemPrefix = 0xFE

// reportIDItemPrefix is the one-byte prefix of a Report ID global item
// (tag 0x8, type Global, size class 1 — 1000_01_01).
const reportIDItemPrefix = 0b1000_0101

// itemSizes maps an item prefix's low 2 bits (the size class) to the number
// of data bytes that follow the prefix byte.
var itemSizes = [4]int{0: 0, 1: 1, 2: 2, 3: 4}

// HasReportID reports whether the descriptor contains a Report ID global
// item whose single data byte equals id. An error is returned if the
// descriptor is malformed (truncated item, or a long item, which this
// scanner does not support).
func HasReportID(descriptor []byte, id uint8) (bool, error) {
	found := false
	err := scan(descriptor, func(prefix uint8, data []byte) {
		if prefix == reportIDItemPrefix && len(data) == 1 && data[0] == id {
			found = true
		}
	})
	return found, err
}

// scan walks every short item in descriptor, calling visit with the item's
// prefix byte and data bytes.
func scan(descriptor []byte, visit func(prefix uint8, data []byte)) error {
	i := 0
	for i < len(descriptor) {
		prefix := descriptor[i]
		if prefix == longItemPrefix {
			return fmt.Errorf("hiddesc: long items are not implemented (at offset %d)", i)
		}
		size := itemSizes[prefix&0x03]
		i++
		if i+size > len(descriptor) {
			return fmt.Errorf("hiddesc: truncated item at offset %d: need %d bytes, have %d", i-1, size, len(descriptor)-i)
		}
		visit(prefix, descriptor[i:i+size])
		i += size
	}
	return nil
}
