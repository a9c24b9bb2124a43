package device

import (
	"fmt"

	"github.com/karalabe/hid"
)

// HIDDevice is the subset of *hid.Device this driver depends on, so tests
// can substitute a fake transport.
type HIDDevice interface {
	Write(b []byte) (int, error)
	Read(b []byte) (int, error)
	Close() error
}

// Discover opens the first HID device whose vendor ID matches VendorID and
// whose product ID is in KnownProducts. If force is true, any device with a
// matching vendor ID is accepted regardless of product ID (the caller is
// expected to know what it's doing). It returns ErrNoDevice when nothing
// matches.
func Discover(force bool) (HIDDevice, Product, error) {
	infos := hid.Enumerate(VendorID, 0)
	for _, info := range infos {
		product, known := LookupProduct(info.ProductID)
		if !known && !force {
			continue
		}
		dev, err := info.Open()
		if err != nil {
			return nil, Product{}, Hid(err)
		}
		if !known {
			product = Product{ID: info.ProductID, Name: "unknown", NumButtons: 16, MaxPollRate: 1000}
		}
		return dev, product, nil
	}
	return nil, Product{}, NoDevice(fmt.Sprintf("no Atlantis-family device (vendor 0x%04x) found", VendorID))
}
