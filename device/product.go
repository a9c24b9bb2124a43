package device

// VendorID is the USB vendor ID shared by every Atlantis-family mouse.
const VendorID uint16 = 0x3554

// Product describes the per-model capabilities the façade clamps writes to.
type Product struct {
	ID          uint16
	Name        string
	NumButtons  uint8
	MaxPollRate uint16
}

// KnownProducts lists the Atlantis-family product IDs this driver recognises,
// carried over from the upstream driver's supported-products table.
var KnownProducts = []Product{
	{ID: 0xf50d, Name: "Atlantis", NumButtons: 8, MaxPollRate: 1000},
	{ID: 0xf50f, Name: "Atlantis Pro", NumButtons: 10, MaxPollRate: 4000},
}

// LookupProduct returns the Product entry for id, and false if id is not in
// KnownProducts.
func LookupProduct(id uint16) (Product, bool) {
	for _, p := range KnownProducts {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
