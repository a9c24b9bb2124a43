package atlantis

import (
	"fmt"

	"github.com/atlantiscfg/atlantiscfg/device"
	"github.com/atlantiscfg/atlantiscfg/profile"
)

// numProfiles is how many profile slots every Atlantis-family mouse exposes.
const numProfiles = 4

// Mouse is the high-level façade over a single connected device: it hides
// the active-profile switch dance and per-product capability clamping
// behind plain read/write-a-profile operations.
type Mouse struct {
	transport *Transport
	product   device.Product
}

// NewMouse wraps an open transport for the given product.
func NewMouse(transport *Transport, product device.Product) *Mouse {
	return &Mouse{transport: transport, product: product}
}

// Product returns the product this mouse was identified as.
func (m *Mouse) Product() device.Product { return m.product }

// Close releases the underlying device handle.
func (m *Mouse) Close() error { return m.transport.Close() }

func validateProfileIndex(index uint8) error {
	if index >= numProfiles {
		return device.InvalidConversion(fmt.Sprintf("profile index %d out of range 0..%d", index, numProfiles-1))
	}
	return nil
}

// ActiveProfile returns the index of the currently active profile.
func (m *Mouse) ActiveProfile() (uint8, error) {
	resp, err := m.transport.MakeRequest(NewReadActiveProfile())
	if err != nil {
		return 0, err
	}
	return resp.Data[0], nil
}

// SetActiveProfile switches the device to profile index.
func (m *Mouse) SetActiveProfile(index uint8) error {
	if err := validateProfileIndex(index); err != nil {
		return err
	}
	_, err := m.transport.MakeRequest(NewWriteActiveProfile(index))
	return err
}

// withProfile switches to index for the duration of fn, then restores
// whatever profile was active beforehand — whether or not fn succeeded.
func (m *Mouse) withProfile(index uint8, fn func() error) error {
	if err := validateProfileIndex(index); err != nil {
		return err
	}
	original, err := m.ActiveProfile()
	if err != nil {
		return err
	}

	if original != index {
		if err := m.SetActiveProfile(index); err != nil {
			return err
		}
	}

	opErr := fn()

	if original != index {
		if restoreErr := m.SetActiveProfile(original); restoreErr != nil {
			if opErr != nil {
				return fmt.Errorf("%w (also failed restoring active profile %d: %v)", opErr, original, restoreErr)
			}
			return fmt.Errorf("failed restoring active profile %d: %w", original, restoreErr)
		}
	}

	return opErr
}

// ReadProfile reads profile slot index and decodes it to user-facing form.
func (m *Mouse) ReadProfile(index uint8) (*profile.Profile, []string, error) {
	var (
		result   *profile.Profile
		warnings []string
	)
	err := m.withProfile(index, func() error {
		raw, err := ReadRawProfile(m.transport, m.product.NumButtons)
		if err != nil {
			return err
		}
		result, warnings, err = RawToProfile(raw)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return result, warnings, nil
}

// WriteProfile encodes p and writes it to profile slot index, clamping any
// field that exceeds this mouse's product capability.
func (m *Mouse) WriteProfile(index uint8, p *profile.Profile) ([]string, error) {
	clamped, warnings := m.clampToProduct(p)

	raw, convWarnings, err := ProfileToRaw(clamped, m.product.NumButtons)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, convWarnings...)

	err = m.withProfile(index, func() error {
		return raw.WriteToMouse(m.transport, m.product.NumButtons)
	})
	if err != nil {
		return nil, err
	}
	return warnings, nil
}

// clampToProduct returns a copy of p with any field outside this mouse's
// product capability clamped to its maximum, and a warning recorded for
// each clamp applied. p itself is never mutated.
func (m *Mouse) clampToProduct(p *profile.Profile) (*profile.Profile, []string) {
	var warnings []string
	clamped := *p

	if p.PollRate != nil && *p.PollRate > m.product.MaxPollRate {
		warnings = append(warnings, fmt.Sprintf("poll rate %dHz exceeds %s's maximum of %dHz, clamping",
			*p.PollRate, m.product.Name, m.product.MaxPollRate))
		rate := m.product.MaxPollRate
		clamped.PollRate = &rate
	}

	if n := uint8(len(p.ButtonActions)); n > m.product.NumButtons {
		warnings = append(warnings, fmt.Sprintf("profile defines %d button actions, but %s has only %d buttons, truncating",
			n, m.product.Name, m.product.NumButtons))
		clamped.ButtonActions = p.ButtonActions[:m.product.NumButtons]
	}

	return &clamped, warnings
}

// ReadAllProfiles reads every profile slot the device exposes, in order.
func (m *Mouse) ReadAllProfiles() ([]*profile.Profile, []string, error) {
	profiles := make([]*profile.Profile, numProfiles)
	var warnings []string
	for i := uint8(0); i < numProfiles; i++ {
		p, w, err := m.ReadProfile(i)
		if err != nil {
			return nil, nil, fmt.Errorf("profile %d: %w", i, err)
		}
		profiles[i] = p
		for _, msg := range w {
			warnings = append(warnings, fmt.Sprintf("profile %d: %s", i, msg))
		}
	}
	return profiles, warnings, nil
}

// WriteAllProfiles writes profiles to slots 0..len(profiles)-1. It does not
// touch any slot beyond the end of profiles.
func (m *Mouse) WriteAllProfiles(profiles []*profile.Profile) ([]string, error) {
	if len(profiles) > numProfiles {
		return nil, device.InvalidConversion(fmt.Sprintf("%d profiles given, device has only %d slots", len(profiles), numProfiles))
	}
	var warnings []string
	for i, p := range profiles {
		w, err := m.WriteProfile(uint8(i), p)
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		for _, msg := range w {
			warnings = append(warnings, fmt.Sprintf("profile %d: %s", i, msg))
		}
	}
	return warnings, nil
}
