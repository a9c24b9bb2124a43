package cmd

import "fmt"

// GetActiveCmd prints the currently active profile index.
type GetActiveCmd struct{}

// Run executes the get-active command.
func (c *GetActiveCmd) Run(open MouseOpener) error {
	m, err := open()
	if err != nil {
		return err
	}
	defer m.Close()

	idx, err := m.ActiveProfile()
	if err != nil {
		return err
	}
	fmt.Println(idx)
	return nil
}

// SetActiveCmd switches the device to a different profile slot.
type SetActiveCmd struct {
	Index uint8 `arg:"" help:"Profile index, zero-based (0-3)"`
}

// Run executes the set-active command.
func (c *SetActiveCmd) Run(open MouseOpener) error {
	m, err := open()
	if err != nil {
		return err
	}
	defer m.Close()
	return m.SetActiveProfile(c.Index)
}
