package cmd

import (
	"fmt"
	"log/slog"
)

// GetCmd reads one profile slot from the connected mouse and prints it.
type GetCmd struct {
	Profile uint8  `help:"Profile index, zero-based (0-3)" default:"0"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
}

// Run executes the get command.
func (c *GetCmd) Run(logger *slog.Logger, open MouseOpener) error {
	m, err := open()
	if err != nil {
		return err
	}
	defer m.Close()

	p, warnings, err := m.ReadProfile(c.Profile)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	data, err := marshalProfile(c.Format, p)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
