package cmd

import (
	"fmt"
	"log/slog"
	"os"
)

// SetCmd reads a profile from a file and writes it to one profile slot.
type SetCmd struct {
	Profile uint8  `help:"Profile index, zero-based (0-3)" default:"0"`
	File    string `arg:"" help:"Path to a profile file (json/yaml/toml, detected by extension)" type:"existingfile"`
	Format  string `help:"Override the format instead of detecting it from the file extension" enum:",json,yaml,toml" default:""`
}

// Run executes the set command.
func (c *SetCmd) Run(logger *slog.Logger, open MouseOpener) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	format := c.Format
	if format == "" {
		format = formatFromExtension(c.File)
	}
	p, err := unmarshalProfile(format, data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.File, err)
	}

	m, err := open()
	if err != nil {
		return err
	}
	defer m.Close()

	warnings, err := m.WriteProfile(c.Profile, p)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w)
	}
	return nil
}
