package cmd

import (
	"errors"
	"os"

	"github.com/atlantiscfg/atlantiscfg/internal/configpaths"
	"github.com/atlantiscfg/atlantiscfg/profile"
)

// ConfigCommand groups configuration-file helper subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Write a starter profile template"`
}

// ConfigInit scaffolds a profile template file in the requested format, so
// a user has something to edit rather than writing one from scratch.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to ./profile.<ext>)" type:"path"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run executes the config init command.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)

	dest := c.Output
	if dest == "" {
		dest = "profile." + format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := marshalProfile(format, templateProfile())
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// templateProfile is a small, representative starting point: a 1000 Hz poll
// rate, three DPI stages, the three fixed click actions bound to their usual
// buttons, everything else left unset so writing it changes nothing the
// user didn't ask for.
func templateProfile() *profile.Profile {
	pollRate := uint16(1000)
	return &profile.Profile{
		PollRate: &pollRate,
		DPIs: []profile.DPI{
			profile.LinkedDPI(800),
			profile.LinkedDPI(1600),
			profile.LinkedDPI(3200),
		},
		ButtonActions: []profile.Action{
			profile.LeftClick(),
			profile.RightClick(),
			profile.MiddleClick(),
		},
	}
}
