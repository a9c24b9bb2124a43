// Package cmd holds the atlantiscfg CLI's kong command tree.
package cmd

import (
	"github.com/atlantiscfg/atlantiscfg/device/atlantis"
)

// MouseOpener lazily opens the connected mouse. Commands that don't touch
// hardware (config init) never call it, so they work with no device
// attached.
type MouseOpener func() (*atlantis.Mouse, error)

// LogOptions are the logging flags shared by every subcommand.
type LogOptions struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error"`
	File    string `help:"Write logs to this file instead of stdout/stderr" type:"path"`
	RawFile string `help:"Write raw HID report hex dumps to this file" type:"path"`
}

// CLI is the root command: global flags plus the get/set/active/config
// subcommand tree.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a CLI config file (json/yaml/toml)" type:"path"`
	Force      bool       `help:"Continue even if the connected product isn't a recognised Atlantis-family device"`
	Log        LogOptions `embed:"" prefix:"log-"`

	Get       GetCmd        `cmd:"" help:"Print a profile"`
	Set       SetCmd        `cmd:"" help:"Write a profile from a file"`
	GetActive GetActiveCmd  `cmd:"" help:"Print the active profile index"`
	SetActive SetActiveCmd  `cmd:"" help:"Set the active profile index"`
	Config    ConfigCommand `cmd:"" help:"Configuration file helpers"`
}
