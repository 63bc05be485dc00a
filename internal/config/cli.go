// Package config defines the command line and configuration file surface.
package config

import "github.com/Alia5/zmkexport/internal/cmd"

// CLI is the root of the kong command tree.
type CLI struct {
	ConfigFile string `help:"Path to a JSON, YAML or TOML configuration file" name:"config" env:"ZMKEXPORT_CONFIG" type:"path"`
	Log        Log    `embed:"" prefix:"log."`

	Export    cmd.Export        `cmd:"" default:"withargs" help:"Export the keymap of a connected keyboard (default)"`
	Info      cmd.Info          `cmd:"" help:"Show the connected keyboard's name, serial number and lock state"`
	Ports     cmd.Ports         `cmd:"" help:"List serial ports"`
	Config    cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
	Install   cmd.Install       `cmd:"" help:"Install a udev rule granting access to ZMK keyboards (Linux)"`
	Uninstall cmd.Uninstall     `cmd:"" help:"Remove the udev rule installed by install (Linux)"`
}

// Log configures logging.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"ZMKEXPORT_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"ZMKEXPORT_LOG_FILE"`
	RawFile string `help:"Write a hex dump of every Studio frame to this file" env:"ZMKEXPORT_LOG_RAW_FILE"`
}
