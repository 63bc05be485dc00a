package cmd

import "log/slog"

// Install sets up permissions so the keyboard's serial port is usable without root.
type Install struct{}

// Run is called by Kong when the install command is executed.
func (i *Install) Run(logger *slog.Logger) error { return install(logger) }

// Uninstall removes what Install set up.
type Uninstall struct{}

// Run is called by Kong when the uninstall command is executed.
func (u *Uninstall) Run(logger *slog.Logger) error { return uninstall(logger) }
