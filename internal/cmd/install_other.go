//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

var errInstallUnsupported = errors.New("install is only needed on Linux; other systems grant serial access by default")

func install(*slog.Logger) error   { return errInstallUnsupported }
func uninstall(*slog.Logger) error { return errInstallUnsupported }
