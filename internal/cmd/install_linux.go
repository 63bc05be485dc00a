//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/Alia5/zmkexport/internal/serialport"
)

var udevRulePath = "/etc/udev/rules.d/70-zmk-studio.rules"

// runUdevadm is replaced in tests.
var runUdevadm = func(args ...string) error {
	cmd := exec.Command("udevadm", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("udevadm %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

func install(logger *slog.Logger) error {
	if err := os.WriteFile(udevRulePath, []byte(udevRuleContent()), 0o644); err != nil {
		return err
	}

	steps := [][]string{
		{"control", "--reload-rules"},
		{"trigger", "--subsystem-match=tty"},
	}
	for _, args := range steps {
		if err := runUdevadm(args...); err != nil {
			return err
		}
	}

	logger.Info("ZMK Studio udev rule installed", "path", udevRulePath)
	logger.Info("Reconnect the keyboard if it was already plugged in")
	return nil
}

func uninstall(logger *slog.Logger) error {
	var errs []error

	if err := os.Remove(udevRulePath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	if err := runUdevadm("control", "--reload-rules"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info("ZMK Studio udev rule removed", "path", udevRulePath)
	return nil
}

func udevRuleContent() string {
	return fmt.Sprintf(`# Grants the logged-in user access to ZMK keyboards' Studio serial port.
SUBSYSTEM=="tty", ATTRS{idVendor}=="%s", ATTRS{idProduct}=="%s", MODE="0660", TAG+="uaccess"
`, serialport.ZMKVendorID, serialport.ZMKProductID)
}
