package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/zmkexport/internal/log"
	"github.com/Alia5/zmkexport/internal/serialport"
	"github.com/Alia5/zmkexport/studio"
)

// Device holds the flags shared by commands that talk to a keyboard.
type Device struct {
	Port           string             `help:"Serial port of the keyboard (auto-detected when empty)" short:"p" env:"ZMKEXPORT_PORT"`
	Serial         serialport.Options `embed:"" prefix:"serial."`
	RequestTimeout time.Duration      `help:"Timeout for each Studio RPC request" default:"5s" env:"ZMKEXPORT_REQUEST_TIMEOUT"`
}

var (
	detectPort = serialport.Detect
	openPort   = serialport.Open
)

// connect opens the serial port and starts a Studio client on it.
func (d *Device) connect(logger *slog.Logger, rawLogger log.RawLogger) (*studio.Client, error) {
	path := d.Port
	if path == "" {
		detected, err := detectPort()
		if err != nil {
			return nil, err
		}
		logger.Info("Detected ZMK keyboard", "port", detected)
		path = detected
	}

	port, err := openPort(path, d.Serial)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard port: %w", err)
	}
	logger.Debug("Serial port opened", "port", path, "baud", d.Serial.BaudRate)

	return studio.New(port, &studio.Config{RequestTimeout: d.RequestTimeout}, logger, rawLogger), nil
}
