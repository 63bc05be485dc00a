package serialport

import (
	"fmt"
	"strings"

	"go.bug.st/serial"
)

// DefaultBaudRate matches the rate the Studio web client opens the CDC ACM port with.
// USB CDC devices ignore it, but UART bridges do not.
const DefaultBaudRate = 12500

// Options describes the serial connection parameters used when opening a port.
type Options struct {
	BaudRate int    `help:"Serial baud rate" default:"12500" env:"ZMKEXPORT_SERIAL_BAUD_RATE" json:"baudRate"`
	DataBits int    `help:"Serial data bits (5-8)" default:"8" env:"ZMKEXPORT_SERIAL_DATA_BITS" json:"dataBits"`
	StopBits int    `help:"Serial stop bits (1 or 2)" default:"1" env:"ZMKEXPORT_SERIAL_STOP_BITS" json:"stopBits"`
	Parity   string `help:"Serial parity (N, E or O)" default:"N" env:"ZMKEXPORT_SERIAL_PARITY" json:"parity"`
}

// Normalize validates the options and applies defaults for any unset values.
func (o Options) Normalize() (Options, error) {
	opts := o

	if opts.BaudRate <= 0 {
		opts.BaudRate = DefaultBaudRate
	}

	if opts.DataBits == 0 {
		opts.DataBits = 8
	}
	if opts.DataBits < 5 || opts.DataBits > 8 {
		return opts, fmt.Errorf("invalid data bits %d: must be between 5 and 8", opts.DataBits)
	}

	if opts.StopBits == 0 {
		opts.StopBits = 1
	}
	if opts.StopBits != 1 && opts.StopBits != 2 {
		return opts, fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", opts.StopBits)
	}

	parity := strings.TrimSpace(strings.ToUpper(opts.Parity))
	switch parity {
	case "", "N", "NONE":
		parity = "N"
	case "E", "EVEN":
		parity = "E"
	case "O", "ODD":
		parity = "O"
	default:
		return opts, fmt.Errorf("unsupported parity %q: expected N, E, or O", opts.Parity)
	}

	opts.Parity = parity
	return opts, nil
}

// SerialMode converts the options into the serial.Mode required by go.bug.st/serial.
func (o Options) SerialMode() (*serial.Mode, error) {
	opts, err := o.Normalize()
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
		StopBits: serial.OneStopBit,
	}
	if opts.StopBits == 2 {
		mode.StopBits = serial.TwoStopBits
	}

	switch opts.Parity {
	case "N":
		mode.Parity = serial.NoParity
	case "E":
		mode.Parity = serial.EvenParity
	case "O":
		mode.Parity = serial.OddParity
	}

	return mode, nil
}
