// Package serialport opens and discovers the serial ports ZMK keyboards expose for Studio RPC.
package serialport

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// USB identifiers ZMK firmware enumerates with.
const (
	ZMKVendorID  = "1d50"
	ZMKProductID = "615e"
)

var (
	ErrNoDevice        = errors.New("no ZMK serial device found")
	ErrAmbiguousDevice = errors.New("more than one ZMK serial device found; pick one with --port")
)

// Port is the minimal interface needed from an open serial port.
type Port interface {
	io.ReadWriter
	io.Closer
}

// PortInfo describes a serial port found on the system.
type PortInfo struct {
	Name         string `json:"name"`
	IsUSB        bool   `json:"isUsb"`
	VID          string `json:"vid,omitempty"`
	PID          string `json:"pid,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Product      string `json:"product,omitempty"`
}

// IsZMK reports whether the port belongs to a device with the ZMK USB identifiers.
func (p PortInfo) IsZMK() bool {
	return p.IsUSB && strings.EqualFold(p.VID, ZMKVendorID) && strings.EqualFold(p.PID, ZMKProductID)
}

var (
	openPort = func(path string, mode *serial.Mode) (Port, error) {
		return serial.Open(path, mode)
	}
	listPorts = enumerator.GetDetailedPortsList
)

// Open opens the serial port at path with the given options.
func Open(path string, opts Options) (Port, error) {
	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}
	p, err := openPort(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return p, nil
}

// List returns every serial port the OS reports.
func List() ([]PortInfo, error) {
	details, err := listPorts()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}
	out := make([]PortInfo, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		out = append(out, PortInfo{
			Name:         d.Name,
			IsUSB:        d.IsUSB,
			VID:          d.VID,
			PID:          d.PID,
			SerialNumber: d.SerialNumber,
			Product:      d.Product,
		})
	}
	return out, nil
}

// Detect returns the name of the only ZMK port present.
func Detect() (string, error) {
	ports, err := List()
	if err != nil {
		return "", err
	}
	var found []string
	for _, p := range ports {
		if p.IsZMK() {
			found = append(found, p.Name)
		}
	}
	switch len(found) {
	case 0:
		return "", ErrNoDevice
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousDevice, strings.Join(found, ", "))
	}
}
