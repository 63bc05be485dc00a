package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Alia5/zmkexport/internal/serialport"

	"golang.org/x/term"
)

// Ports lists the serial ports the keyboard may be attached to.
type Ports struct {
	All bool `help:"Include ports that do not look like a ZMK keyboard"`

	stdout io.Writer
	isTTY  func() bool
}

var listPorts = serialport.List

// Run is called by Kong when the ports command is executed.
func (p *Ports) Run() error {
	ports, err := listPorts()
	if err != nil {
		return err
	}

	out := p.stdout
	if out == nil {
		out = os.Stdout
	}
	isTTY := p.isTTY
	if isTTY == nil {
		isTTY = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	}

	shown := ports[:0:0]
	for _, port := range ports {
		if p.All || port.IsZMK() {
			shown = append(shown, port)
		}
	}

	// Pipes get bare names so the output can feed --port.
	if !isTTY() {
		for _, port := range shown {
			if _, err := fmt.Fprintln(out, port.Name); err != nil {
				return err
			}
		}
		return nil
	}

	if len(shown) == 0 {
		_, err := fmt.Fprintln(out, "No ZMK keyboard found. Is Studio enabled in the firmware and the keyboard connected over USB?")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PORT\tVID:PID\tPRODUCT\tSERIAL\tZMK")
	for _, port := range shown {
		id := ""
		if port.IsUSB {
			id = port.VID + ":" + port.PID
		}
		zmk := ""
		if port.IsZMK() {
			zmk = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", port.Name, id, port.Product, port.SerialNumber, zmk)
	}
	return tw.Flush()
}
