package cmd

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/zmkexport/internal/log"
	"github.com/Alia5/zmkexport/studio"
)

// Info prints the identity and lock state of the connected keyboard.
type Info struct {
	Device `embed:""`

	JSON bool `help:"Print machine readable JSON" name:"json"`

	stdout io.Writer
}

// DeviceSummary is what the info command reports.
type DeviceSummary struct {
	Name         string `json:"name"`
	SerialNumber string `json:"serialNumber"`
	LockState    string `json:"lockState"`
}

// Run is called by Kong when the info command is executed.
func (i *Info) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	client, err := i.connect(logger, rawLogger)
	if err != nil {
		return err
	}
	defer client.Close()
	return i.run(context.Background(), client)
}

type infoSource interface {
	DeviceInfo(ctx context.Context) (*studio.DeviceInfo, error)
	LockState(ctx context.Context) (studio.LockState, error)
}

func (i *Info) run(ctx context.Context, src infoSource) error {
	info, err := src.DeviceInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to read device info: %w", err)
	}
	summary := DeviceSummary{
		Name:         info.Name,
		SerialNumber: hex.EncodeToString(info.SerialNumber),
	}
	lock, err := src.LockState(ctx)
	if err != nil {
		return fmt.Errorf("failed to read lock state: %w", err)
	}
	summary.LockState = lock.String()

	out := i.stdout
	if out == nil {
		out = os.Stdout
	}
	if i.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	_, err = fmt.Fprintf(out, "Name:          %s\nSerial number: %s\nLock state:    %s\n",
		summary.Name, summary.SerialNumber, summary.LockState)
	if err == nil && lock == studio.LockStateLocked {
		_, err = fmt.Fprintln(out, "Unlock the keyboard with its &studio_unlock binding to allow keymap access.")
	}
	return err
}
