package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/zmkexport/extract"
	"github.com/Alia5/zmkexport/internal/configpaths"
	"github.com/Alia5/zmkexport/internal/log"
	"github.com/Alia5/zmkexport/keymap"

	yaml "gopkg.in/yaml.v3"
)

// Export reads the keymap from the keyboard and writes the position-major export.
type Export struct {
	Device `embed:""`

	IdentifyTimeout       time.Duration `help:"How long to wait for the device info request (0 disables it)" default:"1s" env:"ZMKEXPORT_IDENTIFY_TIMEOUT"`
	ResolveBehaviors   bool          `help:"Resolve behavior IDs from the device's behavior names" env:"ZMKEXPORT_RESOLVE_BEHAVIORS"`
	KeypressBehaviorID int32         `help:"Behavior ID of the key press behavior" name:"keypress-behavior-id" default:"4" env:"ZMKEXPORT_KEYPRESS_BEHAVIOR_ID"`
	Output             string        `help:"Output file, '-' writes to stdout" short:"o" default:"keyboard.json" env:"ZMKEXPORT_OUTPUT"`
	Format             string        `help:"Output format" enum:"json,yaml" default:"json" env:"ZMKEXPORT_FORMAT"`
	Indent             int           `help:"Indentation width" default:"2" env:"ZMKEXPORT_INDENT"`

	stdout io.Writer
}

// Run is called by Kong when the export command is executed.
func (e *Export) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := e.connect(logger, rawLogger)
	if err != nil {
		return err
	}
	defer client.Close()

	return e.run(ctx, client, logger)
}

func (e *Export) run(ctx context.Context, src extract.Source, logger *slog.Logger) error {
	cfg := extract.Config{
		IdentifyTimeout:     e.IdentifyTimeout,
		ResolveBehaviors: e.ResolveBehaviors,
		Behaviors:        keymap.BehaviorTable{e.KeypressBehaviorID: keymap.KindKeyPress},
	}
	export, err := extract.New(src, cfg, logger).Extract(ctx)
	if err != nil {
		return fmt.Errorf("keymap extraction failed: %w", err)
	}

	data, err := Encode(export, e.Format, e.Indent)
	if err != nil {
		return err
	}

	layers := 0
	if len(export.Keymaps) > 0 {
		layers = len(export.Keymaps[0])
	}

	if e.Output == "-" {
		out := e.stdout
		if out == nil {
			out = os.Stdout
		}
		_, err := out.Write(data)
		return err
	}

	if err := configpaths.EnsureDir(e.Output); err != nil {
		return err
	}
	if err := os.WriteFile(e.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	logger.Info("Keymap exported", "path", e.Output, "positions", len(export.Keymaps), "layers", layers)
	return nil
}

// Encode renders the export as JSON or YAML. Physical layouts precede keymaps in both.
func Encode(export *keymap.Export, format string, indent int) ([]byte, error) {
	if indent < 0 {
		indent = 0
	}
	var buf bytes.Buffer
	switch normalizeFormat(format) {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", spaces(indent))
		if err := enc.Encode(export); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(export); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return buf.Bytes(), nil
}

func spaces(n int) string {
	return string(bytes.Repeat([]byte{' '}, n))
}
