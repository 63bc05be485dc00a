// Package extract reads the physical layouts and keymap from a ZMK device and
// assembles the position-major keyboard export.
package extract

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Alia5/zmkexport/internal/log"
	"github.com/Alia5/zmkexport/keymap"
	"github.com/Alia5/zmkexport/studio"
)

var (
	// ErrMissingKeymap is returned when the device response carries no keymap layers.
	ErrMissingKeymap = errors.New("device returned no keymap")
	// ErrExtractionInProgress is returned when Extract is called while another extraction runs.
	ErrExtractionInProgress = errors.New("extraction already in progress")
)

// DefaultIdentifyTimeout bounds the device info request.
const DefaultIdentifyTimeout = time.Second

// Source is the device connection an Extractor reads from. PhysicalLayouts and
// Keymap return nil when the device omits the data from its response.
type Source interface {
	DeviceInfo(ctx context.Context) (*studio.DeviceInfo, error)
	PhysicalLayouts(ctx context.Context) (*keymap.PhysicalLayouts, error)
	Keymap(ctx context.Context) (*studio.Keymap, error)
}

// BehaviorSource is implemented by sources that can describe the device's behaviors.
type BehaviorSource interface {
	ListBehaviors(ctx context.Context) ([]uint32, error)
	BehaviorDetails(ctx context.Context, id uint32) (*studio.BehaviorDetails, error)
}

// Config controls an Extractor.
type Config struct {
	// IdentifyTimeout bounds the device info request. Zero skips it.
	IdentifyTimeout time.Duration
	// ResolveBehaviors maps behavior IDs through the device's behavior display names.
	ResolveBehaviors bool
	// Behaviors maps behavior IDs to kinds. Nil selects keymap.DefaultBehaviors.
	Behaviors keymap.BehaviorTable
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{IdentifyTimeout: DefaultIdentifyTimeout}
}

// Extractor runs extractions against a single Source, one at a time.
type Extractor struct {
	src    Source
	cfg    Config
	logger *slog.Logger

	running sync.Mutex
}

// New creates an Extractor. A nil logger discards records.
func New(src Source, cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = log.Discard()
	}
	if cfg.Behaviors == nil {
		cfg.Behaviors = keymap.DefaultBehaviors()
	}
	return &Extractor{src: src, cfg: cfg, logger: logger}
}

// Extract reads the physical layouts and keymap and returns the export.
// Missing physical layouts fall back to keymap.DefaultPhysicalLayouts; a missing
// keymap fails with ErrMissingKeymap.
func (e *Extractor) Extract(ctx context.Context) (*keymap.Export, error) {
	if !e.running.TryLock() {
		return nil, ErrExtractionInProgress
	}
	defer e.running.Unlock()

	e.identify(ctx)

	physical, err := e.src.PhysicalLayouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get physical layouts: %w", err)
	}
	if physical == nil {
		e.logger.Warn("device reported no physical layouts, using empty default")
		def := keymap.DefaultPhysicalLayouts()
		physical = &def
	}

	dec := keymap.NewDecoder(e.behaviors(ctx))

	km, err := e.src.Keymap(ctx)
	if err != nil {
		return nil, fmt.Errorf("get keymap: %w", err)
	}
	if km == nil || km.Layers == nil {
		return nil, ErrMissingKeymap
	}
	e.logger.Debug("keymap received", "layers", len(km.Layers), "layouts", len(physical.Layouts))

	return &keymap.Export{
		Physical: *physical,
		Keymaps:  dec.Transpose(km.Layers),
	}, nil
}

// identify logs the device identity if it arrives within IdentifyTimeout.
// A late answer is discarded.
func (e *Extractor) identify(ctx context.Context) {
	if e.cfg.IdentifyTimeout <= 0 {
		return
	}
	type result struct {
		info *studio.DeviceInfo
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		info, err := e.src.DeviceInfo(ctx)
		ch <- result{info: info, err: err}
	}()

	timer := time.NewTimer(e.cfg.IdentifyTimeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		if r.err != nil {
			e.logger.Warn("device info request failed", "error", r.err)
			return
		}
		if r.info == nil {
			e.logger.Warn("device info request failed", "error", "no device info returned")
			return
		}
		e.logger.Info("connected to device", "name", r.info.Name, "serial", hex.EncodeToString(r.info.SerialNumber))
	case <-timer.C:
		e.logger.Warn("device info request timed out", "timeout", e.cfg.IdentifyTimeout)
	case <-ctx.Done():
	}
}

// behaviors returns the table used to decode this extraction.
func (e *Extractor) behaviors(ctx context.Context) keymap.BehaviorTable {
	if !e.cfg.ResolveBehaviors {
		return e.cfg.Behaviors
	}
	bs, ok := e.src.(BehaviorSource)
	if !ok {
		e.logger.Warn("source cannot list behaviors, using configured behavior IDs")
		return e.cfg.Behaviors
	}
	table, err := resolveBehaviors(ctx, bs)
	if err != nil {
		e.logger.Warn("behavior resolution failed, using configured behavior IDs", "error", err)
		return e.cfg.Behaviors
	}
	e.logger.Debug("resolved device behaviors", "count", len(table))
	return table
}

func resolveBehaviors(ctx context.Context, bs BehaviorSource) (keymap.BehaviorTable, error) {
	ids, err := bs.ListBehaviors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list behaviors: %w", err)
	}
	table := keymap.BehaviorTable{}
	hasKeyPress := false
	for _, id := range ids {
		details, err := bs.BehaviorDetails(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("behavior %d: %w", id, err)
		}
		kind := keymap.KindFromDisplayName(details.DisplayName)
		if kind == keymap.KindUnknown {
			continue
		}
		table[int32(id)] = kind
		hasKeyPress = hasKeyPress || kind == keymap.KindKeyPress
	}
	if !hasKeyPress {
		return nil, errors.New("device lists no key press behavior")
	}
	return table, nil
}
