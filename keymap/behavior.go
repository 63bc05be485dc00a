package keymap

import "strings"

// BehaviorKind classifies what a binding does, independent of the device's local behavior IDs.
type BehaviorKind int

const (
	KindUnknown BehaviorKind = iota
	KindKeyPress
	KindKeyToggle
	KindMomentaryLayer
	KindToggleLayer
	KindToLayer
	KindLayerTap
	KindModTap
	KindStickyKey
	KindStickyLayer
	KindTransparent
	KindNone
	KindBluetooth
	KindOutputSelection
	KindReset
	KindBootloader
	KindCapsWord
	KindKeyRepeat
	KindMouseKeyPress
	KindExternalPower
	KindRGBUnderglow
	KindBacklight
)

type kindInfo struct {
	displayName string
	// carriesUsage marks kinds whose param1 is a keycode usage that gets a label.
	carriesUsage bool
}

var kinds = map[BehaviorKind]kindInfo{
	KindKeyPress:        {displayName: "Key Press", carriesUsage: true},
	KindKeyToggle:       {displayName: "Key Toggle"},
	KindMomentaryLayer:  {displayName: "Momentary Layer"},
	KindToggleLayer:     {displayName: "Toggle Layer"},
	KindToLayer:         {displayName: "To Layer"},
	KindLayerTap:        {displayName: "Layer-Tap"},
	KindModTap:          {displayName: "Mod-Tap"},
	KindStickyKey:       {displayName: "Sticky Key"},
	KindStickyLayer:     {displayName: "Sticky Layer"},
	KindTransparent:     {displayName: "Transparent"},
	KindNone:            {displayName: "None"},
	KindBluetooth:       {displayName: "Bluetooth"},
	KindOutputSelection: {displayName: "Output Selection"},
	KindReset:           {displayName: "Reset"},
	KindBootloader:      {displayName: "Bootloader"},
	KindCapsWord:        {displayName: "Caps Word"},
	KindKeyRepeat:       {displayName: "Key Repeat"},
	KindMouseKeyPress:   {displayName: "Mouse Key Press"},
	KindExternalPower:   {displayName: "External Power"},
	KindRGBUnderglow:    {displayName: "Underglow"},
	KindBacklight:       {displayName: "Backlight"},
}

var kindsByName = func() map[string]BehaviorKind {
	out := make(map[string]BehaviorKind, len(kinds))
	for k, info := range kinds {
		out[strings.ToLower(info.displayName)] = k
	}
	return out
}()

func (k BehaviorKind) String() string {
	if info, ok := kinds[k]; ok {
		return info.displayName
	}
	return "Unknown"
}

// CarriesUsage reports whether bindings of this kind carry a keycode usage in param1.
func (k BehaviorKind) CarriesUsage() bool {
	return kinds[k].carriesUsage
}

// KindFromDisplayName maps a firmware behavior display name (e.g. "Key Press") to its kind.
// Matching is case-insensitive; unrecognised names yield KindUnknown.
func KindFromDisplayName(name string) BehaviorKind {
	if k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KindUnknown
}

// DefaultKeyPressBehaviorID is the local behavior ID the firmware assigns to key press
// when no behaviors precede it in the build.
const DefaultKeyPressBehaviorID int32 = 4

// BehaviorTable maps device-local behavior IDs to behavior kinds.
type BehaviorTable map[int32]BehaviorKind

// DefaultBehaviors returns the table used when the device's behaviors were not resolved.
func DefaultBehaviors() BehaviorTable {
	return BehaviorTable{DefaultKeyPressBehaviorID: KindKeyPress}
}

// Kind returns the kind registered for id, or KindUnknown.
func (t BehaviorTable) Kind(id int32) BehaviorKind {
	if k, ok := t[id]; ok {
		return k
	}
	return KindUnknown
}
