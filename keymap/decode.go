package keymap

import "github.com/Alia5/zmkexport/hidusage"

const (
	modsShift = 24
	modsMask  = 0xFF
	usageMask = 0x00FFFFFF
)

// Decoded is the metadata derived from a binding's packed param1.
type Decoded struct {
	Mods  int
	Label *string
}

// Decoder decodes packed binding parameters using a behavior table to decide
// which bindings carry a labelled usage.
type Decoder struct {
	behaviors BehaviorTable
}

// NewDecoder creates a Decoder for the given behavior table.
// A nil table selects DefaultBehaviors.
func NewDecoder(behaviors BehaviorTable) *Decoder {
	if behaviors == nil {
		behaviors = DefaultBehaviors()
	}
	return &Decoder{behaviors: behaviors}
}

var defaultDecoder = NewDecoder(nil)

// Decode splits param1 using the default behavior table.
func Decode(param1 uint32, behaviorID int32) Decoded {
	return defaultDecoder.Decode(param1, behaviorID)
}

// Decode splits param1 into its modifier byte and usage. The modifier byte is
// always extracted; the usage is looked up only for label-bearing behaviors.
// Unknown behaviors and usages yield no label.
func (d *Decoder) Decode(param1 uint32, behaviorID int32) Decoded {
	out := Decoded{Mods: int((param1 >> modsShift) & modsMask)}
	if !d.behaviors.Kind(behaviorID).CarriesUsage() {
		return out
	}
	page, id := hidusage.Split(param1 & usageMask)
	if labels, ok := hidusage.Lookup(page, id); ok {
		label := labels.Short
		out.Label = &label
	}
	return out
}

func (d *Decoder) decorate(b Binding) DecoratedBinding {
	dec := d.Decode(b.Param1, b.BehaviorID)
	return DecoratedBinding{Binding: b, Label: dec.Label, Mods: dec.Mods}
}
