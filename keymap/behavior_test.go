package keymap_test

import (
	"testing"

	"github.com/Alia5/zmkexport/keymap"

	"github.com/stretchr/testify/assert"
)

func TestKindFromDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want keymap.BehaviorKind
	}{
		{name: "Key Press", want: keymap.KindKeyPress},
		{name: "key press", want: keymap.KindKeyPress},
		{name: "  Momentary Layer ", want: keymap.KindMomentaryLayer},
		{name: "Layer-Tap", want: keymap.KindLayerTap},
		{name: "Transparent", want: keymap.KindTransparent},
		{name: "Macro 7", want: keymap.KindUnknown},
		{name: "", want: keymap.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keymap.KindFromDisplayName(tt.name))
		})
	}
}

func TestOnlyKeyPressCarriesUsage(t *testing.T) {
	for k := keymap.KindUnknown; k <= keymap.KindBacklight; k++ {
		assert.Equal(t, k == keymap.KindKeyPress, k.CarriesUsage(), k.String())
	}
}

func TestBehaviorTableKind(t *testing.T) {
	table := keymap.DefaultBehaviors()
	assert.Equal(t, keymap.KindKeyPress, table.Kind(keymap.DefaultKeyPressBehaviorID))
	assert.Equal(t, keymap.KindUnknown, table.Kind(0))
	assert.Equal(t, "Unknown", keymap.KindUnknown.String())
	assert.Equal(t, "Key Press", keymap.KindKeyPress.String())
}
