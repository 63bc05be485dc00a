package keymap_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Alia5/zmkexport/keymap"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func kp(param1 uint32) keymap.Binding {
	return keymap.Binding{BehaviorID: keyPress, Param1: param1}
}

func strPtr(s string) *string { return &s }

func TestTransposeEmpty(t *testing.T) {
	tests := []struct {
		name   string
		layers []keymap.Layer
	}{
		{name: "nil", layers: nil},
		{name: "no layers", layers: []keymap.Layer{}},
		{name: "empty layers", layers: []keymap.Layer{{ID: 0}, {ID: 1, Bindings: []keymap.Binding{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keymap.Transpose(tt.layers)
			assert.NotNil(t, got)
			assert.Len(t, got, 0)
		})
	}
}

func TestTransposeIsTransposition(t *testing.T) {
	layers := []keymap.Layer{
		{ID: 0, Name: "Base", Bindings: []keymap.Binding{kp(0x00070004), kp(0x00070005), {BehaviorID: 1, Param1: 1}}},
		{ID: 1, Name: "Lower", Bindings: []keymap.Binding{kp(0x0207001E), {BehaviorID: 9}, kp(0x000C00E9)}},
	}

	got := keymap.Transpose(layers)

	want := keymap.PositionMatrix{
		{
			{Binding: kp(0x00070004), Label: strPtr("A")},
			{Binding: kp(0x0207001E), Label: strPtr("1"), Mods: 2},
		},
		{
			{Binding: kp(0x00070005), Label: strPtr("B")},
			{Binding: keymap.Binding{BehaviorID: 9}},
		},
		{
			{Binding: keymap.Binding{BehaviorID: 1, Param1: 1}},
			{Binding: kp(0x000C00E9), Label: strPtr("Vol+")},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}

	for li, l := range layers {
		for pos, b := range l.Bindings {
			require.NotNil(t, got[pos][li])
			assert.Equal(t, b, got[pos][li].Binding)
		}
	}
}

func TestTransposeRaggedLayers(t *testing.T) {
	layers := []keymap.Layer{
		{Bindings: []keymap.Binding{kp(0x00070004), kp(0x00070005), kp(0x00070006)}},
		{Bindings: []keymap.Binding{kp(0x00070007)}},
	}

	got := keymap.Transpose(layers)
	require.Len(t, got, 3)

	require.Len(t, got[0], 2)
	assert.Equal(t, "A", *got[0][0].Label)
	assert.Equal(t, "D", *got[0][1].Label)

	for _, pos := range []int{1, 2} {
		require.Len(t, got[pos], 2)
		assert.NotNil(t, got[pos][0])
		assert.Nil(t, got[pos][1], "position %d should have a gap on layer 1", pos)
	}
}

func TestTransposeGapDistinctFromUnlabelledBinding(t *testing.T) {
	layers := []keymap.Layer{
		{Bindings: []keymap.Binding{{BehaviorID: 0}, {BehaviorID: 0}}},
		{Bindings: []keymap.Binding{{BehaviorID: 0}}},
	}
	got := keymap.Transpose(layers)

	require.NotNil(t, got[0][1], "zero-valued binding must stay a binding")
	assert.Nil(t, got[0][1].Label)
	assert.Nil(t, got[1][1])
}

func TestTransposeIdempotent(t *testing.T) {
	layers := []keymap.Layer{
		{Bindings: []keymap.Binding{kp(0x00070004), kp(0x01070028)}},
		{Bindings: []keymap.Binding{kp(0x000C00CD)}},
	}
	first := keymap.Transpose(layers)
	second := keymap.Transpose(layers)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second transpose differs (-first +second):\n%s", diff)
	}
	first[0][0].Mods = 99
	assert.NotEqual(t, 99, second[0][0].Mods, "results must not share cells")
}

func TestExportJSON(t *testing.T) {
	export := keymap.Export{
		Physical: keymap.DefaultPhysicalLayouts(),
		Keymaps: keymap.Transpose([]keymap.Layer{
			{Bindings: []keymap.Binding{kp(0x05000004), {BehaviorID: 2, Param1: 1}}},
			{Bindings: []keymap.Binding{kp(0x00070005)}},
		}),
	}

	b, err := json.Marshal(export)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"physical": {"activeLayoutIndex": -1, "layouts": []},
		"keymaps": [
			[
				{"behaviorId": 4, "param1": 83886084, "param2": 0, "label": "A", "mods": 5},
				{"behaviorId": 4, "param1": 458757, "param2": 0, "label": "B", "mods": 0}
			],
			[
				{"behaviorId": 2, "param1": 1, "param2": 0, "mods": 0},
				null
			]
		]
	}`, string(b))

	s := string(b)
	assert.Less(t, strings.Index(s, `"physical"`), strings.Index(s, `"keymaps"`))
}

func TestExportYAMLInlinesBinding(t *testing.T) {
	export := keymap.Export{
		Physical: keymap.DefaultPhysicalLayouts(),
		Keymaps:  keymap.Transpose([]keymap.Layer{{Bindings: []keymap.Binding{kp(0x00070004)}}}),
	}
	b, err := yaml.Marshal(export)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(b, &back))
	rows := back["keymaps"].([]any)
	cell := rows[0].([]any)[0].(map[string]any)
	assert.Equal(t, 4, cell["behaviorId"])
	assert.Equal(t, "A", cell["label"])
}
