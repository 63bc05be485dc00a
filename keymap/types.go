// Package keymap holds the keyboard export data model and the transforms that turn a
// device's layer-major keymap into a position-major matrix of decorated bindings.
package keymap

// KeyPhysicalAttrs describes the geometry of one key in a physical layout.
// Values are passed through from the device unchanged.
type KeyPhysicalAttrs struct {
	Width  int32 `json:"width" yaml:"width"`
	Height int32 `json:"height" yaml:"height"`
	X      int32 `json:"x" yaml:"x"`
	Y      int32 `json:"y" yaml:"y"`
	R      int32 `json:"r" yaml:"r"`
	Rx     int32 `json:"rx" yaml:"rx"`
	Ry     int32 `json:"ry" yaml:"ry"`
}

// PhysicalLayout is one named key arrangement supported by the keyboard.
type PhysicalLayout struct {
	Name string             `json:"name" yaml:"name"`
	Keys []KeyPhysicalAttrs `json:"keys" yaml:"keys"`
}

// PhysicalLayouts is the set of layouts reported by the device.
// ActiveLayoutIndex is -1 when no layout is selected.
type PhysicalLayouts struct {
	ActiveLayoutIndex int              `json:"activeLayoutIndex" yaml:"activeLayoutIndex"`
	Layouts           []PhysicalLayout `json:"layouts" yaml:"layouts"`
}

// DefaultPhysicalLayouts is substituted when the device reports no physical layouts.
func DefaultPhysicalLayouts() PhysicalLayouts {
	return PhysicalLayouts{ActiveLayoutIndex: -1, Layouts: []PhysicalLayout{}}
}

// Binding is a single behavior binding as reported by the device.
type Binding struct {
	BehaviorID int32  `json:"behaviorId" yaml:"behaviorId"`
	Param1     uint32 `json:"param1" yaml:"param1"`
	Param2     uint32 `json:"param2" yaml:"param2"`
}

// Layer holds one binding per key position.
type Layer struct {
	ID       uint32    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Bindings []Binding `json:"bindings" yaml:"bindings"`
}

// DecoratedBinding is a Binding extended with its decoded modifier mask and,
// for label-bearing behaviors, the short label of its usage.
type DecoratedBinding struct {
	Binding `yaml:",inline"`
	Label   *string `json:"label,omitempty" yaml:"label,omitempty"`
	Mods    int     `json:"mods" yaml:"mods"`
}

// PositionMatrix is indexed by key position, then by layer.
// A nil cell means the layer defines no binding at that position.
type PositionMatrix [][]*DecoratedBinding

// Export is the complete keyboard export document.
type Export struct {
	Physical PhysicalLayouts `json:"physical" yaml:"physical"`
	Keymaps  PositionMatrix  `json:"keymaps" yaml:"keymaps"`
}
