package studio

import (
	"fmt"

	"github.com/Alia5/zmkexport/keymap"
	"github.com/Alia5/zmkexport/studio/pb"
)

// ErrorCondition is the generic failure reported through the meta subsystem.
type ErrorCondition int32

const (
	ErrorGeneric         = ErrorCondition(pb.ErrorConditions_GENERIC)
	ErrorUnlockRequired  = ErrorCondition(pb.ErrorConditions_UNLOCK_REQUIRED)
	ErrorRPCNotFound     = ErrorCondition(pb.ErrorConditions_RPC_NOT_FOUND)
	ErrorMsgDecodeFailed = ErrorCondition(pb.ErrorConditions_MSG_DECODE_FAILED)
	ErrorMsgEncodeFailed = ErrorCondition(pb.ErrorConditions_MSG_ENCODE_FAILED)
)

func (c ErrorCondition) String() string {
	switch c {
	case ErrorGeneric:
		return "generic error"
	case ErrorUnlockRequired:
		return "unlock required"
	case ErrorRPCNotFound:
		return "rpc not found"
	case ErrorMsgDecodeFailed:
		return "message decode failed"
	case ErrorMsgEncodeFailed:
		return "message encode failed"
	default:
		return fmt.Sprintf("error condition %d", int32(c))
	}
}

// DeviceInfo identifies the connected keyboard.
type DeviceInfo struct {
	Name         string `json:"name"`
	SerialNumber []byte `json:"serialNumber,omitempty"`
}

// LockState reports whether the device accepts protected RPCs.
type LockState int32

const (
	LockStateLocked   = LockState(pb.LockState_ZMK_STUDIO_CORE_LOCK_STATE_LOCKED)
	LockStateUnlocked = LockState(pb.LockState_ZMK_STUDIO_CORE_LOCK_STATE_UNLOCKED)
)

func (s LockState) String() string {
	switch s {
	case LockStateLocked:
		return "locked"
	case LockStateUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("lock state %d", int32(s))
	}
}

// BehaviorDetails describes one behavior.
type BehaviorDetails struct {
	ID          uint32
	DisplayName string
}

// Keymap is the layer-major keymap as stored on the device.
type Keymap struct {
	Layers             []keymap.Layer
	AvailableLayers    uint32
	MaxLayerNameLength uint32
}

func deviceInfoFromProto(m *pb.GetDeviceInfoResponse) *DeviceInfo {
	return &DeviceInfo{Name: m.GetName(), SerialNumber: m.GetSerialNumber()}
}

func keymapFromProto(m *pb.Keymap) *Keymap {
	if m == nil {
		return nil
	}
	km := &Keymap{
		Layers:             make([]keymap.Layer, 0, len(m.GetLayers())),
		AvailableLayers:    m.GetAvailableLayers(),
		MaxLayerNameLength: m.GetMaxLayerNameLength(),
	}
	for _, l := range m.GetLayers() {
		layer := keymap.Layer{
			ID:       l.GetId(),
			Name:     l.GetName(),
			Bindings: make([]keymap.Binding, 0, len(l.GetBindings())),
		}
		for _, b := range l.GetBindings() {
			layer.Bindings = append(layer.Bindings, keymap.Binding{
				BehaviorID: b.GetBehaviorId(),
				Param1:     b.GetParam1(),
				Param2:     b.GetParam2(),
			})
		}
		km.Layers = append(km.Layers, layer)
	}
	return km
}

// KeymapProto converts km to its wire message.
func KeymapProto(km *Keymap) *pb.Keymap {
	if km == nil {
		return nil
	}
	m := &pb.Keymap{
		AvailableLayers:    km.AvailableLayers,
		MaxLayerNameLength: km.MaxLayerNameLength,
	}
	for _, l := range km.Layers {
		layer := &pb.Layer{Id: l.ID, Name: l.Name}
		for _, b := range l.Bindings {
			layer.Bindings = append(layer.Bindings, &pb.BehaviorBinding{
				BehaviorId: b.BehaviorID,
				Param1:     b.Param1,
				Param2:     b.Param2,
			})
		}
		m.Layers = append(m.Layers, layer)
	}
	return m
}

// The wire field is unsigned; -1 marks "no layout selected" and travels as its two's complement.
func physicalLayoutsFromProto(m *pb.PhysicalLayouts) *keymap.PhysicalLayouts {
	if m == nil {
		return nil
	}
	pl := &keymap.PhysicalLayouts{
		ActiveLayoutIndex: int(int32(m.GetActiveLayoutIndex())),
		Layouts:           make([]keymap.PhysicalLayout, 0, len(m.GetLayouts())),
	}
	for _, l := range m.GetLayouts() {
		layout := keymap.PhysicalLayout{
			Name: l.GetName(),
			Keys: make([]keymap.KeyPhysicalAttrs, 0, len(l.GetKeys())),
		}
		for _, k := range l.GetKeys() {
			layout.Keys = append(layout.Keys, keymap.KeyPhysicalAttrs{
				Width:  k.GetWidth(),
				Height: k.GetHeight(),
				X:      k.GetX(),
				Y:      k.GetY(),
				R:      k.GetR(),
				Rx:     k.GetRx(),
				Ry:     k.GetRy(),
			})
		}
		pl.Layouts = append(pl.Layouts, layout)
	}
	return pl
}

// PhysicalLayoutsProto converts pl to its wire message.
func PhysicalLayoutsProto(pl *keymap.PhysicalLayouts) *pb.PhysicalLayouts {
	if pl == nil {
		return nil
	}
	m := &pb.PhysicalLayouts{ActiveLayoutIndex: uint32(int32(pl.ActiveLayoutIndex))}
	for _, l := range pl.Layouts {
		layout := &pb.PhysicalLayout{Name: l.Name}
		for _, k := range l.Keys {
			layout.Keys = append(layout.Keys, &pb.KeyPhysicalAttrs{
				Width:  k.Width,
				Height: k.Height,
				X:      k.X,
				Y:      k.Y,
				R:      k.R,
				Rx:     k.Rx,
				Ry:     k.Ry,
			})
		}
		m.Layouts = append(m.Layouts, layout)
	}
	return m
}
