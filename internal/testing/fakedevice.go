// Package testing provides an in-memory ZMK Studio device for tests.
package testing

import (
	"io"
	"net"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/Alia5/zmkexport/keymap"
	"github.com/Alia5/zmkexport/studio"
	"github.com/Alia5/zmkexport/studio/pb"
)

// FakeDevice answers Studio RPC requests from canned data.
// A nil Physical or Keymap makes the device omit that sub-field from its response.
type FakeDevice struct {
	Info      *studio.DeviceInfo
	Lock      studio.LockState
	Physical  *keymap.PhysicalLayouts
	Keymap    *studio.Keymap
	Behaviors map[uint32]string

	// Delay holds back the answer to a request. Requests are answered concurrently.
	Delay func(req *pb.Request) time.Duration
	// Handle overrides the canned answer when it returns handled. A nil response drops the request.
	Handle func(req *pb.Request) (rr *pb.RequestResponse, handled bool)

	mu   sync.Mutex
	seen []*pb.Request
}

// Pipe serves the device on one end of an in-memory connection and returns the host end.
// Both ends are closed when the test finishes.
func (d *FakeDevice) Pipe(t *testing.T) net.Conn {
	t.Helper()
	host, dev := net.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = d.Serve(dev)
	}()
	t.Cleanup(func() {
		_ = host.Close()
		_ = dev.Close()
		<-done
	})
	return host
}

// Serve reads framed requests from rw until it fails and writes framed responses back.
func (d *FakeDevice) Serve(rw io.ReadWriter) error {
	var (
		dec     studio.FrameDecoder
		wg      sync.WaitGroup
		writeMu sync.Mutex
	)
	defer wg.Wait()

	buf := make([]byte, 256)
	for {
		n, err := rw.Read(buf)
		for _, b := range buf[:n] {
			frame, ok := dec.Feed(b)
			if !ok {
				continue
			}
			req, derr := studio.UnmarshalRequest(frame)
			if derr != nil {
				continue
			}
			d.mu.Lock()
			d.seen = append(d.seen, req)
			d.mu.Unlock()

			wg.Add(1)
			go func() {
				defer wg.Done()
				rr := d.answer(req)
				if rr == nil {
					return
				}
				rr.RequestId = req.GetRequestId()
				payload, merr := studio.MarshalResponse(&pb.Response{Type: &pb.Response_RequestResponse{RequestResponse: rr}})
				if merr != nil {
					return
				}
				out := studio.EncodeFrame(payload)
				writeMu.Lock()
				defer writeMu.Unlock()
				_, _ = rw.Write(out)
			}()
		}
		if err != nil {
			return err
		}
	}
}

// Requests returns the requests received so far.
func (d *FakeDevice) Requests() []*pb.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.seen)
}

func (d *FakeDevice) answer(req *pb.Request) *pb.RequestResponse {
	if d.Delay != nil {
		if wait := d.Delay(req); wait > 0 {
			time.Sleep(wait)
		}
	}
	if d.Handle != nil {
		if rr, handled := d.Handle(req); handled {
			return rr
		}
	}

	switch {
	case req.GetCore().GetGetDeviceInfo():
		if d.Info == nil {
			return MetaError(studio.ErrorGeneric)
		}
		return CoreResponse(&pb.CoreResponse{ResponseType: &pb.CoreResponse_GetDeviceInfo{
			GetDeviceInfo: &pb.GetDeviceInfoResponse{Name: d.Info.Name, SerialNumber: d.Info.SerialNumber},
		}})
	case req.GetCore().GetGetLockState():
		return CoreResponse(&pb.CoreResponse{ResponseType: &pb.CoreResponse_GetLockState{GetLockState: pb.LockState(d.Lock)}})
	case req.GetBehaviors().GetListAllBehaviors():
		ids := make([]uint32, 0, len(d.Behaviors))
		for id := range d.Behaviors {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		return behaviorsResponse(&pb.BehaviorsResponse{ResponseType: &pb.BehaviorsResponse_ListAllBehaviors{
			ListAllBehaviors: &pb.ListAllBehaviorsResponse{Behaviors: ids},
		}})
	case req.GetBehaviors().GetGetBehaviorDetails() != nil:
		id := req.GetBehaviors().GetGetBehaviorDetails().GetBehaviorId()
		name, ok := d.Behaviors[id]
		if !ok {
			return MetaError(studio.ErrorGeneric)
		}
		return behaviorsResponse(&pb.BehaviorsResponse{ResponseType: &pb.BehaviorsResponse_GetBehaviorDetails{
			GetBehaviorDetails: &pb.GetBehaviorDetailsResponse{Id: id, DisplayName: name},
		}})
	case req.GetKeymap().GetGetKeymap():
		m := &pb.KeymapResponse{}
		if d.Keymap != nil {
			m.ResponseType = &pb.KeymapResponse_GetKeymap{GetKeymap: studio.KeymapProto(d.Keymap)}
		}
		return KeymapResponse(m)
	case req.GetKeymap().GetGetPhysicalLayouts():
		m := &pb.KeymapResponse{}
		if d.Physical != nil {
			m.ResponseType = &pb.KeymapResponse_GetPhysicalLayouts{GetPhysicalLayouts: studio.PhysicalLayoutsProto(d.Physical)}
		}
		return KeymapResponse(m)
	default:
		return MetaError(studio.ErrorRPCNotFound)
	}
}

// MetaError builds a response carrying meta.simple_error.
func MetaError(cond studio.ErrorCondition) *pb.RequestResponse {
	return &pb.RequestResponse{Subsystem: &pb.RequestResponse_Meta{Meta: &pb.MetaResponse{
		ResponseType: &pb.MetaResponse_SimpleError{SimpleError: pb.ErrorConditions(cond)},
	}}}
}

// NoResponse builds a response carrying meta.no_response.
func NoResponse() *pb.RequestResponse {
	return &pb.RequestResponse{Subsystem: &pb.RequestResponse_Meta{Meta: &pb.MetaResponse{
		ResponseType: &pb.MetaResponse_NoResponse{NoResponse: true},
	}}}
}

// CoreResponse wraps a core subsystem answer.
func CoreResponse(m *pb.CoreResponse) *pb.RequestResponse {
	return &pb.RequestResponse{Subsystem: &pb.RequestResponse_Core{Core: m}}
}

// KeymapResponse wraps a keymap subsystem answer.
func KeymapResponse(m *pb.KeymapResponse) *pb.RequestResponse {
	return &pb.RequestResponse{Subsystem: &pb.RequestResponse_Keymap{Keymap: m}}
}

func behaviorsResponse(m *pb.BehaviorsResponse) *pb.RequestResponse {
	return &pb.RequestResponse{Subsystem: &pb.RequestResponse_Behaviors{Behaviors: m}}
}

// SampleKeymap returns a two layer, three position keymap using behavior 4 as key press.
func SampleKeymap() *studio.Keymap {
	return &studio.Keymap{
		Layers: []keymap.Layer{
			{ID: 0, Name: "Base", Bindings: []keymap.Binding{
				{BehaviorID: 4, Param1: 0x04},
				{BehaviorID: 4, Param1: 0x05000004},
				{BehaviorID: 7, Param1: 1},
			}},
			{ID: 1, Name: "Nav", Bindings: []keymap.Binding{
				{BehaviorID: 4, Param1: 0x0C00E9},
				{BehaviorID: 11},
				{BehaviorID: 4, Param1: 0x070029},
			}},
		},
		AvailableLayers:    6,
		MaxLayerNameLength: 20,
	}
}

// SamplePhysical returns a single three key layout.
func SamplePhysical() *keymap.PhysicalLayouts {
	return &keymap.PhysicalLayouts{
		ActiveLayoutIndex: 0,
		Layouts: []keymap.PhysicalLayout{{
			Name: "Default",
			Keys: []keymap.KeyPhysicalAttrs{
				{Width: 100, Height: 100, X: 0, Y: 0},
				{Width: 100, Height: 100, X: 100, Y: 0},
				{Width: 150, Height: 100, X: 200, Y: 0, R: -1500, Rx: 250, Ry: 50},
			},
		}},
	}
}
