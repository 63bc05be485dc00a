package studio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/Alia5/zmkexport/keymap"
	"github.com/Alia5/zmkexport/studio/pb"
)

func requestResponse(rr *pb.RequestResponse) *pb.Response {
	return &pb.Response{Type: &pb.Response_RequestResponse{RequestResponse: rr}}
}

func roundTrip(t *testing.T, resp *pb.Response) *pb.Response {
	t.Helper()
	b, err := MarshalResponse(resp)
	require.NoError(t, err)
	got, err := UnmarshalResponse(b)
	require.NoError(t, err)
	return got
}

func TestMarshalRequestBytes(t *testing.T) {
	req := keymapRequest(&pb.KeymapRequest{RequestType: &pb.KeymapRequest_GetKeymap{GetKeymap: true}})
	req.RequestId = 1
	b, err := MarshalRequest(req)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x01, 0x2A, 0x02, 0x08, 0x01}, b)

	// request ID zero is the proto3 default and is omitted
	b, err = MarshalRequest(coreRequest(&pb.CoreRequest{RequestType: &pb.CoreRequest_GetDeviceInfo{GetDeviceInfo: true}}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1A, 0x02, 0x08, 0x01}, b)
}

func TestRequestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  *pb.Request
	}{
		{name: "device info", req: coreRequest(&pb.CoreRequest{RequestType: &pb.CoreRequest_GetDeviceInfo{GetDeviceInfo: true}})},
		{name: "lock state", req: coreRequest(&pb.CoreRequest{RequestType: &pb.CoreRequest_GetLockState{GetLockState: true}})},
		{name: "list behaviors", req: behaviorsRequest(&pb.BehaviorsRequest{RequestType: &pb.BehaviorsRequest_ListAllBehaviors{ListAllBehaviors: true}})},
		{name: "behavior details", req: behaviorsRequest(&pb.BehaviorsRequest{RequestType: &pb.BehaviorsRequest_GetBehaviorDetails{
			GetBehaviorDetails: &pb.GetBehaviorDetailsRequest{BehaviorId: 17},
		}})},
		{name: "keymap", req: keymapRequest(&pb.KeymapRequest{RequestType: &pb.KeymapRequest_GetKeymap{GetKeymap: true}})},
		{name: "physical layouts", req: keymapRequest(&pb.KeymapRequest{RequestType: &pb.KeymapRequest_GetPhysicalLayouts{GetPhysicalLayouts: true}})},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.RequestId = uint32(i * 100)
			b, err := MarshalRequest(tt.req)
			require.NoError(t, err)
			got, err := UnmarshalRequest(b)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.req, got, protocmp.Transform()); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKeymapRoundTrip(t *testing.T) {
	want := &Keymap{
		Layers: []keymap.Layer{
			{ID: 0, Name: "Base", Bindings: []keymap.Binding{
				{BehaviorID: 4, Param1: 0x05000004},
				{BehaviorID: -2},
			}},
			{ID: 3, Name: "", Bindings: []keymap.Binding{}},
		},
		AvailableLayers:    8,
		MaxLayerNameLength: 20,
	}
	got := roundTrip(t, requestResponse(&pb.RequestResponse{
		RequestId: 9,
		Subsystem: &pb.RequestResponse_Keymap{Keymap: &pb.KeymapResponse{
			ResponseType: &pb.KeymapResponse_GetKeymap{GetKeymap: KeymapProto(want)},
		}},
	}))
	assert.Equal(t, uint32(9), got.GetRequestResponse().GetRequestId())
	if diff := cmp.Diff(want, keymapFromProto(got.GetRequestResponse().GetKeymap().GetGetKeymap())); diff != "" {
		t.Errorf("keymap mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyKeymapIsPresent(t *testing.T) {
	got := roundTrip(t, requestResponse(&pb.RequestResponse{
		Subsystem: &pb.RequestResponse_Keymap{Keymap: &pb.KeymapResponse{
			ResponseType: &pb.KeymapResponse_GetKeymap{GetKeymap: &pb.Keymap{}},
		}},
	}))
	km := keymapFromProto(got.GetRequestResponse().GetKeymap().GetGetKeymap())
	require.NotNil(t, km)
	assert.NotNil(t, km.Layers)
	assert.Empty(t, km.Layers)

	got = roundTrip(t, requestResponse(&pb.RequestResponse{
		Subsystem: &pb.RequestResponse_Keymap{Keymap: &pb.KeymapResponse{}},
	}))
	assert.Nil(t, keymapFromProto(got.GetRequestResponse().GetKeymap().GetGetKeymap()))
}

func TestPhysicalLayoutsRoundTrip(t *testing.T) {
	defaults := keymap.DefaultPhysicalLayouts()
	tests := []struct {
		name string
		want *keymap.PhysicalLayouts
	}{
		{name: "none selected", want: &defaults},
		{name: "layouts", want: &keymap.PhysicalLayouts{
			ActiveLayoutIndex: 1,
			Layouts: []keymap.PhysicalLayout{
				{Name: "ANSI", Keys: []keymap.KeyPhysicalAttrs{{Width: 100, Height: 100}}},
				{Name: "Split", Keys: []keymap.KeyPhysicalAttrs{
					{Width: 100, Height: 100, X: -50, Y: 25, R: -1500, Rx: 250, Ry: -50},
				}},
				{Name: "Empty", Keys: []keymap.KeyPhysicalAttrs{}},
			},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(t, requestResponse(&pb.RequestResponse{
				RequestId: 2,
				Subsystem: &pb.RequestResponse_Keymap{Keymap: &pb.KeymapResponse{
					ResponseType: &pb.KeymapResponse_GetPhysicalLayouts{GetPhysicalLayouts: PhysicalLayoutsProto(tt.want)},
				}},
			}))
			pl := physicalLayoutsFromProto(got.GetRequestResponse().GetKeymap().GetGetPhysicalLayouts())
			if diff := cmp.Diff(tt.want, pl); diff != "" {
				t.Errorf("physical layouts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestActiveLayoutIndexFromDevice(t *testing.T) {
	// firmware sends the unselected index as the uint32 two's complement of -1
	pl := physicalLayoutsFromProto(&pb.PhysicalLayouts{ActiveLayoutIndex: 0xFFFFFFFF})
	assert.Equal(t, -1, pl.ActiveLayoutIndex)
	assert.NotNil(t, pl.Layouts)

	assert.Equal(t, uint32(0xFFFFFFFF), PhysicalLayoutsProto(&keymap.PhysicalLayouts{ActiveLayoutIndex: -1}).GetActiveLayoutIndex())
}

func TestResponseRoundTripOther(t *testing.T) {
	tests := []struct {
		name string
		resp *pb.Response
	}{
		{name: "simple error", resp: requestResponse(&pb.RequestResponse{RequestId: 1, Subsystem: &pb.RequestResponse_Meta{Meta: &pb.MetaResponse{
			ResponseType: &pb.MetaResponse_SimpleError{SimpleError: pb.ErrorConditions_UNLOCK_REQUIRED},
		}}})},
		{name: "no response", resp: requestResponse(&pb.RequestResponse{RequestId: 1, Subsystem: &pb.RequestResponse_Meta{Meta: &pb.MetaResponse{
			ResponseType: &pb.MetaResponse_NoResponse{NoResponse: true},
		}}})},
		{name: "device info", resp: requestResponse(&pb.RequestResponse{RequestId: 1, Subsystem: &pb.RequestResponse_Core{Core: &pb.CoreResponse{
			ResponseType: &pb.CoreResponse_GetDeviceInfo{GetDeviceInfo: &pb.GetDeviceInfoResponse{Name: "Corne", SerialNumber: []byte{0xDE, 0xAD, 0xBE, 0xEF}}},
		}}})},
		{name: "locked state", resp: requestResponse(&pb.RequestResponse{RequestId: 1, Subsystem: &pb.RequestResponse_Core{Core: &pb.CoreResponse{
			ResponseType: &pb.CoreResponse_GetLockState{GetLockState: pb.LockState_ZMK_STUDIO_CORE_LOCK_STATE_LOCKED},
		}}})},
		{name: "behavior list", resp: requestResponse(&pb.RequestResponse{RequestId: 1, Subsystem: &pb.RequestResponse_Behaviors{Behaviors: &pb.BehaviorsResponse{
			ResponseType: &pb.BehaviorsResponse_ListAllBehaviors{ListAllBehaviors: &pb.ListAllBehaviorsResponse{Behaviors: []uint32{1, 4, 300}}},
		}}})},
		{name: "behavior details", resp: requestResponse(&pb.RequestResponse{RequestId: 1, Subsystem: &pb.RequestResponse_Behaviors{Behaviors: &pb.BehaviorsResponse{
			ResponseType: &pb.BehaviorsResponse_GetBehaviorDetails{GetBehaviorDetails: &pb.GetBehaviorDetailsResponse{Id: 4, DisplayName: "Key Press"}},
		}}})},
		{name: "lock notification", resp: &pb.Response{Type: &pb.Response_Notification{Notification: &pb.Notification{
			Subsystem: &pb.Notification_Core{Core: &pb.CoreNotification{
				NotificationType: &pb.CoreNotification_LockStateChanged{LockStateChanged: pb.LockState_ZMK_STUDIO_CORE_LOCK_STATE_UNLOCKED},
			}},
		}}}},
		{name: "unsaved notification", resp: &pb.Response{Type: &pb.Response_Notification{Notification: &pb.Notification{
			Subsystem: &pb.Notification_Keymap{Keymap: &pb.KeymapNotification{
				NotificationType: &pb.KeymapNotification_UnsavedChangesStatusChanged{UnsavedChangesStatusChanged: true},
			}},
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.resp, roundTrip(t, tt.resp), protocmp.Transform()); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnpackedBehaviorList(t *testing.T) {
	var list []byte
	for _, id := range []uint64{2, 4, 9} {
		list = protowire.AppendTag(list, 1, protowire.VarintType)
		list = protowire.AppendVarint(list, id)
	}
	behaviors := protowire.AppendTag(nil, 1, protowire.BytesType)
	behaviors = protowire.AppendBytes(behaviors, list)

	rr := protowire.AppendTag(nil, 1, protowire.VarintType)
	rr = protowire.AppendVarint(rr, 5)
	rr = protowire.AppendTag(rr, 4, protowire.BytesType)
	rr = protowire.AppendBytes(rr, behaviors)

	raw := protowire.AppendTag(nil, 1, protowire.BytesType)
	raw = protowire.AppendBytes(raw, rr)

	got, err := UnmarshalResponse(raw)
	require.NoError(t, err)
	require.NotNil(t, got.GetRequestResponse())
	assert.Equal(t, uint32(5), got.GetRequestResponse().GetRequestId())
	assert.Equal(t, []uint32{2, 4, 9}, got.GetRequestResponse().GetBehaviors().GetListAllBehaviors().GetBehaviors())
}

func TestUnknownFieldsSkipped(t *testing.T) {
	raw := protowire.AppendTag(nil, 15, protowire.Fixed32Type)
	raw = protowire.AppendFixed32(raw, 0xFFFFFFFF)
	raw = protowire.AppendTag(raw, 7, protowire.BytesType)
	raw = protowire.AppendBytes(raw, []byte{0x01, 0x02})
	known, err := MarshalResponse(requestResponse(&pb.RequestResponse{RequestId: 3, Subsystem: &pb.RequestResponse_Meta{Meta: &pb.MetaResponse{
		ResponseType: &pb.MetaResponse_NoResponse{NoResponse: true},
	}}}))
	require.NoError(t, err)
	raw = append(raw, known...)

	got, err := UnmarshalResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), got.GetRequestResponse().GetRequestId())
	assert.True(t, got.GetRequestResponse().GetMeta().GetNoResponse())
}

func TestTruncatedInput(t *testing.T) {
	_, err := UnmarshalResponse([]byte{0x0A, 0x05, 0x01})
	assert.ErrorContains(t, err, "decode response")

	_, err = UnmarshalRequest([]byte{0x08})
	assert.ErrorContains(t, err, "decode request")
}
