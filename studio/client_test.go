package studio_test

import (
	"bytes"
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/zmkexport/internal/log"
	fake "github.com/Alia5/zmkexport/internal/testing"
	"github.com/Alia5/zmkexport/studio"
	"github.com/Alia5/zmkexport/studio/pb"
)

func newClient(t *testing.T, dev *fake.FakeDevice, timeout time.Duration) *studio.Client {
	t.Helper()
	c := studio.New(dev.Pipe(t), &studio.Config{RequestTimeout: timeout}, nil, nil)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func sampleDevice() *fake.FakeDevice {
	return &fake.FakeDevice{
		Info:      &studio.DeviceInfo{Name: "Corne", SerialNumber: []byte{0x01, 0x02}},
		Lock:      studio.LockStateUnlocked,
		Physical:  fake.SamplePhysical(),
		Keymap:    fake.SampleKeymap(),
		Behaviors: map[uint32]string{4: "Key Press", 7: "Momentary Layer"},
	}
}

func TestClientCalls(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, sampleDevice(), time.Second)

	info, err := c.DeviceInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Corne", info.Name)
	assert.Equal(t, []byte{0x01, 0x02}, info.SerialNumber)

	lock, err := c.LockState(ctx)
	require.NoError(t, err)
	assert.Equal(t, studio.LockStateUnlocked, lock)

	physical, err := c.PhysicalLayouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, fake.SamplePhysical(), physical)

	km, err := c.Keymap(ctx)
	require.NoError(t, err)
	assert.Equal(t, fake.SampleKeymap(), km)

	ids, err := c.ListBehaviors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 7}, ids)

	details, err := c.BehaviorDetails(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, &studio.BehaviorDetails{ID: 7, DisplayName: "Momentary Layer"}, details)
}

func TestClientAbsentSubfields(t *testing.T) {
	dev := sampleDevice()
	dev.Physical = nil
	dev.Keymap = nil
	c := newClient(t, dev, time.Second)

	physical, err := c.PhysicalLayouts(context.Background())
	require.NoError(t, err)
	assert.Nil(t, physical)

	km, err := c.Keymap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, km)
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		handle func(req *pb.Request) (*pb.RequestResponse, bool)
		check  func(t *testing.T, err error)
	}{
		{
			name: "unlock required",
			handle: func(*pb.Request) (*pb.RequestResponse, bool) {
				return fake.MetaError(studio.ErrorUnlockRequired), true
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, studio.ErrUnlockRequired)
				var rpcErr *studio.RPCError
				require.ErrorAs(t, err, &rpcErr)
				assert.Equal(t, studio.ErrorUnlockRequired, rpcErr.Condition)
				assert.Contains(t, err.Error(), "unlock required")
			},
		},
		{
			name: "other rpc error does not match unlock",
			handle: func(*pb.Request) (*pb.RequestResponse, bool) {
				return fake.MetaError(studio.ErrorRPCNotFound), true
			},
			check: func(t *testing.T, err error) {
				assert.NotErrorIs(t, err, studio.ErrUnlockRequired)
				assert.Contains(t, err.Error(), "rpc not found")
			},
		},
		{
			name: "no response",
			handle: func(*pb.Request) (*pb.RequestResponse, bool) {
				return fake.NoResponse(), true
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, studio.ErrNoResponse) },
		},
		{
			name: "wrong subsystem",
			handle: func(*pb.Request) (*pb.RequestResponse, bool) {
				return fake.KeymapResponse(&pb.KeymapResponse{}), true
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, studio.ErrUnexpectedResponse) },
		},
		{
			name: "timeout",
			handle: func(*pb.Request) (*pb.RequestResponse, bool) {
				return nil, true
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, context.DeadlineExceeded) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := sampleDevice()
			dev.Handle = tt.handle
			c := newClient(t, dev, 50*time.Millisecond)
			_, err := c.DeviceInfo(context.Background())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClientDispatchesByRequestID(t *testing.T) {
	dev := sampleDevice()
	dev.Behaviors = map[uint32]string{}
	for id := uint32(1); id <= 6; id++ {
		dev.Behaviors[id] = string(rune('A' + id))
	}
	dev.Delay = func(req *pb.Request) time.Duration {
		details := req.GetBehaviors().GetGetBehaviorDetails()
		if details == nil {
			return 0
		}
		// lower IDs answer last
		return time.Duration(7-details.GetBehaviorId()) * 10 * time.Millisecond
	}
	c := newClient(t, dev, time.Second)

	var wg sync.WaitGroup
	for id := uint32(1); id <= 6; id++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := c.BehaviorDetails(context.Background(), id)
			if assert.NoError(t, err) {
				assert.Equal(t, id, d.ID)
				assert.Equal(t, string(rune('A'+id)), d.DisplayName)
			}
		}()
	}
	wg.Wait()
}

func TestClientDropsLateResponse(t *testing.T) {
	dev := sampleDevice()
	dev.Delay = func(req *pb.Request) time.Duration {
		if req.GetCore().GetGetDeviceInfo() {
			return 150 * time.Millisecond
		}
		return 0
	}
	c := newClient(t, dev, 50*time.Millisecond)

	_, err := c.DeviceInfo(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)

	time.Sleep(150 * time.Millisecond)
	lock, err := c.LockState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, studio.LockStateUnlocked, lock)
}

func TestClientClose(t *testing.T) {
	dev := sampleDevice()
	dev.Handle = func(*pb.Request) (*pb.RequestResponse, bool) { return nil, true }
	c := studio.New(dev.Pipe(t), &studio.Config{}, nil, nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := c.Keymap(context.Background())
		errCh <- err
	}()

	require.Eventually(t, func() bool { return len(dev.Requests()) == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, c.Close())

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, studio.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("outstanding call not released by Close")
	}

	_, err := c.LockState(context.Background())
	assert.ErrorIs(t, err, studio.ErrClosed)
	assert.NoError(t, c.Close())
}

func TestClientTransportEOF(t *testing.T) {
	host, dev := net.Pipe()
	c := studio.New(host, nil, nil, nil)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, dev.Close())
	assert.Eventually(t, func() bool {
		_, err := c.LockState(context.Background())
		return errors.Is(err, studio.ErrClosed)
	}, time.Second, 5*time.Millisecond)
}

func TestClientIgnoresNotificationsAndNoise(t *testing.T) {
	host, dev := net.Pipe()
	t.Cleanup(func() { _ = dev.Close() })

	var raw bytes.Buffer
	c := studio.New(host, nil, nil, log.NewRaw(&syncWriter{w: &raw}))
	t.Cleanup(func() { _ = c.Close() })

	go func() {
		var dec studio.FrameDecoder
		buf := make([]byte, 64)
		for {
			n, err := dev.Read(buf)
			if err != nil {
				return
			}
			for _, b := range buf[:n] {
				frame, ok := dec.Feed(b)
				if !ok {
					continue
				}
				req, err := studio.UnmarshalRequest(frame)
				if err != nil {
					return
				}
				lockChanged, _ := studio.MarshalResponse(&pb.Response{Type: &pb.Response_Notification{Notification: &pb.Notification{
					Subsystem: &pb.Notification_Core{Core: &pb.CoreNotification{
						NotificationType: &pb.CoreNotification_LockStateChanged{LockStateChanged: pb.LockState_ZMK_STUDIO_CORE_LOCK_STATE_LOCKED},
					}},
				}}})
				unsaved, _ := studio.MarshalResponse(&pb.Response{Type: &pb.Response_Notification{Notification: &pb.Notification{
					Subsystem: &pb.Notification_Keymap{Keymap: &pb.KeymapNotification{
						NotificationType: &pb.KeymapNotification_UnsavedChangesStatusChanged{UnsavedChangesStatusChanged: true},
					}},
				}}})
				rr := fake.CoreResponse(&pb.CoreResponse{ResponseType: &pb.CoreResponse_GetDeviceInfo{
					GetDeviceInfo: &pb.GetDeviceInfoResponse{Name: "Lily58"},
				}})
				rr.RequestId = req.GetRequestId()
				resp, _ := studio.MarshalResponse(&pb.Response{Type: &pb.Response_RequestResponse{RequestResponse: rr}})

				_, _ = dev.Write([]byte{0x00, 0x01})
				_, _ = dev.Write(studio.EncodeFrame(lockChanged))
				_, _ = dev.Write(studio.EncodeFrame(unsaved))
				_, _ = dev.Write(studio.EncodeFrame([]byte{0x0A, 0x7F}))
				_, _ = dev.Write(studio.EncodeFrame(resp))
			}
		}
	}()

	info, err := c.DeviceInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lily58", info.Name)

	out := raw.String()
	assert.Contains(t, out, "H->D frame:")
	assert.Contains(t, out, "D->H frame:")
}

type syncWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
