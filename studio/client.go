// Package studio implements the host side of the ZMK Studio RPC protocol.
package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Alia5/zmkexport/internal/log"
	"github.com/Alia5/zmkexport/keymap"
	"github.com/Alia5/zmkexport/studio/pb"
)

// Config controls client behavior such as timeouts.
type Config struct {
	// RequestTimeout bounds every call that does not carry an earlier deadline. Zero disables it.
	RequestTimeout time.Duration
}

func defaultConfig() Config {
	return Config{RequestTimeout: 5 * time.Second}
}

// Client issues Studio RPC calls over a byte stream, usually a serial port.
// A single reader goroutine dispatches responses to their callers by request ID.
type Client struct {
	rw     io.ReadWriteCloser
	cfg    Config
	logger *slog.Logger
	raw    log.RawLogger

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error

	mu      sync.Mutex
	nextID  uint32
	pending map[uint32]chan *pb.RequestResponse
	err     error
	done    chan struct{}
}

// New starts a client on rw. A nil cfg selects the default timeouts, a nil logger discards
// records and a nil raw logger disables frame dumps.
func New(rw io.ReadWriteCloser, cfg *Config, logger *slog.Logger, raw log.RawLogger) *Client {
	c := defaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if logger == nil {
		logger = log.Discard()
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	cl := &Client{
		rw:      rw,
		cfg:     c,
		logger:  logger,
		raw:     raw,
		pending: make(map[uint32]chan *pb.RequestResponse),
		done:    make(chan struct{}),
	}
	go cl.readLoop()
	return cl
}

// Close closes the transport and fails every outstanding call with ErrClosed.
func (c *Client) Close() error {
	c.fail(ErrClosed)
	c.closeOnce.Do(func() { c.closeErr = c.rw.Close() })
	return c.closeErr
}

// fail records err as the terminal error and wakes all waiters. It reports whether
// this call was the one that shut the client down.
func (c *Client) fail(err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false
	}
	c.err = err
	c.pending = map[uint32]chan *pb.RequestResponse{}
	close(c.done)
	return true
}

func (c *Client) readLoop() {
	var dec FrameDecoder
	buf := make([]byte, 256)
	for {
		n, err := c.rw.Read(buf)
		for _, b := range buf[:n] {
			frame, ok := dec.Feed(b)
			if !ok {
				continue
			}
			c.raw.Log(false, frame)
			c.dispatch(frame)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrClosed
			} else {
				err = fmt.Errorf("%w: read: %w", ErrClosed, err)
			}
			if c.fail(err) {
				c.logger.Debug("studio read loop stopped", "error", err)
			}
			return
		}
	}
}

func (c *Client) dispatch(frame []byte) {
	resp, err := UnmarshalResponse(frame)
	if err != nil {
		c.logger.Warn("dropping undecodable frame", "error", err, "bytes", len(frame))
		return
	}
	if n := resp.GetNotification(); n != nil {
		if core, ok := n.GetCore().GetNotificationType().(*pb.CoreNotification_LockStateChanged); ok {
			c.logger.Info("device lock state changed", "state", LockState(core.LockStateChanged).String())
		}
		if km, ok := n.GetKeymap().GetNotificationType().(*pb.KeymapNotification_UnsavedChangesStatusChanged); ok {
			c.logger.Debug("device unsaved changes status changed", "unsaved", km.UnsavedChangesStatusChanged)
		}
		return
	}
	rr := resp.GetRequestResponse()
	if rr == nil {
		return
	}

	c.mu.Lock()
	ch, ok := c.pending[rr.GetRequestId()]
	delete(c.pending, rr.GetRequestId())
	c.mu.Unlock()
	if !ok {
		c.logger.Debug("dropping response for abandoned request", "id", rr.GetRequestId())
		return
	}
	ch <- rr
}

// Call sends req, assigning it a fresh request ID, and waits for the matching response.
// A meta error is returned as *RPCError.
func (c *Client) Call(ctx context.Context, req *pb.Request) (*pb.RequestResponse, error) {
	if c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	ch := make(chan *pb.RequestResponse, 1)
	c.mu.Lock()
	if c.err != nil {
		err := c.err
		c.mu.Unlock()
		return nil, err
	}
	id := c.nextID
	c.nextID++
	c.pending[id] = ch
	c.mu.Unlock()

	req.RequestId = id
	payload, err := MarshalRequest(req)
	if err != nil {
		c.forget(id)
		return nil, err
	}

	c.writeMu.Lock()
	c.raw.Log(true, payload)
	_, err = c.rw.Write(EncodeFrame(payload))
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		return nil, fmt.Errorf("write request %d: %w", id, err)
	}
	c.logger.Debug("studio request sent", "id", id, "call", callName(req))

	select {
	case rr := <-ch:
		return rr, checkMeta(rr)
	case <-c.done:
		c.mu.Lock()
		err := c.err
		c.mu.Unlock()
		return nil, err
	case <-ctx.Done():
		c.forget(id)
		return nil, fmt.Errorf("request %d (%s): %w", id, callName(req), ctx.Err())
	}
}

func (c *Client) forget(id uint32) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func checkMeta(rr *pb.RequestResponse) error {
	meta := rr.GetMeta()
	if meta == nil {
		return nil
	}
	if e, ok := meta.GetResponseType().(*pb.MetaResponse_SimpleError); ok {
		return &RPCError{RequestID: rr.GetRequestId(), Condition: ErrorCondition(e.SimpleError)}
	}
	return ErrNoResponse
}

func callName(req *pb.Request) string {
	switch {
	case req.GetCore().GetGetDeviceInfo():
		return "core.get_device_info"
	case req.GetCore().GetGetLockState():
		return "core.get_lock_state"
	case req.GetBehaviors().GetListAllBehaviors():
		return "behaviors.list_all_behaviors"
	case req.GetBehaviors().GetGetBehaviorDetails() != nil:
		return "behaviors.get_behavior_details"
	case req.GetKeymap().GetGetKeymap():
		return "keymap.get_keymap"
	case req.GetKeymap().GetGetPhysicalLayouts():
		return "keymap.get_physical_layouts"
	default:
		return "unknown"
	}
}

func coreRequest(m *pb.CoreRequest) *pb.Request {
	return &pb.Request{Subsystem: &pb.Request_Core{Core: m}}
}

func behaviorsRequest(m *pb.BehaviorsRequest) *pb.Request {
	return &pb.Request{Subsystem: &pb.Request_Behaviors{Behaviors: m}}
}

func keymapRequest(m *pb.KeymapRequest) *pb.Request {
	return &pb.Request{Subsystem: &pb.Request_Keymap{Keymap: m}}
}

// DeviceInfo returns the keyboard name and serial number.
func (c *Client) DeviceInfo(ctx context.Context) (*DeviceInfo, error) {
	rr, err := c.Call(ctx, coreRequest(&pb.CoreRequest{
		RequestType: &pb.CoreRequest_GetDeviceInfo{GetDeviceInfo: true},
	}))
	if err != nil {
		return nil, err
	}
	info := rr.GetCore().GetGetDeviceInfo()
	if info == nil {
		return nil, fmt.Errorf("%w: want core.get_device_info", ErrUnexpectedResponse)
	}
	return deviceInfoFromProto(info), nil
}

// LockState returns whether the device is locked.
func (c *Client) LockState(ctx context.Context) (LockState, error) {
	rr, err := c.Call(ctx, coreRequest(&pb.CoreRequest{
		RequestType: &pb.CoreRequest_GetLockState{GetLockState: true},
	}))
	if err != nil {
		return LockStateLocked, err
	}
	state, ok := rr.GetCore().GetResponseType().(*pb.CoreResponse_GetLockState)
	if !ok {
		return LockStateLocked, fmt.Errorf("%w: want core.get_lock_state", ErrUnexpectedResponse)
	}
	return LockState(state.GetLockState), nil
}

// PhysicalLayouts returns the device's physical layouts, or nil when the response omits them.
func (c *Client) PhysicalLayouts(ctx context.Context) (*keymap.PhysicalLayouts, error) {
	rr, err := c.Call(ctx, keymapRequest(&pb.KeymapRequest{
		RequestType: &pb.KeymapRequest_GetPhysicalLayouts{GetPhysicalLayouts: true},
	}))
	if err != nil {
		return nil, err
	}
	return physicalLayoutsFromProto(rr.GetKeymap().GetGetPhysicalLayouts()), nil
}

// Keymap returns the layer-major keymap, or nil when the response omits it.
func (c *Client) Keymap(ctx context.Context) (*Keymap, error) {
	rr, err := c.Call(ctx, keymapRequest(&pb.KeymapRequest{
		RequestType: &pb.KeymapRequest_GetKeymap{GetKeymap: true},
	}))
	if err != nil {
		return nil, err
	}
	return keymapFromProto(rr.GetKeymap().GetGetKeymap()), nil
}

// ListBehaviors returns the device-local IDs of every behavior.
func (c *Client) ListBehaviors(ctx context.Context) ([]uint32, error) {
	rr, err := c.Call(ctx, behaviorsRequest(&pb.BehaviorsRequest{
		RequestType: &pb.BehaviorsRequest_ListAllBehaviors{ListAllBehaviors: true},
	}))
	if err != nil {
		return nil, err
	}
	list := rr.GetBehaviors().GetListAllBehaviors()
	if list == nil {
		return nil, fmt.Errorf("%w: want behaviors.list_all_behaviors", ErrUnexpectedResponse)
	}
	return list.GetBehaviors(), nil
}

// BehaviorDetails describes the behavior with the given ID.
func (c *Client) BehaviorDetails(ctx context.Context, id uint32) (*BehaviorDetails, error) {
	rr, err := c.Call(ctx, behaviorsRequest(&pb.BehaviorsRequest{
		RequestType: &pb.BehaviorsRequest_GetBehaviorDetails{
			GetBehaviorDetails: &pb.GetBehaviorDetailsRequest{BehaviorId: id},
		},
	}))
	if err != nil {
		return nil, err
	}
	details := rr.GetBehaviors().GetGetBehaviorDetails()
	if details == nil {
		return nil, fmt.Errorf("%w: want behaviors.get_behavior_details", ErrUnexpectedResponse)
	}
	return &BehaviorDetails{ID: details.GetId(), DisplayName: details.GetDisplayName()}, nil
}
