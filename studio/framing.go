package studio

// Frame delimiters used on the Studio serial transport. Any delimiter byte inside a
// payload is preceded by frameEsc.
const (
	frameSOF byte = 0xAB
	frameEsc byte = 0xAC
	frameEOF byte = 0xAD
)

// EncodeFrame wraps payload in start/end markers, escaping delimiter bytes.
func EncodeFrame(payload []byte) []byte {
	out := make([]byte, 0, len(payload)+2)
	out = append(out, frameSOF)
	for _, b := range payload {
		switch b {
		case frameSOF, frameEsc, frameEOF:
			out = append(out, frameEsc)
		}
		out = append(out, b)
	}
	return append(out, frameEOF)
}

type frameState int

const (
	stateIdle frameState = iota
	stateData
	stateEscaped
)

// FrameDecoder reassembles frames from a byte stream.
// Bytes outside a frame are ignored; a start marker inside a frame restarts it.
type FrameDecoder struct {
	state frameState
	buf   []byte
}

// Feed consumes one byte and returns a complete payload once its end marker arrives.
// The returned slice is owned by the caller.
func (d *FrameDecoder) Feed(b byte) ([]byte, bool) {
	switch d.state {
	case stateIdle:
		if b == frameSOF {
			d.state = stateData
			d.buf = d.buf[:0]
		}
	case stateData:
		switch b {
		case frameSOF:
			d.buf = d.buf[:0]
		case frameEsc:
			d.state = stateEscaped
		case frameEOF:
			d.state = stateIdle
			frame := make([]byte, len(d.buf))
			copy(frame, d.buf)
			return frame, true
		default:
			d.buf = append(d.buf, b)
		}
	case stateEscaped:
		d.buf = append(d.buf, b)
		d.state = stateData
	}
	return nil, false
}
