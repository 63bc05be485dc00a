package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedAll(d *FrameDecoder, in []byte) [][]byte {
	var out [][]byte
	for _, b := range in {
		if frame, ok := d.Feed(b); ok {
			out = append(out, frame)
		}
	}
	return out
}

func TestEncodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    []byte
	}{
		{name: "empty", payload: nil, want: []byte{0xAB, 0xAD}},
		{name: "plain", payload: []byte{0x08, 0x01}, want: []byte{0xAB, 0x08, 0x01, 0xAD}},
		{
			name:    "delimiters escaped",
			payload: []byte{0xAB, 0x00, 0xAC, 0xAD},
			want:    []byte{0xAB, 0xAC, 0xAB, 0x00, 0xAC, 0xAC, 0xAC, 0xAD, 0xAD},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeFrame(tt.payload))
		})
	}
}

func TestFrameDecoder(t *testing.T) {
	t.Run("round trip with delimiters", func(t *testing.T) {
		payload := []byte{0x01, 0xAB, 0xAC, 0xAD, 0xFF}
		var d FrameDecoder
		frames := feedAll(&d, EncodeFrame(payload))
		require.Len(t, frames, 1)
		assert.Equal(t, payload, frames[0])
	})

	t.Run("noise outside frames ignored", func(t *testing.T) {
		var d FrameDecoder
		in := append([]byte{0x00, 0x42, 0xAD}, EncodeFrame([]byte{0x01})...)
		in = append(in, 0x13, 0x37)
		in = append(in, EncodeFrame([]byte{0x02, 0x03})...)
		frames := feedAll(&d, in)
		assert.Equal(t, [][]byte{{0x01}, {0x02, 0x03}}, frames)
	})

	t.Run("start marker restarts frame", func(t *testing.T) {
		var d FrameDecoder
		in := []byte{0xAB, 0x01, 0x02, 0xAB, 0x03, 0xAD}
		assert.Equal(t, [][]byte{{0x03}}, feedAll(&d, in))
	})

	t.Run("returned frame is not reused", func(t *testing.T) {
		var d FrameDecoder
		frames := feedAll(&d, append(EncodeFrame([]byte{0x01}), EncodeFrame([]byte{0x02})...))
		require.Len(t, frames, 2)
		assert.Equal(t, []byte{0x01}, frames[0])
		assert.Equal(t, []byte{0x02}, frames[1])
	})
}
