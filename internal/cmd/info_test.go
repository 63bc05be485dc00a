package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fake "github.com/Alia5/zmkexport/internal/testing"
	"github.com/Alia5/zmkexport/studio"
	"github.com/Alia5/zmkexport/studio/pb"
)

func TestInfo(t *testing.T) {
	tests := []struct {
		name  string
		lock  studio.LockState
		json  bool
		check func(t *testing.T, out string)
	}{
		{
			name: "text unlocked",
			lock: studio.LockStateUnlocked,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "Name:          Corne\nSerial number: 0bad\nLock state:    unlocked\n", out)
			},
		},
		{
			name: "text locked hint",
			lock: studio.LockStateLocked,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "Lock state:    locked\n")
				assert.Contains(t, out, "&studio_unlock")
			},
		},
		{
			name: "json",
			lock: studio.LockStateUnlocked,
			json: true,
			check: func(t *testing.T, out string) {
				var got DeviceSummary
				require.NoError(t, json.Unmarshal([]byte(out), &got))
				assert.Equal(t, DeviceSummary{Name: "Corne", SerialNumber: "0bad", LockState: "unlocked"}, got)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := sampleDevice()
			dev.Lock = tt.lock
			var out bytes.Buffer
			i := &Info{JSON: tt.json, stdout: &out}
			require.NoError(t, i.run(context.Background(), connectFake(t, dev)))
			tt.check(t, out.String())
		})
	}
}

func TestInfoDeviceError(t *testing.T) {
	dev := sampleDevice()
	dev.Handle = func(*pb.Request) (*pb.RequestResponse, bool) {
		return fake.MetaError(studio.ErrorUnlockRequired), true
	}
	err := (&Info{stdout: &bytes.Buffer{}}).run(context.Background(), connectFake(t, dev))
	assert.ErrorIs(t, err, studio.ErrUnlockRequired)
	assert.ErrorContains(t, err, "failed to read device info")
}
