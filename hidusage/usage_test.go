package hidusage_test

import (
	"testing"

	"github.com/Alia5/zmkexport/hidusage"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		page, id  uint16
		wantShort string
		wantOK    bool
	}{
		{name: "letter", page: hidusage.PageKeyboard, id: hidusage.KeyA, wantShort: "A", wantOK: true},
		{name: "digit", page: hidusage.PageKeyboard, id: hidusage.Key0, wantShort: "0", wantOK: true},
		{name: "modifier key", page: hidusage.PageKeyboard, id: hidusage.KeyLeftShift, wantShort: "LShft", wantOK: true},
		{name: "consumer", page: hidusage.PageConsumer, id: hidusage.ConsumerPlayPause, wantShort: "Play", wantOK: true},
		{name: "generic desktop", page: hidusage.PageGenericDesktop, id: hidusage.SystemSleep, wantShort: "Sleep", wantOK: true},
		{name: "unknown id", page: hidusage.PageKeyboard, id: 0x00, wantOK: false},
		{name: "unknown page", page: 0x09, id: hidusage.KeyA, wantOK: false},
		{name: "consumer id on keyboard page", page: hidusage.PageKeyboard, id: hidusage.ConsumerACBookmarks, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hidusage.Lookup(tt.page, tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, hidusage.Labels{}, got)
				return
			}
			assert.Equal(t, tt.wantShort, got.Short)
			assert.NotEmpty(t, got.Long)
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		usage    uint32
		wantPage uint16
		wantID   uint16
	}{
		{name: "explicit keyboard page", usage: 0x00070004, wantPage: hidusage.PageKeyboard, wantID: 0x04},
		{name: "compact keyboard page", usage: 0x00000004, wantPage: hidusage.PageKeyboard, wantID: 0x04},
		{name: "consumer wide id", usage: 0x000C0192, wantPage: hidusage.PageConsumer, wantID: 0x0192},
		{name: "modifier byte ignored", usage: 0xFF0C00CD, wantPage: hidusage.PageConsumer, wantID: 0x00CD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, id := hidusage.Split(tt.usage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestUsageRoundTrip(t *testing.T) {
	u := hidusage.Usage(hidusage.PageConsumer, hidusage.ConsumerALCalculator)
	assert.Equal(t, uint32(0x000C0192), u)
	page, id := hidusage.Split(u)
	assert.Equal(t, hidusage.PageConsumer, page)
	assert.Equal(t, uint16(hidusage.ConsumerALCalculator), id)
}
