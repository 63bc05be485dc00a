package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger records raw frames exchanged with the device.
type RawLogger interface {
	Log(toDevice bool, data []byte)
}

type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw creates a new RawLogger. If w is nil, the logger drops everything.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Log emits a single line with timestamp, direction and hex dump.
// toDevice=true means host->device.
func (r *rawLogger) Log(toDevice bool, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	dir := "D->H"
	if toDevice {
		dir = "H->D"
	}

	line := fmt.Sprintf("%s %s frame: %d bytes, hex: % x\n",
		r.now().Format("2006/01/02 15:04:05.000"),
		dir,
		len(data),
		data)

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}
