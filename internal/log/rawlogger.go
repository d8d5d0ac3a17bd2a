package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps transfer payloads as hex.
type RawLogger interface {
	Log(msg int, rx bool, data []byte)
}

type rawLogger struct {
	w   io.Writer
	now func() time.Time
	mu  sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Log emits a single-line dump with timestamp, message index and hex bytes.
// rx=true means target->host (read data), rx=false host->target.
func (r *rawLogger) Log(msg int, rx bool, data []byte) {
	if r.w == nil {
		return
	}

	dir := "H->T"
	if rx {
		dir = "T->H"
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s msg %d: %d bytes, hex: %s\n",
		r.now().Format("2006/01/02 15:04:05"),
		dir,
		msg,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
