package acquisition

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/neuroguard/bioapi/pkg/common/logger"
)

// Adapter owns the zero-or-one device connection for the process. A failed
// open or a failed read leaves the adapter inactive for the rest of the
// process lifetime; callers fall back to synthetic data instead.
type Adapter struct {
	device string
	opener PortOpener
	settle time.Duration

	mu     sync.Mutex
	port   LinePort
	active bool
}

func NewAdapter(device string, opener PortOpener) *Adapter {
	return &Adapter{device: device, opener: opener, settle: SettleDelay}
}

// Initialize opens the device and marks the adapter active. Open failure is
// not fatal: the adapter stays inactive and the error comes back for logging
// only. On success the call waits out the settle delay so an attached
// microcontroller can finish its own reset cycle.
func (a *Adapter) Initialize(ctx context.Context) error {
	port, err := a.opener(a.device)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.port = port
	a.active = true
	a.mu.Unlock()

	if a.settle > 0 {
		select {
		case <-time.After(a.settle):
		case <-ctx.Done():
		}
	}
	return nil
}

// ReadLine returns one trimmed line from the device, or ok=false when no
// data is available. A transport failure downgrades the adapter for good;
// there is no reconnect, only the fallback to synthetic data.
func (a *Adapter) ReadLine() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.port == nil || !a.active {
		return "", false
	}

	line, err := a.port.ReadLine()
	if err != nil {
		logger.Log.WithError(err).WithField("device", a.device).Warn("serial read failed, disabling acquisition")
		a.active = false
		return "", false
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	return line, true
}

func (a *Adapter) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

func (a *Adapter) Device() string {
	return a.device
}

// Close tears down the connection at process exit.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.active = false
	if a.port == nil {
		return nil
	}
	err := a.port.Close()
	a.port = nil
	return err
}
