package acquisition

import (
	"bytes"
	"io"
	"time"

	"go.bug.st/serial"
)

// Transport characteristics of the capture device. The line rate is part of
// the device contract, not configuration.
const (
	BaudRate    = 9600
	ReadTimeout = time.Second
	SettleDelay = 2 * time.Second
)

// LinePort is one line-oriented connection to a streaming device.
type LinePort interface {
	ReadLine() (string, error)
	Close() error
}

// PortOpener dials a named device. The production opener speaks real serial;
// tests substitute fakes.
type PortOpener func(device string) (LinePort, error)

// OpenSerial opens the named device at the fixed line rate with a bounded
// read timeout.
func OpenSerial(device string) (LinePort, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: BaudRate})
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(ReadTimeout); err != nil {
		port.Close()
		return nil, err
	}
	return &serialPort{port: port}, nil
}

type serialPort struct {
	port  io.ReadCloser
	carry []byte
}

// ReadLine returns one newline-terminated line with the terminator stripped.
// The whole call is bounded by roughly ReadTimeout; on timeout whatever
// arrived so far is returned, matching line readers on other platforms.
// Bytes past the newline stay buffered for the next call.
func (p *serialPort) ReadLine() (string, error) {
	if line, ok := p.takeLine(); ok {
		return line, nil
	}

	deadline := time.Now().Add(ReadTimeout)
	buf := make([]byte, 64)
	for {
		n, err := p.port.Read(buf)
		if err != nil {
			return "", err
		}
		if n > 0 {
			p.carry = append(p.carry, buf[:n]...)
			if line, ok := p.takeLine(); ok {
				return line, nil
			}
		}
		// n == 0 means the port timeout elapsed with nothing pending.
		if n == 0 || time.Now().After(deadline) {
			line := string(p.carry)
			p.carry = nil
			return line, nil
		}
	}
}

func (p *serialPort) takeLine() (string, bool) {
	idx := bytes.IndexByte(p.carry, '\n')
	if idx < 0 {
		return "", false
	}
	line := string(p.carry[:idx])
	p.carry = append(p.carry[:0:0], p.carry[idx+1:]...)
	return line, true
}

func (p *serialPort) Close() error {
	return p.port.Close()
}
