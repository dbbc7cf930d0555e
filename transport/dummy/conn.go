package dummy

import (
	"io"
	"net"
	"time"
)

// Conn is an in-memory net.Conn fed with a fixed script of reads. Every
// Read call serves one script entry at most, mimicking how a socket hands
// data out in pieces. Writes are recorded and can be inspected afterwards.
type Conn struct {
	script  [][]byte
	pointer int
	written []byte
	closed  bool
}

func NewConn(script ...[]byte) *Conn {
	return &Conn{
		script: script,
	}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.closed || c.pointer >= len(c.script) {
		return 0, io.EOF
	}

	n = copy(b, c.script[c.pointer])
	if n < len(c.script[c.pointer]) {
		c.script[c.pointer] = c.script[c.pointer][n:]
	} else {
		c.pointer++
	}

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.closed {
		return 0, io.ErrClosedPipe
	}

	c.written = append(c.written, b...)

	return len(b), nil
}

// Written returns everything written into the conn so far.
func (c *Conn) Written() []byte {
	return c.written
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

func (c *Conn) IsClosed() bool {
	return c.closed
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return nil
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
