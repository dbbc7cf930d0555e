package transport

import (
	"io"
	"net"
	"time"
)

type client struct {
	conn    net.Conn
	block   []byte
	pos     int
	wbuff   []byte
	timeout time.Duration
	closed  bool
}

// NewClient wraps a connection into a buffered Client. The block is the read
// batching storage, its capacity defines how much is requested from the
// socket at once.
func NewClient(conn net.Conn, timeout time.Duration, block []byte) Client {
	return &client{
		conn:    conn,
		block:   block[:0],
		timeout: timeout,
	}
}

// fill requests the next block from the connection. Called only when the
// current one is fully consumed.
func (c *client) fill() error {
	if c.timeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return err
		}
	}

	n, err := c.conn.Read(c.block[:cap(c.block)])
	c.block = c.block[:n]
	c.pos = 0

	if n == 0 {
		if err == nil {
			err = io.EOF
		}

		return err
	}

	return nil
}

func (c *client) ReadByte() (byte, error) {
	if c.pos >= len(c.block) {
		if err := c.fill(); err != nil {
			return 0, err
		}
	}

	b := c.block[c.pos]
	c.pos++

	return b, nil
}

func (c *client) Read(n int) ([]byte, error) {
	if c.pos >= len(c.block) {
		if err := c.fill(); err != nil {
			return nil, err
		}
	}

	if avail := len(c.block) - c.pos; n > avail {
		n = avail
	}

	piece := c.block[c.pos : c.pos+n]
	c.pos += n

	return piece, nil
}

func (c *client) ReadLine() (line []byte, err error) {
	var prev byte

	for {
		b, err := c.ReadByte()
		if err != nil {
			if err == io.EOF {
				return line, nil
			}

			return nil, err
		}

		if b == '\n' && prev == '\r' {
			return line, nil
		}

		// control bytes, a CR included, never make it into the line itself
		if b > '\r' {
			line = append(line, b)
		}

		prev = b
	}
}

func (c *client) Write(b []byte) error {
	c.wbuff = append(c.wbuff, b...)
	return nil
}

func (c *client) Flush() error {
	if len(c.wbuff) == 0 {
		return nil
	}

	_, err := c.conn.Write(c.wbuff)
	c.wbuff = c.wbuff[:0]

	return err
}

func (c *client) SetTimeout(d time.Duration) {
	c.timeout = d
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	c.closed = true
	return c.conn.Close()
}

func (c *client) Closed() bool {
	return c.closed
}
