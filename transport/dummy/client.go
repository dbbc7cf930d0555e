package dummy

import (
	"github.com/wildfiremedia/engine/transport"
)

const blockSize = 2048

// NewClient returns a buffered transport.Client over an in-memory conn fed
// with the passed script, alongside the conn itself for inspection.
func NewClient(script ...[]byte) (transport.Client, *Conn) {
	conn := NewConn(script...)
	return transport.NewClient(conn, 0, make([]byte, blockSize)), conn
}
