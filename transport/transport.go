package transport

import (
	"net"
	"time"
)

// Client is a buffered duplex byte stream over a single connection. Reads are
// served from an internal block refilled by one underlying read call at a
// time; writes are batched until Flush.
type Client interface {
	// ReadByte returns the next byte of the stream, or io.EOF once it is
	// exhausted.
	ReadByte() (byte, error)
	// Read returns up to n bytes, possibly fewer. An empty return happens
	// only together with an error, io.EOF once the stream is exhausted.
	Read(n int) ([]byte, error)
	// ReadLine returns the next CRLF-terminated line with all control bytes
	// (including the terminator itself) stripped. Reaching the end of the
	// stream without a terminator yields whatever was accumulated so far.
	ReadLine() ([]byte, error)
	// Write appends the bytes to the outgoing buffer without transmitting.
	Write(b []byte) error
	// Flush transmits the outgoing buffer, if there is anything to transmit.
	Flush() error
	SetTimeout(d time.Duration)
	Remote() net.Addr
	Close() error
	// Closed reports whether Close has been called. The request loop consults
	// it, as a response hook is free to take the connection down.
	Closed() bool
}
