package http1

import (
	"strconv"

	"github.com/wildfiremedia/engine/http/status"
	"github.com/wildfiremedia/engine/transport"
)

var chunkZeroTrailer = []byte("0\r\n\r\n")

// ChunkedWriter frames outgoing payloads as chunked transfer coding
// segments. Closing it emits the terminal zero-size chunk; tearing the
// transport itself down is left to the peer.
type ChunkedWriter struct {
	client transport.Client
	buff   []byte
	closed bool
}

func NewChunkedWriter(client transport.Client) *ChunkedWriter {
	return &ChunkedWriter{
		client: client,
	}
}

// Write sends the payload as a single chunk: its length in hex, CRLF, the
// payload, CRLF, transmitted as one write. Empty payloads are suppressed, as
// a zero-length chunk would read as the terminator.
func (w *ChunkedWriter) Write(b []byte) error {
	if w.closed {
		return status.ErrCloseConnection
	}

	if len(b) == 0 {
		return nil
	}

	w.buff = strconv.AppendUint(w.buff[:0], uint64(len(b)), 16)
	w.buff = append(w.buff, '\r', '\n')
	w.buff = append(w.buff, b...)
	w.buff = append(w.buff, '\r', '\n')

	if err := w.client.Write(w.buff); err != nil {
		return err
	}

	return w.client.Flush()
}

// Close terminates the coded body with a zero-size chunk. The writer accepts
// no payloads afterwards.
func (w *ChunkedWriter) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true

	if err := w.client.Write(chunkZeroTrailer); err != nil {
		return err
	}

	return w.client.Flush()
}
