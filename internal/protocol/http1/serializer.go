package http1

import (
	"io"
	"strconv"

	"github.com/indigo-web/utils/strcomp"

	"github.com/wildfiremedia/engine/http"
	"github.com/wildfiremedia/engine/http/status"
	"github.com/wildfiremedia/engine/transport"
)

const streamReadSize = 4 * 1024

// Serializer renders responses into the client's write buffer. One instance
// serves one connection: the render buffer is reused across sequential
// responses.
type Serializer struct {
	buff       []byte
	streamBuff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
	}
}

// Write renders the response and transmits it. Buffered bodies are framed
// with Content-Length and go out in a single flush; streamed bodies are
// framed with the chunked coding and drained through a ChunkedWriter.
func (s *Serializer) Write(response *http.Response, client transport.Client) error {
	defer s.clear()

	fields := response.Reveal()
	s.renderStatusLine(fields)
	s.renderHeaders(fields)

	if fields.Body.IsStream() {
		return s.sendStream(fields.Body.Stream(), client)
	}

	body := fields.Body.Buffered()
	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendInt(s.buff, int64(len(body)), 10)
	s.crlf()
	s.crlf()
	s.buff = append(s.buff, body...)

	if err := client.Write(s.buff); err != nil {
		return err
	}

	return client.Flush()
}

func (s *Serializer) renderStatusLine(fields http.Fields) {
	s.buff = append(s.buff, fields.Protocol.String()...)
	s.sp()
	s.buff = strconv.AppendUint(s.buff, uint64(fields.Code), 10)
	s.sp()

	reason := fields.Reason
	if reason == "" {
		reason = status.Text(fields.Code)
	}

	s.buff = append(s.buff, reason...)
	s.crlf()
}

func (s *Serializer) renderHeaders(fields http.Fields) {
	for key, value := range fields.Headers.Iter() {
		// framing headers are owned by the serializer, whatever the
		// responder set is discarded
		if strcomp.EqualFold(key, "content-length") || strcomp.EqualFold(key, "transfer-encoding") {
			continue
		}

		s.buff = append(s.buff, key...)
		s.buff = append(s.buff, ':', ' ')
		s.buff = append(s.buff, value...)
		s.crlf()
	}
}

func (s *Serializer) sendStream(reader io.Reader, client transport.Client) error {
	s.buff = append(s.buff, "Transfer-Encoding: chunked\r\n\r\n"...)
	if err := client.Write(s.buff); err != nil {
		return err
	}

	if s.streamBuff == nil {
		s.streamBuff = make([]byte, streamReadSize)
	}

	writer := NewChunkedWriter(client)

	for {
		n, err := reader.Read(s.streamBuff)
		if n > 0 {
			if werr := writer.Write(s.streamBuff[:n]); werr != nil {
				return werr
			}
		}

		switch err {
		case nil:
		case io.EOF:
			return writer.Close()
		default:
			return err
		}
	}
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}
