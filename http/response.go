package http

import (
	"io"

	json "github.com/json-iterator/go"

	"github.com/indigo-web/utils/uf"
	"github.com/wildfiremedia/engine/http/proto"
	"github.com/wildfiremedia/engine/http/status"
	"github.com/wildfiremedia/engine/kv"
	"github.com/wildfiremedia/engine/transport"
)

// Hook runs after a response has been fully written out, receiving the
// stream it was written to. Used for protocol upgrades and other cases
// where the connection must be taken over.
type Hook func(client transport.Client)

// Fields is the bare content of a response, as consumed by the serializer.
type Fields struct {
	Protocol proto.Protocol
	Code     status.Code
	Reason   status.Status
	Headers  Headers
	Body     Body
	Hook     Hook
}

// Response is a builder over Fields. All the methods return the response
// itself for chaining.
type Response struct {
	fields Fields
	// body is a scratch buffer for serialized bodies, e.g. JSON.
	body []byte
}

func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Protocol: proto.HTTP11,
			Code:     status.OK,
			Headers:  kv.New(),
		},
	}
}

// NewResponseOf assembles a response from already known parts. This is the
// construction path taken for parsed responses.
func NewResponseOf(
	protocol proto.Protocol, code status.Code, reason status.Status,
	headers Headers, body []byte,
) *Response {
	return &Response{
		fields: Fields{
			Protocol: protocol,
			Code:     code,
			Reason:   reason,
			Headers:  headers,
			Body:     BodyOf(body),
		},
	}
}

// Code sets the response code. The reason phrase, unless overridden via
// Reason, follows the code automatically.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Reason overrides the reason phrase implied by the response code.
func (r *Response) Reason(reason status.Status) *Response {
	r.fields.Reason = reason
	return r
}

// Header sets a response header. Setting the same key twice replaces the
// previously set value.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Set(key, value)
	return r
}

// String sets the response body to a string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response body to a byte slice. The slice is not copied.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = BodyOf(body)
	return r
}

// Stream sets the response body to a live producer. Such a body is framed
// with the chunked transfer coding at serialization time.
func (r *Response) Stream(reader io.Reader) *Response {
	r.fields.Body = StreamBody(reader)
	return r
}

// TryJSON serializes the model into the response body and sets the
// Content-Type accordingly, returning an error if the model cannot be
// serialized.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.body = r.body[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)
	r.fields.Body = BodyOf(r.body)

	return r.Header("Content-Type", "application/json"), err
}

// JSON does the same as TryJSON does, except a failure degrades to an
// internal server error response.
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Code(status.InternalServerError).Bytes(nil)
	}

	return resp
}

// Hook installs a callback to be run with the underlying stream once the
// response is written.
func (r *Response) Hook(hook Hook) *Response {
	r.fields.Hook = hook
	return r
}

// Write implements io.Writer over the scratch body buffer, letting body
// serializers stream straight into the response.
func (r *Response) Write(b []byte) (int, error) {
	r.body = append(r.body, b...)
	return len(b), nil
}

// Reveal grants access to the accumulated fields.
func (r *Response) Reveal() Fields {
	return r.fields
}
