package http

import (
	"net"

	"golang.org/x/net/http/httpguts"

	"github.com/wildfiremedia/engine/http/method"
	"github.com/wildfiremedia/engine/http/proto"
	"github.com/wildfiremedia/engine/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents a single parsed HTTP request. It is created fresh per
// message and owned exclusively by the connection it arrived on.
type Request struct {
	// Method is an enum representation of the request method. Unrecognized
	// methods map to method.Unknown; rejecting those is up to the responder.
	Method method.Method
	// Path is the request-target exactly as it appeared on the wire, query
	// string included.
	Path string
	// Protocol is the protocol version the request was made with.
	Protocol proto.Protocol
	// Headers holds non-normalized header pairs, even though lookup is
	// case-insensitive. Values are not validated and may contain anything.
	Headers Headers
	// Body is the buffered request payload.
	Body []byte
	// Remote holds the remote address. Note that this is generally not a
	// good way to identify a user, as there might be proxies in the middle.
	Remote net.Addr
}

func NewRequest(
	m method.Method, path string, protocol proto.Protocol,
	headers Headers, body []byte, remote net.Addr,
) *Request {
	return &Request{
		Method:   m,
		Path:     path,
		Protocol: protocol,
		Headers:  headers,
		Body:     body,
		Remote:   remote,
	}
}

// KeepAlive reports whether the connection shall be held open once the
// response is written. An explicit Connection token always wins; absent one,
// HTTP/1.1 defaults to persistent connections and HTTP/1.0 does not.
func (r *Request) KeepAlive() bool {
	connection := []string{r.Headers.Value("connection")}

	switch {
	case httpguts.HeaderValuesContainsToken(connection, "close"):
		return false
	case httpguts.HeaderValuesContainsToken(connection, "keep-alive"):
		return true
	default:
		return r.Protocol == proto.HTTP11
	}
}
