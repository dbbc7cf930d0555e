package http1

import (
	"strconv"

	"github.com/indigo-web/utils/uf"

	"github.com/wildfiremedia/engine/http"
	"github.com/wildfiremedia/engine/http/method"
	"github.com/wildfiremedia/engine/http/proto"
	"github.com/wildfiremedia/engine/http/status"
	"github.com/wildfiremedia/engine/kv"
	"github.com/wildfiremedia/engine/transport"
)

// ParseRequest reads a single request message off the client.
func ParseRequest(client transport.Client, headersPrealloc int) (*http.Request, error) {
	return Parse(client, headersPrealloc, requestBuilder(client))
}

// ParseResponse reads a single response message off the client.
func ParseResponse(client transport.Client, headersPrealloc int) (*http.Response, error) {
	return Parse(client, headersPrealloc, buildResponse)
}

func requestBuilder(client transport.Client) Builder[*http.Request] {
	return func(startLine [3][]byte, headers *kv.Storage, body []byte) (*http.Request, error) {
		protocol := proto.FromBytes(startLine[2])
		if protocol == proto.Unknown {
			return nil, status.ErrInvalidVersion
		}

		return http.NewRequest(
			method.Parse(uf.B2S(startLine[0])), string(startLine[1]), protocol,
			headers, body, client.Remote(),
		), nil
	}
}

func buildResponse(startLine [3][]byte, headers *kv.Storage, body []byte) (*http.Response, error) {
	protocol := proto.FromBytes(startLine[0])
	if protocol == proto.Unknown {
		return nil, status.ErrInvalidVersion
	}

	code, err := strconv.ParseUint(uf.B2S(startLine[1]), 10, 16)
	if err != nil {
		return nil, status.ErrBadRequest
	}

	return http.NewResponseOf(
		protocol, status.Code(code), status.Status(startLine[2]), headers, body,
	), nil
}
