package http

import (
	"github.com/wildfiremedia/engine/config"
	"github.com/wildfiremedia/engine/http"
	"github.com/wildfiremedia/engine/internal/protocol/http1"
	"github.com/wildfiremedia/engine/transport"
)

// Handler turns a request into a response. Failing means the connection is
// torn down: no error response is synthesized on the handler's behalf.
type Handler func(request *http.Request) (*http.Response, error)

// Server drives the keep-alive exchange loop over established connections.
// One instance is shared by all of them; it holds read-only state only.
type Server struct {
	cfg       *config.Config
	onRequest Handler
}

func NewServer(cfg *config.Config, onRequest Handler) *Server {
	return &Server{
		cfg:       cfg,
		onRequest: onRequest,
	}
}

// Run serves the connection until it is done: either side hangs up, an
// exchange fails, or the request signals the end of the session.
func (s *Server) Run(client transport.Client) {
	client.SetTimeout(s.cfg.NET.ReadTimeout)
	serializer := http1.NewSerializer(make([]byte, 0, s.cfg.HTTP.ResponseBuffSize))

	for s.exchange(client, serializer) {
	}

	_ = client.Close()
}

// exchange runs a single parse-respond-serialize cycle, reporting whether
// the connection is good for another one.
func (s *Server) exchange(client transport.Client, serializer *http1.Serializer) (ok bool) {
	request, err := http1.ParseRequest(client, s.cfg.HTTP.HeadersPrealloc)
	if err != nil {
		return false
	}

	keepAlive := request.KeepAlive()

	response, err := s.onRequest(request)
	if err != nil || response == nil {
		return false
	}

	if err = serializer.Write(response, client); err != nil {
		return false
	}

	if hook := response.Reveal().Hook; hook != nil {
		hook(client)
	}

	return keepAlive && !client.Closed()
}
