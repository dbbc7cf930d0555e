package tcp

import (
	"fmt"
	"net"
	"sync"

	"github.com/wildfiremedia/engine/http/status"
)

type (
	onConnection func(net.Conn)
	// ErrorHandler observes accept-phase and dispatch-phase failures. It is
	// never called for errors inside an individual exchange: those only show
	// up as the connection going away.
	ErrorHandler func(err error)
)

// Server owns an already bound listener and fans accepted connections out,
// one goroutine per connection. Connections share nothing mutable with each
// other or with the accept loop.
type Server struct {
	sock     net.Listener
	onConn   onConnection
	onError  ErrorHandler
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	wg       sync.WaitGroup
	shutdown bool
}

func NewServer(sock net.Listener, onConn onConnection, onError ErrorHandler) *Server {
	if onError == nil {
		onError = func(error) {}
	}

	return &Server{
		sock:    sock,
		onConn:  onConn,
		onError: onError,
		conns:   map[net.Conn]struct{}{},
	}
}

// Start runs the accept loop until the server is stopped. Accept failures
// are reported and the loop keeps going: a single refused connection must
// never take the whole server down.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.isShutdown() {
				s.wg.Wait()
				return status.ErrShutdown
			}

			s.onError(err)
			continue
		}

		s.track(conn)
		s.wg.Add(1)
		go s.connHandler(conn)
	}
}

// Stop shuts the listener and ALL the connections down.
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.conns {
		_ = conn.Close()
	}

	return nil
}

// GracefulShutdown stops the listener, leaving all the connections free to
// end their lives peacefully.
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

func (s *Server) connHandler(conn net.Conn) {
	defer func() {
		if v := recover(); v != nil {
			s.onError(fmt.Errorf("connection handler panic: %v", v))
			_ = conn.Close()
		}

		s.untrack(conn)
		s.wg.Done()
	}()

	s.onConn(conn)
}

func (s *Server) stopListener() error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()

	return s.sock.Close()
}

func (s *Server) isShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shutdown
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
