package engine

import (
	"crypto/tls"
	"net"

	"github.com/wildfiremedia/engine/config"
	serverhttp "github.com/wildfiremedia/engine/internal/server/http"
	servertcp "github.com/wildfiremedia/engine/internal/server/tcp"
	"github.com/wildfiremedia/engine/transport"
)

// Handler turns a request into a response. Failing means the connection is
// torn down without any response being rendered.
type Handler = serverhttp.Handler

// ErrorHandler observes accept-phase and dispatch-phase failures.
type ErrorHandler = servertcp.ErrorHandler

type encryption uint8

const (
	plain encryption = iota
	manualTLS
	autoTLS
)

// App wires up the engine: a listening address, tuning knobs and an
// optional security layer, all fixed before serving begins.
type App struct {
	addr    string
	cfg     *config.Config
	enc     encryption
	certs   []tls.Certificate
	domains []string
	onError ErrorHandler
	srv     *servertcp.Server
}

func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	if cfg != nil {
		a.cfg = cfg
	}

	return a
}

// TLS serves over TLS with the passed certificates.
func (a *App) TLS(certs ...tls.Certificate) *App {
	a.enc = manualTLS
	a.certs = certs
	return a
}

// AutoHTTPS serves over TLS with certificates obtained via ACME. If domains
// are passed, certificates are issued for them only.
func (a *App) AutoHTTPS(domains ...string) *App {
	a.enc = autoTLS
	a.domains = domains
	return a
}

// OnError installs a callback observing accept and dispatch failures.
func (a *App) OnError(cb ErrorHandler) *App {
	a.onError = cb
	return a
}

// OnRequest binds the listener and serves with the passed handler. It blocks
// until the app is stopped. Binding failures are returned right away: there
// is nothing to serve without a socket.
func (a *App) OnRequest(handler Handler) error {
	sock, err := a.bind()
	if err != nil {
		return err
	}

	httpServer := serverhttp.NewServer(a.cfg, handler)
	a.srv = servertcp.NewServer(sock, func(conn net.Conn) {
		client := transport.NewClient(
			conn, a.cfg.NET.ReadTimeout, make([]byte, a.cfg.NET.ReadBufferSize),
		)
		httpServer.Run(client)
	}, a.onError)

	return a.srv.Start()
}

// Stop shuts the listener and all the live connections down.
func (a *App) Stop() error {
	if a.srv == nil {
		return nil
	}

	return a.srv.Stop()
}

// GracefulShutdown stops accepting new connections, leaving the live ones
// free to finish.
func (a *App) GracefulShutdown() error {
	if a.srv == nil {
		return nil
	}

	return a.srv.GracefulShutdown()
}

func (a *App) bind() (net.Listener, error) {
	switch a.enc {
	case manualTLS:
		return transport.BindTLS(a.addr, a.certs)
	case autoTLS:
		return transport.BindAutoTLS(a.addr, a.domains...)
	default:
		return transport.Bind(a.addr)
	}
}
