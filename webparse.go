// Package webparse bootstraps a server answering every connection with exactly one response.
// Requests are parsed by protocol/http1, their targets are available as uri.URI.
package webparse

import (
	"github.com/pkg/errors"

	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/http"
	"github.com/indigo-web/webparse/internal/server"
	"github.com/indigo-web/webparse/internal/strutil"
	"github.com/indigo-web/webparse/transport"
)

type App struct {
	addr      string
	cfg       *config.Config
	hooks     hooks
	transport transport.Transport
}

// New returns a new App instance. An address without a host (e.g. ":8080") means all
// the interfaces.
func New(addr string) *App {
	return &App{
		addr:      strutil.NormalizeAddress(addr),
		cfg:       config.Default(),
		transport: transport.NewTCP(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// OnBind calls the callback with the actual address as soon as the listener is created,
// but before any connection is accepted.
func (a *App) OnBind(cb func(addr string)) *App {
	a.hooks.OnBind = cb
	return a
}

// OnStop calls the callback when the server is down. It's guaranteed that at that moment
// all the connections are already served.
func (a *App) OnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve blocks, serving connections until Stop is called. If nil is passed instead of
// a handler, every request is answered with 200 OK.
func (a *App) Serve(handler http.Handler) error {
	if handler == nil {
		handler = http.Respond
	}

	if err := a.transport.Bind(a.addr); err != nil {
		return errors.Wrap(err, "webparse")
	}

	if a.hooks.OnBind != nil {
		a.hooks.OnBind(a.transport.Addr().String())
	}

	srv := server.New(a.cfg, handler)
	err := a.transport.Listen(a.cfg.NET, srv.HandleConn)
	a.transport.Close()
	a.transport.Wait()

	if a.hooks.OnStop != nil {
		a.hooks.OnStop()
	}

	return err
}

// Stop stops accepting new connections. The call isn't blocking, the connections being
// served at the moment are still processed until Serve returns.
func (a *App) Stop() {
	a.transport.Stop()
}

type hooks struct {
	OnBind func(addr string)
	OnStop func()
}
