// Package transport accepts connections and hands them over to a callback, one goroutine
// per connection.
package transport

import (
	"net"

	"github.com/indigo-web/webparse/config"
)

type Transport interface {
	// Bind creates the listener. No connections are accepted until Listen is called.
	Bind(addr string) error
	// Listen blocks, accepting connections until Stop is called.
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}
