// Package dummy provides an in-memory net.Conn for tests.
package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn hands out the input in chunks of at most Chunk bytes and records everything written.
type Conn struct {
	input  []byte
	chunk  int
	Output []byte
	closed bool
}

// NewConn returns a connection, which reads the input in one go. The reads after the input
// is exhausted return io.EOF.
func NewConn(input []byte) *Conn {
	return &Conn{
		input: input,
		chunk: len(input),
	}
}

// Chunked limits every read by n bytes.
func (c *Conn) Chunked(n int) *Conn {
	c.chunk = n
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.input) == 0 {
		return 0, io.EOF
	}

	n = copy(b[:min(len(b), c.chunk)], c.input)
	c.input = c.input[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	c.Output = append(c.Output, b...)
	return len(b), nil
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

func (c *Conn) Closed() bool {
	return c.closed
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 80}
}

func (c *Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 51234}
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
