// Package memsocket connects an HTTP client to an HTTP server living in the
// same process without opening a network port.
package memsocket

import "net"

// Network names the in-process transport in every address it reports.
const Network = "noticeboard-inproc"

// pipeAddr is the address of the listener; both ends of a connection report
// the addresses of the underlying net.Pipe.
type pipeAddr struct{}

func (pipeAddr) Network() string { return Network }
func (pipeAddr) String() string  { return Network }

type MemSocket struct {
	listener *Listener
}

func NewMemSocket() *MemSocket {
	return &MemSocket{listener: newListener()}
}

// Dial returns the client end of a new pipe whose server end is handed to
// the listener.
func (memsocket *MemSocket) Dial() (net.Conn, error) {
	if memsocket.listener.closed() {
		return nil, ErrClosed
	}
	c1, c2 := net.Pipe()
	select {
	case memsocket.listener.pipe <- c2:
		return c1, nil
	case <-memsocket.listener.done:
		c1.Close()
		c2.Close()
		return nil, ErrClosed
	}
}

// DialAddr has the signature fasthttp.Client expects for its Dial field.
func (memsocket *MemSocket) DialAddr(addr string) (net.Conn, error) {
	return memsocket.Dial()
}

func (memsocket *MemSocket) Listener() *Listener {
	return memsocket.listener
}
