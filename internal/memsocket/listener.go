package memsocket

import (
	"errors"
	"net"
	"sync"
)

var ErrClosed = errors.New("memsocket: listener closed")

type Listener struct {
	pipe   chan net.Conn
	done   chan struct{}
	closer sync.Once
}

func newListener() *Listener {
	return &Listener{
		pipe: make(chan net.Conn, 1024),
		done: make(chan struct{}),
	}
}

// Accept waits for and returns the next connection to the listener.
func (listener *Listener) Accept() (net.Conn, error) {
	select {
	case conn := <-listener.pipe:
		return conn, nil
	case <-listener.done:
		return nil, ErrClosed
	}
}

// Close closes the listener.
// Any blocked Accept operations will be unblocked and return errors.
func (listener *Listener) Close() error {
	listener.closer.Do(func() {
		close(listener.done)
	})
	return nil
}

// Addr returns the listener's network address.
func (listener *Listener) Addr() net.Addr {
	return pipeAddr{}
}

func (listener *Listener) closed() bool {
	select {
	case <-listener.done:
		return true
	default:
		return false
	}
}
