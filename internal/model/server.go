package model

import (
	"context"
	"net"
)

// SecurityLayer opens listeners, optionally wrapping them in TLS.
type SecurityLayer interface {
	Listen(network, addr string) (net.Listener, error)
}

// Server is a long-running transport bound to one address.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
