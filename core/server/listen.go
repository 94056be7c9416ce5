package server

import (
	"fmt"
	"net"
)

// Listen binds the TCP listener for the configured port. Binding happens
// before any handler is attached so a failure leaves nothing bound.
func Listen(cfg Config) (net.Listener, error) {
	ln, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to bind port %d: %w", cfg.Port, err)
	}
	return ln, nil
}
