package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

var (
	// ErrRootNotFound is returned when the document root does not exist.
	ErrRootNotFound = errors.New("document root does not exist")
	// ErrRootNotDir is returned when the document root is not a directory.
	ErrRootNotDir = errors.New("document root is not a directory")
	// ErrInvalidPort is returned when the port is outside 1-65535.
	ErrInvalidPort = errors.New("invalid listen port")
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port the server listens on, across all interfaces.
	Port int `mapstructure:"port" default:"8080"`
	// Root is the document root every request path is resolved against.
	Root string `mapstructure:"root" default:"/home/user/webapp"`
}

// Address returns the listen address covering all interfaces.
func (c Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

// Validate checks that the port is usable and that the document root is an
// accessible directory.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	info, err := os.Stat(c.Root)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrRootNotFound, c.Root)
	}
	if err != nil {
		return fmt.Errorf("failed to stat document root %s: %w", c.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, c.Root)
	}

	// Stat succeeds on directories we cannot list; opening catches that.
	dir, err := os.Open(c.Root)
	if err != nil {
		return fmt.Errorf("document root %s is not accessible: %w", c.Root, err)
	}
	return dir.Close()
}
