// Package server holds the HTTP server configuration and listener setup.
//
// The Document Root is carried as an explicit configuration value and is
// never applied to the process working directory.
//
// # Configuration
//
// The Config struct defines the listen port (default 8080) and the
// Document Root (default /home/user/webapp).
//
// # Usage
//
//	if err := cfg.Server.Validate(); err != nil {
//	    return err
//	}
//	ln, err := server.Listen(cfg.Server)
package server
