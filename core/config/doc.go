// Package config provides configuration management for the static server.
//
// It uses Viper to read environment variables (optionally seeded from a .env
// file via godotenv), with defaults declared on the struct tags of each
// partial configuration.
//
// # Configuration Structure
//
//   - Server: listen port (SERVER_PORT) and document root (SERVER_ROOT)
//   - Log: level (LOG_LEVEL) and format (LOG_FORMAT)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
