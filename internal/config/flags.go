package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

var errBadListenAddress = errors.New("want [host]:port with an IP or localhost host")

// NetAddress is the -a flag value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d database DSN
//	-files-backend blob backend ("disk" or "s3")
//	-f upload directory
//	-session-secret session cookie signing secret
//	-session-lifetime session lifetime (e.g., "720h")
//	-allowed-origin CORS origin
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var databaseDSN string
	var filesBackend string
	var uploadDir string
	var sessionSecret string
	var sessionLifetime time.Duration
	var allowedOrigin string
	var jsonConfigPath string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filesBackend, "files-backend", "", "Files backend (disk or s3)")
	fs.StringVar(&uploadDir, "f", "", "Upload directory")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing secret")
	fs.DurationVar(&sessionLifetime, "session-lifetime", 0, "Session lifetime (e.g., 720h)")
	fs.StringVar(&allowedOrigin, "allowed-origin", "", "Allowed CORS origin")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SessionSecret:   sessionSecret,
			SessionLifetime: sessionLifetime,
			AllowedOrigin:   allowedOrigin,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Backend:   filesBackend,
				UploadDir: uploadDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String renders the address for net.Listen. The zero value renders as
// "" so an unset -a flag does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces),
// "localhost" or an IP literal; IPv6 literals go in brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("listen address %q: %w", s, errBadListenAddress)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("listen port %q: %w", rawPort, errBadListenAddress)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("listen host %q is not an IP address: %w", host, errBadListenAddress)
	}

	a.Host = host
	a.Port = port
	return nil
}
