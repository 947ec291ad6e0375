package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a bin server listen address in format [host]:[port]
//	-d bin server database DSN
//	-s panel local storage DSN
//	-r remote bin server URL
//	-s3-bucket / -s3-endpoint S3 bin backend
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-debounce persistence debounce window (e.g., "1s")
//	-log-file / -log-level logging
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, localDSN string
	var remoteAddress, s3Bucket, s3Endpoint string
	var jsonConfigPath string
	var logFile, logLevel string
	var requestTimeout, debounce time.Duration

	fs := flag.NewFlagSet("painel", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Bin server database DSN")
	fs.StringVar(&localDSN, "s", "", "Local storage DSN (path, bolt://path or memory)")
	fs.StringVar(&remoteAddress, "r", "", "Remote bin server URL")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket for bins")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3 endpoint URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&debounce, "debounce", 0, "Persistence debounce window (e.g., 1s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB:    DBConfig{DSN: databaseDSN},
			Local: LocalStorageConfig{DSN: localDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
			S3:             S3{Bucket: s3Bucket, Endpoint: s3Endpoint},
		},
		Workers:      Workers{DebounceWindow: debounce},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
