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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-k/-server-key shared server key
//	-storage-type entity store backend ("json" or "sqlite")
//	-json-dir JSON store directory
//	-json-file JSON store file name
//	-sqlite-path SQLite database path
//	-cors enable cross-origin requests
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var serverKey string
	var storageType string
	var jsonDir string
	var jsonFile string
	var sqlitePath string
	var corsEnabled bool
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&serverKey, "k", "", "Shared server key")
	flag.StringVar(&serverKey, "server-key", "", "Shared server key (alias)")
	flag.StringVar(&storageType, "storage-type", "", "Entity store backend: json or sqlite")
	flag.StringVar(&jsonDir, "json-dir", "", "JSON store directory")
	flag.StringVar(&jsonFile, "json-file", "", "JSON store file name")
	flag.StringVar(&sqlitePath, "sqlite-path", "", "SQLite database path")
	flag.BoolVar(&corsEnabled, "cors", false, "Enable cross-origin requests")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ServerKey: serverKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CORS:           corsEnabled,
		},
		Storage: Storage{
			Type: storageType,
			JSON: JSONStore{
				Dir:  jsonDir,
				File: jsonFile,
			},
			SQLite: SQLite{
				Path: sqlitePath,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
