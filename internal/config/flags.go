// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a gateway listen address in format [host]:[port]
//	-gateway gateway base URL used by the client
//	-d database DSN
//	-models models directory served by the gateway
//	-model-path model asset path loaded by the client preview
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-password-min-length minimum password length accepted on sign up
//	-log-file client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var gatewayURL string
	var databaseDSN string
	var modelsDir string
	var modelPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var passwordMinLength int
	var logFile string

	fs := flag.NewFlagSet("house-builder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&gatewayURL, "gateway", "", "Auth gateway base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&modelsDir, "models", "", "Models directory")
	fs.StringVar(&modelPath, "model-path", "", "Model asset path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&passwordMinLength, "password-min-length", 0, "Minimum password length")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordMinLength: passwordMinLength,
			LogFile:           logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{ModelsDir: modelsDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    gatewayURL,
			RequestTimeout: requestTimeout,
		},
		Preview:      Preview{ModelPath: modelPath},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
