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

// ParseFlags parses all configuration flags from args, which must not
// include the program name. A fresh flag set is used on every call, so the
// function may be called repeatedly.
//
// Flags:
//
//	-c/-config json or yaml file path with configs
//	-target build target (development, production)
//	-version version string served by the environment server
//	-api-server-url backend API base URL
//	-auth0-url identity-provider domain
//	-auth0-audience access-token audience
//	-auth0-client-id public client identifier
//	-auth0-callback-url post-login redirect URL
//	-a environment server address in format [host]:[port]
//	-request-timeout environment server request timeout (e.g., "10s")
//	-adapter-timeout discovery request timeout (e.g., "5s")
//	-check-provider verify the identity provider before writing output
//	-check-interval repeat the provider check in the server (e.g., "5m")
//	-o output file path
//	-format output format (json, ts, yaml)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var target, version, apiServerURL string
	var auth0URL, auth0Audience, auth0ClientID, auth0CallbackURL string
	var requestTimeout, adapterTimeout, checkInterval time.Duration
	var checkProvider bool
	var outputPath, outputFormat string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "Config file path (json or yaml)")
	fs.StringVar(&jsonConfigPath, "config", "", "Config file path (alias)")
	fs.StringVar(&target, "target", "", "Build target: development or production")
	fs.StringVar(&version, "version", "", "Served version string")
	fs.StringVar(&apiServerURL, "api-server-url", "", "Backend API base URL")
	fs.StringVar(&auth0URL, "auth0-url", "", "Identity-provider domain")
	fs.StringVar(&auth0Audience, "auth0-audience", "", "Access-token audience")
	fs.StringVar(&auth0ClientID, "auth0-client-id", "", "Public client identifier")
	fs.StringVar(&auth0CallbackURL, "auth0-callback-url", "", "Post-login redirect URL")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Discovery request timeout (e.g., 5s)")
	fs.BoolVar(&checkProvider, "check-provider", false, "Verify the identity provider before writing output")
	fs.DurationVar(&checkInterval, "check-interval", 0, "Provider check interval of the server, 0 disables it")
	fs.StringVar(&outputPath, "o", "", "Output file path, stdout when empty")
	fs.StringVar(&outputFormat, "format", "", "Output format: json, ts or yaml")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Target:       target,
			Version:      version,
			APIServerURL: apiServerURL,
		},
		Auth0: Auth0{
			URL:         auth0URL,
			Audience:    auth0Audience,
			ClientID:    auth0ClientID,
			CallbackURL: auth0CallbackURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: adapterTimeout,
			CheckProvider:  checkProvider,
			CheckInterval:  checkInterval,
		},
		Output: Output{
			Path:   outputPath,
			Format: outputFormat,
		},
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

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
