// Package tlsconfig builds the TLS 1.3 mutual TLS configuration shared by the
// jobserver and jobctl.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc/credentials"
)

// Config holds the certificate paths and role of one side of the connection.
type Config struct {
	CertPath   string
	KeyPath    string
	CACertPath string

	// ServerName is the name the client verifies the server certificate
	// against. If empty, the host part of ServerAddr is used.
	ServerName string
	ServerAddr string

	Server bool
}

// SetupTLS loads the certificates in config. A server config requires and
// verifies client certificates; a client config verifies the server against
// the CA.
func SetupTLS(config *Config) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(config.CertPath, config.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate: %w", err)
	}

	caCert, err := os.ReadFile(config.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, errors.New("failed to parse CA certificate")
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS13,
		InsecureSkipVerify: false,
		Certificates:       []tls.Certificate{cert},
	}

	if config.Server {
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
		tlsConfig.ClientCAs = caCertPool
	} else {
		tlsConfig.RootCAs = caCertPool
		tlsConfig.ServerName = serverName(config)
	}

	return tlsConfig, nil
}

// Credentials returns gRPC transport credentials for config.
func Credentials(config *Config) (credentials.TransportCredentials, error) {
	tlsConfig, err := SetupTLS(config)
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(tlsConfig), nil
}

func serverName(config *Config) string {
	if config.ServerName != "" {
		return config.ServerName
	}

	host, _, err := net.SplitHostPort(config.ServerAddr)
	if err != nil {
		return config.ServerAddr
	}

	return host
}
