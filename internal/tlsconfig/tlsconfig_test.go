package tlsconfig_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/nixpig/jobqueue/certs"
	"github.com/nixpig/jobqueue/internal/tlsconfig"
)

func TestSetupTLS(t *testing.T) {
	t.Parallel()

	certDir := t.TempDir()

	certFiles := []string{
		"ca.crt",
		"server.crt",
		"server.key",
		"client-operator.crt",
		"client-operator.key",
	}

	for _, filename := range certFiles {
		data, err := certs.FS.ReadFile(filename)
		if err != nil {
			t.Fatalf("read cert %s: %v", filename, err)
		}

		path := filepath.Join(certDir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("save cert %s: %v", filename, err)
		}
	}

	caCertPath := filepath.Join(certDir, "ca.crt")
	serverCertPath := filepath.Join(certDir, "server.crt")
	serverKeyPath := filepath.Join(certDir, "server.key")
	operatorCertPath := filepath.Join(certDir, "client-operator.crt")
	operatorKeyPath := filepath.Join(certDir, "client-operator.key")

	t.Run("Test server TLS config", func(t *testing.T) {
		t.Parallel()

		tlsConfig, err := tlsconfig.SetupTLS(&tlsconfig.Config{
			CertPath:   serverCertPath,
			KeyPath:    serverKeyPath,
			CACertPath: caCertPath,
			Server:     true,
		})
		if err != nil {
			t.Fatalf("expected TLS setup not to return error: got '%v'", err)
		}

		if tlsConfig.MinVersion != tls.VersionTLS13 {
			t.Errorf(
				"expected min TLS version: got '%v', want '%v'",
				tlsConfig.MinVersion,
				tls.VersionTLS13,
			)
		}

		if tlsConfig.ClientAuth != tls.RequireAndVerifyClientCert {
			t.Errorf(
				"expected client auth: got '%v', want '%v'",
				tlsConfig.ClientAuth,
				tls.RequireAndVerifyClientCert,
			)
		}

		if tlsConfig.ClientCAs == nil {
			t.Errorf("expected client CAs to be set")
		}

		if tlsConfig.InsecureSkipVerify != false {
			t.Errorf(
				"expected insecure skip verify: got '%t', want 'false'",
				tlsConfig.InsecureSkipVerify,
			)
		}
	})

	t.Run("Test client TLS config", func(t *testing.T) {
		t.Parallel()

		tlsConfig, err := tlsconfig.SetupTLS(&tlsconfig.Config{
			CertPath:   operatorCertPath,
			KeyPath:    operatorKeyPath,
			CACertPath: caCertPath,
			Server:     false,
			ServerName: "localhost",
		})
		if err != nil {
			t.Fatalf("expected TLS setup not to return error: got '%v'", err)
		}

		if tlsConfig.MinVersion != tls.VersionTLS13 {
			t.Errorf(
				"expected min TLS version: got '%v', want '%v'",
				tlsConfig.MinVersion,
				tls.VersionTLS13,
			)
		}

		if tlsConfig.ServerName != "localhost" {
			t.Errorf(
				"expected server name: got '%s', want 'localhost'",
				tlsConfig.ServerName,
			)
		}

		if tlsConfig.RootCAs == nil {
			t.Errorf("expected root CAs to be set")
		}

		if tlsConfig.InsecureSkipVerify != false {
			t.Errorf(
				"expected insecure skip verify: got '%t', want 'false'",
				tlsConfig.InsecureSkipVerify,
			)
		}
	})

	t.Run("Test client server name from address", func(t *testing.T) {
		t.Parallel()

		tlsConfig, err := tlsconfig.SetupTLS(&tlsconfig.Config{
			CertPath:   operatorCertPath,
			KeyPath:    operatorKeyPath,
			CACertPath: caCertPath,
			ServerAddr: "127.0.0.1:8443",
		})
		if err != nil {
			t.Fatalf("expected TLS setup not to return error: got '%v'", err)
		}

		if tlsConfig.ServerName != "127.0.0.1" {
			t.Errorf(
				"expected server name: got '%s', want '127.0.0.1'",
				tlsConfig.ServerName,
			)
		}
	})

	t.Run("Test transport credentials", func(t *testing.T) {
		t.Parallel()

		creds, err := tlsconfig.Credentials(&tlsconfig.Config{
			CertPath:   serverCertPath,
			KeyPath:    serverKeyPath,
			CACertPath: caCertPath,
			Server:     true,
		})
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if got := creds.Info().SecurityProtocol; got != "tls" {
			t.Errorf("expected security protocol: got '%s', want 'tls'", got)
		}
	})

	scenarios := map[string]*tlsconfig.Config{
		"Test missing certificate": {
			CertPath:   filepath.Join(certDir, "missing.crt"),
			KeyPath:    serverKeyPath,
			CACertPath: caCertPath,
		},
		"Test mismatched key": {
			CertPath:   serverCertPath,
			KeyPath:    operatorKeyPath,
			CACertPath: caCertPath,
		},
		"Test missing CA certificate": {
			CertPath:   serverCertPath,
			KeyPath:    serverKeyPath,
			CACertPath: filepath.Join(certDir, "missing.crt"),
		},
		"Test invalid CA certificate": {
			CertPath:   serverCertPath,
			KeyPath:    serverKeyPath,
			CACertPath: serverKeyPath,
		},
	}

	for scenario, config := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			t.Parallel()

			if _, err := tlsconfig.SetupTLS(config); err == nil {
				t.Errorf("expected TLS setup to return error")
			}
		})
	}
}
