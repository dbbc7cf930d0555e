package transport

import (
	"crypto/tls"
	"log"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/crypto/acme/autocert"
)

// BindTLS opens a TLS listener over a plain TCP one using the passed
// certificates.
func BindTLS(addr string, certs []tls.Certificate) (net.Listener, error) {
	tcp, err := Bind(addr)
	if err != nil {
		return nil, err
	}

	return tls.NewListener(tcp, &tls.Config{
		Certificates: certs,
	}), nil
}

// BindAutoTLS opens a TLS listener whose certificates are obtained (and
// renewed) via ACME. If domains are passed, certificates are issued for them
// only.
func BindAutoTLS(addr string, domains ...string) (net.Listener, error) {
	m := &autocert.Manager{
		Prompt: autocert.AcceptTOS,
	}

	if len(domains) > 0 {
		m.HostPolicy = autocert.HostWhitelist(domains...)
	}

	cache := cacheDir()
	if err := os.MkdirAll(cache, 0700); err != nil {
		log.Printf("WARNING: auto TLS: not using a certificate cache: %s", err)
	} else {
		m.Cache = autocert.DirCache(cache)
	}

	tcp, err := Bind(addr)
	if err != nil {
		return nil, err
	}

	return tls.NewListener(tcp, &tls.Config{
		GetCertificate: m.GetCertificate,
	}), nil
}

func cacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "engine-autocert")
}
