// Package linkprobe checks that external links referenced by the docs answer.
package linkprobe

import (
	"net"
	"net/http"
	"time"
)

type Config struct {
	// Total timeout for one probe (includes redirects and headers).
	// A context deadline can still override this.
	Timeout time.Duration

	DialTimeout    time.Duration
	TLSHandshake   time.Duration
	ResponseHeader time.Duration

	MaxIdleConns int
}

func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		DialTimeout:    5 * time.Second,
		TLSHandshake:   5 * time.Second,
		ResponseHeader: 5 * time.Second,
		MaxIdleConns:   10,
	}
}

func NewClient(cfg Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:          cfg.MaxIdleConns,
		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
