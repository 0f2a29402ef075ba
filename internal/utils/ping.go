package utils

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ServiceAddress resolves a health check target to host:port. The target may be
// empty, a bare port, host:port or a URL. A missing host is the loopback
// address the server listens on, a missing port is defaultPort (the PORT the
// server was configured with), whatever the URL scheme.
func ServiceAddress(target, defaultPort string) (string, error) {
	var host, port string

	target = strings.TrimSpace(target)
	switch {
	case target == "":
	case strings.Contains(target, "://"):
		u, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		host, port = u.Hostname(), u.Port()
	case isPort(target):
		port = target
	default:
		h, p, err := net.SplitHostPort(target)
		if err != nil {
			host = target
		} else {
			host, port = h, p
		}
	}

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = defaultPort
	}
	if !isPort(port) {
		return "", fmt.Errorf("invalid port %q for %s", port, host)
	}
	return net.JoinHostPort(host, port), nil
}

// PingService dials the resolved target and returns the address it reached
func PingService(target, defaultPort string, timeout time.Duration) (string, error) {
	address, err := ServiceAddress(target, defaultPort)
	if err != nil {
		return "", err
	}

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return address, fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return address, nil
}

func isPort(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0 && n <= 65535
}
