package utils

import (
	"net"
	"net/http/httptest"
	"testing"
	"time"
)

func TestServiceAddress(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"", "127.0.0.1:3000"},
		{"8080", "127.0.0.1:8080"},
		{":8080", "127.0.0.1:8080"},
		{"api.internal", "api.internal:3000"},
		{"api.internal:9000", "api.internal:9000"},
		{"http://api.internal", "api.internal:3000"},
		{"https://api.internal:8443/health", "api.internal:8443"},
		{"http://[::1]:7000", "[::1]:7000"},
	}

	for _, tt := range tests {
		got, err := ServiceAddress(tt.target, "3000")
		if err != nil {
			t.Errorf("ServiceAddress(%q) failed: %v", tt.target, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ServiceAddress(%q) = %q, expected %q", tt.target, got, tt.expected)
		}
	}
}

func TestServiceAddressErrors(t *testing.T) {
	tests := []struct {
		target      string
		defaultPort string
	}{
		{"://bad", "3000"},
		{"", ""},
		{"api.internal:http", "3000"},
		{"70000", ""},
	}

	for _, tt := range tests {
		if got, err := ServiceAddress(tt.target, tt.defaultPort); err == nil {
			t.Errorf("ServiceAddress(%q, %q) = %q, expected an error", tt.target, tt.defaultPort, got)
		}
	}
}

func TestPingService(t *testing.T) {
	srv := httptest.NewServer(nil)
	defer srv.Close()

	addr, err := PingService(srv.URL, "", time.Second)
	if err != nil {
		t.Errorf("Expected %s to be reachable: %v", srv.URL, err)
	}
	if addr != srv.Listener.Addr().String() {
		t.Errorf("Expected address %s, got %s", srv.Listener.Addr(), addr)
	}

	// A bare port is the local listener
	_, port, _ := net.SplitHostPort(srv.Listener.Addr().String())
	if _, err := PingService("", port, time.Second); err != nil {
		t.Errorf("Expected port %s to be reachable: %v", port, err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	closed := ln.Addr().String()
	ln.Close()

	if _, err := PingService("http://"+closed, "", 500*time.Millisecond); err == nil {
		t.Errorf("Expected %s to be unreachable", closed)
	}
	if _, err := PingService("://bad", "3000", time.Second); err == nil {
		t.Error("Expected an error for an invalid URL")
	}
}
