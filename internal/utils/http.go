// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// WriteJSON serializes data and writes it with the given status code and a
// JSON content type. On marshal failure it answers 500 and returns the
// error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

// ClientIP returns the host part of RemoteAddr. Requests relayed by a
// trusted proxy have RemoteAddr rewritten to the forwarded client first.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ForwardedClientIP returns the address in X-Real-IP when the peer in
// RemoteAddr falls into one of trusted. It returns "" for any other peer
// and for a header that is not an IP address.
func ForwardedClientIP(r *http.Request, trusted []netip.Prefix) string {
	if len(trusted) == 0 {
		return ""
	}

	peer, err := netip.ParseAddr(ClientIP(r))
	if err != nil || !containsAddr(trusted, peer.Unmap()) {
		return ""
	}

	forwarded, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP")))
	if err != nil {
		return ""
	}
	return forwarded.Unmap().String()
}

func containsAddr(prefixes []netip.Prefix, addr netip.Addr) bool {
	for _, prefix := range prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
