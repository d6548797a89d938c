// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ledger-chat/internal/utils"
)

// withRealIP replaces RemoteAddr with the X-Real-IP address when the request
// comes from a trusted proxy. The header of any other peer is ignored.
func (h *Handler) withRealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := utils.ForwardedClientIP(r, h.trustedProxies); ip != "" {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}
