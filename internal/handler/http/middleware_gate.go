// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/gate"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/utils"
)

// withGate screens the request through the request gate. Blocked and
// banned clients get 403 with a fixed body and never reach routing, so an
// unmatched path is logged here as well.
func (h *Handler) withGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := gate.RequestInfo{
			IP:            utils.ClientIP(r),
			Method:        r.Method,
			Path:          r.URL.Path,
			UserAgent:     r.UserAgent(),
			ContentLength: max(r.ContentLength, 0),
		}

		verdict := h.gate.Check(r.Context(), info)

		log := logger.FromRequest(r)
		event := log.Info()
		if verdict.Decision != gate.DecisionLog {
			event = log.Warn()
		}
		event = event.
			Str("ip", info.IP).
			Str("method", info.Method).
			Str("path", info.Path).
			Str("decision", string(verdict.Decision)).
			Str("source", string(verdict.Source)).
			Bool("banned", verdict.Banned)
		known, matched := routeKnown(r)
		if matched {
			event = event.Bool("route_known", known)
		}
		event.Msg("gate decision")

		if !verdict.Allowed() {
			if matched && !known {
				logRouteNotFound(r)
			}
			utils.WriteError(w, app.MsgRequestBlocked, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
