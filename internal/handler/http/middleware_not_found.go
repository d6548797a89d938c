// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/utils"
	"github.com/go-chi/chi/v5"
)

// notFound is registered via [chi.Mux.NotFound]. Every unmatched request is
// logged with the client address so scanners show up in the log even when
// the gate is disabled.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	logRouteNotFound(r)
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

func logRouteNotFound(r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("ip", utils.ClientIP(r)).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("user_agent", r.UserAgent()).
		Msg("route not found")
}

// routeKnown reports whether the router serving r has a route for its
// method and path. ok is false outside a chi router.
func routeKnown(r *http.Request) (known, ok bool) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return false, false
	}
	return rctx.Routes.Match(chi.NewRouteContext(), r.Method, r.URL.Path), true
}

// methodNotAllowed overrides chi's 405: a known path called with an
// unsupported method answers 404, the same as an unknown path, so route
// existence is not leaked.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}
