// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/gate"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier answers every request with the same decision and counts
// the calls.
type stubClassifier struct {
	decision gate.Decision
	err      error
	calls    atomic.Int32
	lastInfo atomic.Pointer[gate.RequestInfo]
}

func (c *stubClassifier) Classify(_ context.Context, info gate.RequestInfo) (gate.Decision, error) {
	c.calls.Add(1)
	c.lastInfo.Store(&info)
	return c.decision, c.err
}

func newTestGate(classifier gate.Classifier, whitelist ...string) *gate.Gate {
	return gate.New(classifier, config.Gate{
		Whitelist:      whitelist,
		BlockThreshold: 3,
		BanDuration:    time.Hour,
	}, logger.Nop())
}

func serveGated(h *Handler, req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	h.withGate(next).ServeHTTP(rr, req)
	return rr, reached
}

func gatedRequest(ip, path string) *http.Request {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, path, nil))
	req.RemoteAddr = ip + ":41000"
	req.Header.Set("User-Agent", "sqlmap/1.7")
	return req
}

// ── decisions ───────────────────────────────────────────────────────────────

func TestWithGate_Decisions(t *testing.T) {
	tests := []struct {
		name        string
		decision    gate.Decision
		err         error
		wantStatus  int
		wantReached bool
	}{
		{name: "log passes", decision: gate.DecisionLog, wantStatus: http.StatusOK, wantReached: true},
		{name: "warn passes", decision: gate.DecisionWarn, wantStatus: http.StatusOK, wantReached: true},
		{name: "block is rejected", decision: gate.DecisionBlock, wantStatus: http.StatusForbidden},
		{name: "classifier failure fails open", err: errors.New("upstream down"), wantStatus: http.StatusOK, wantReached: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.gate = newTestGate(&stubClassifier{decision: tt.decision, err: tt.err})

			rr, reached := serveGated(h, gatedRequest("10.0.0.1", "/api/records"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantReached, reached)
			if !tt.wantReached {
				assert.Equal(t, app.MsgRequestBlocked, errorBody(t, rr))
			}
		})
	}
}

func TestWithGate_ClassifierSeesRequest(t *testing.T) {
	classifier := &stubClassifier{decision: gate.DecisionLog}
	h := newTestHandler()
	h.gate = newTestGate(classifier)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"hi"}`)))
	req.RemoteAddr = "192.0.2.7:5555"
	req.Header.Set("User-Agent", "curl/8.0")
	serveGated(h, req)

	info := classifier.lastInfo.Load()
	require.NotNil(t, info)
	assert.Equal(t, gate.RequestInfo{
		IP:            "192.0.2.7",
		Method:        http.MethodPost,
		Path:          "/api/chat",
		UserAgent:     "curl/8.0",
		ContentLength: int64(len(`{"message":"hi"}`)),
	}, *info)
}

func TestWithGate_UnknownContentLength(t *testing.T) {
	classifier := &stubClassifier{decision: gate.DecisionLog}
	h := newTestHandler()
	h.gate = newTestGate(classifier)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"hi"}`)))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	serveGated(h, req)

	info := classifier.lastInfo.Load()
	require.NotNil(t, info)
	assert.Zero(t, info.ContentLength)
}

// ── ban ─────────────────────────────────────────────────────────────────────

func TestWithGate_BansAfterThreshold(t *testing.T) {
	classifier := &stubClassifier{decision: gate.DecisionBlock}
	h := newTestHandler()
	h.gate = newTestGate(classifier)

	for i := 0; i < 4; i++ {
		rr, reached := serveGated(h, gatedRequest("10.0.0.9", "/api/records"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, reached)
	}

	// the fourth request hit the ban without asking the classifier
	assert.Equal(t, int32(3), classifier.calls.Load())

	// other clients are unaffected
	classifier.decision = gate.DecisionLog
	rr, reached := serveGated(h, gatedRequest("10.0.0.10", "/api/records"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, reached)
}

func TestWithGate_BannedClientRejectedOnWhitelistedPath(t *testing.T) {
	classifier := &stubClassifier{decision: gate.DecisionBlock}
	h := newTestHandler()
	h.gate = newTestGate(classifier, "/api/me", "/api/records")

	for range 3 {
		serveGated(h, gatedRequest("6.6.6.6", "/wp-login.php"))
	}

	for _, path := range []string{"/api/me", "/api/records"} {
		rr, reached := serveGated(h, gatedRequest("6.6.6.6", path))
		assert.Equal(t, http.StatusForbidden, rr.Code, path)
		assert.False(t, reached, path)
		assert.Equal(t, app.MsgRequestBlocked, errorBody(t, rr))
	}
	assert.Equal(t, int32(3), classifier.calls.Load())

	rr, reached := serveGated(h, gatedRequest("10.0.0.1", "/api/me"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, reached)
}

func TestWithGate_WhitelistSkipsClassifier(t *testing.T) {
	classifier := &stubClassifier{decision: gate.DecisionBlock}
	h := newTestHandler()
	h.gate = newTestGate(classifier, "/api/heartbeat")

	rr, reached := serveGated(h, gatedRequest("10.0.0.1", "/api/heartbeat"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, reached)
	assert.Zero(t, classifier.calls.Load())
}

// ── logging ─────────────────────────────────────────────────────────────────

func TestWithGate_LogsDecision(t *testing.T) {
	tests := []struct {
		decision  gate.Decision
		wantLevel string
	}{
		{decision: gate.DecisionLog, wantLevel: `"level":"info"`},
		{decision: gate.DecisionWarn, wantLevel: `"level":"warn"`},
		{decision: gate.DecisionBlock, wantLevel: `"level":"warn"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.decision), func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()
			h.gate = newTestGate(&stubClassifier{decision: tt.decision})

			req := gatedRequest("10.0.0.1", "/api/records")
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			serveGated(h, req)

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, `"ip":"10.0.0.1"`)
			assert.Contains(t, out, `"path":"/api/records"`)
			assert.Contains(t, out, `"decision":"`+string(tt.decision)+`"`)
			assert.Contains(t, out, `"source":"classifier"`)
		})
	}
}

func TestWithGate_LogsUnknownRouteWhenBlocked(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		decision     gate.Decision
		wantKnown    string
		wantNotFound bool
	}{
		{name: "blocked unknown route", path: "/wp-login.php", decision: gate.DecisionBlock, wantKnown: `"route_known":false`, wantNotFound: true},
		{name: "blocked known route", path: "/api/records", decision: gate.DecisionBlock, wantKnown: `"route_known":true`},
		{name: "allowed unknown route", path: "/wp-login.php", decision: gate.DecisionLog, wantKnown: `"route_known":false`, wantNotFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()
			h.gate = newTestGate(&stubClassifier{decision: tt.decision})

			router := chi.NewRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					next.ServeHTTP(w, r.WithContext(zerolog.New(&buf).WithContext(r.Context())))
				})
			}, h.withGate)
			router.Get("/api/records", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
			router.NotFound(h.notFound)

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			out := buf.String()
			assert.Contains(t, out, `"message":"gate decision"`)
			assert.Contains(t, out, tt.wantKnown)
			assert.Equal(t, tt.wantNotFound, strings.Contains(out, `"message":"route not found"`))
		})
	}
}

// ── router ──────────────────────────────────────────────────────────────────

func TestRouter_GateRunsBeforeAuth(t *testing.T) {
	f := newAPIFixture(t, nil, newTestGate(&stubClassifier{decision: gate.DecisionBlock}))

	rr := f.do(t, http.MethodGet, "/api/records", "", nil)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, app.MsgRequestBlocked, errorBody(t, rr))
}
