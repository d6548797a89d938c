// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/adapter"
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/gate"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/mock"
	"github.com/MKhiriev/go-ledger-chat/internal/service"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Unset fields answer with
// zero values.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	getUserFn      func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn    func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn == nil {
		return user, nil
	}
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn == nil {
		return user, nil
	}
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed"}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{UserID: 1}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn == nil {
		return models.User{UserID: userID}, nil
	}
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn == nil {
		return nil, nil
	}
	return m.listUsersFn(ctx)
}

func (m *mockAuthService) EnsureAdmin(context.Context, string, string) (models.User, bool, error) {
	return models.User{}, false, nil
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// ─────────────────────────────────────────────
// API fixture
// ─────────────────────────────────────────────

// apiFixture serves the full router over a migrated in-memory SQLite
// database and real services.
type apiFixture struct {
	router   http.Handler
	storages *store.Storages
	services *service.Services
}

// newAPIFixture builds the router. client answers completion calls; a
// controller without expectations fails the test on any call.
func newAPIFixture(t *testing.T, client adapter.CompletionClient, requestGate *gate.Gate) *apiFixture {
	t.Helper()

	if client == nil {
		client = mock.NewMockCompletionClient(gomock.NewController(t))
	}

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "ledger-chat-test",
			TokenDuration: time.Hour,
			Version:       "1.2.3",
		},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}},
		Server:  config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		Adapter: config.Adapter{Temperature: 0.7, RequestTimeout: 5 * time.Second},
		Chat:    config.Chat{HistoryLimit: 10},
	}

	storages, err := store.NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, client, cfg, logger.Nop())
	require.NoError(t, err)

	return &apiFixture{
		router:   NewHandler(services, requestGate, cfg.Server, logger.Nop()).Init(),
		storages: storages,
		services: services,
	}
}

// do sends body as JSON. token is sent as a bearer token when set.
func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

// register creates a user and returns its bearer token.
func (f *apiFixture) register(t *testing.T, username string) string {
	t.Helper()

	rr := f.do(t, http.MethodPost, "/api/register", "", models.User{Username: username, Password: "secret1"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// userID looks up the id of a registered user.
func (f *apiFixture) userID(t *testing.T, username string) int64 {
	t.Helper()

	user, err := f.storages.UserRepository.FindUserByUsername(context.Background(), username)
	require.NoError(t, err)
	return user.UserID
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	return decodeJSON[map[string]string](t, rr)["error"]
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
