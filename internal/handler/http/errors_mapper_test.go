// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/service"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "empty chat message",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyMessage),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgEmptyMessage,
		},
		{
			name:        "other validation failure",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidMonth),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "type conflict",
			err:         fmt.Errorf("%w: 工资 is income", service.ErrCategoryTypeConflict),
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgCategoryTypeConflict,
		},
		{
			name:        "duplicate username",
			err:         store.ErrUsernameAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgUsernameAlreadyExists,
		},
		{
			name:        "missing entry",
			err:         store.ErrEntryNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgDataNotFound,
		},
		{
			name:        "query failure",
			err:         fmt.Errorf("%w: disk I/O error", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err))
		})
	}
}
