package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/service"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/internal/utils"
	"github.com/MKhiriev/go-ledger-chat/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrCategoryTypeConflict:    http.StatusConflict,
	service.ErrAccessDenied:            http.StatusForbidden,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrCategoryNotFound:      http.StatusNotFound,
	store.ErrCategoryAlreadyExists: http.StatusConflict,
	store.ErrEntryNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessages is ordered: the first match wins, so specific causes come
// before the service errors wrapping them.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrEmptyMessage, app.MsgEmptyMessage},

	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, app.MsgInvalidLoginPassword},
	{service.ErrCategoryTypeConflict, app.MsgCategoryTypeConflict},
	{service.ErrAccessDenied, app.MsgAccessDenied},

	{store.ErrUsernameAlreadyExists, app.MsgUsernameAlreadyExists},
	{store.ErrNoUserWasFound, app.MsgDataNotFound},
	{store.ErrCategoryNotFound, app.MsgDataNotFound},
	{store.ErrCategoryAlreadyExists, app.MsgCategoryAlreadyExists},
	{store.ErrEntryNotFound, app.MsgDataNotFound},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeServiceError logs err and answers with the status and message mapped
// from it.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteError(w, messageFromError(err), status)
}
