package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/service"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/internal/utils"
	"github.com/MKhiriev/go-ledger-chat/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	user.IsAdmin = false

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	h.writeToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteError(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, app.MsgLoginFailed, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser, http.StatusOK)
}

// writeToken issues a token for user and sends it both in the Authorization
// header and in the body.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Token:    token.SignedString,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "current user lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing users failed")
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

// userIDFromRequest returns the id stored by the auth middleware, answering
// 401 when it is missing.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(app.MsgNoUserIDProvided)
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
