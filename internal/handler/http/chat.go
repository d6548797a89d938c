// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/utils"
	"github.com/MKhiriev/go-ledger-chat/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.ChatService.Chat(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err, "chat turn failed")
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
