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

func (h *Handler) getLLMConfig(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	cfg, err := h.services.LLMConfigService.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "reading llm config failed")
		return
	}

	_, _ = utils.WriteJSON(w, cfg, http.StatusOK)
}

// saveLLMConfig stores the endpoint and answers with its masked form.
func (h *Handler) saveLLMConfig(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var cfg models.LLMConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.LLMConfigService.Save(r.Context(), userID, cfg); err != nil {
		writeServiceError(w, r, err, "saving llm config failed")
		return
	}

	h.getLLMConfig(w, r)
}
