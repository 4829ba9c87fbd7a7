// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/utils"
)

const (
	providerStatusOK    = "ok"
	providerStatusError = "error"
)

// providerStatus is the body of the identity-provider check response.
type providerStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// checkProvider runs the discovery check against the configured identity
// provider and reports the outcome.
func (h *Handler) checkProvider(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	err := h.services.EnvironmentService.VerifyProvider(r.Context())
	if err != nil {
		log.Err(err).Msg("identity provider check failed")
		utils.WriteJSON(w, providerStatus{Status: providerStatusError, Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, providerStatus{Status: providerStatusOK}, http.StatusOK)
}
