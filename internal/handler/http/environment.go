// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/utils"
)

// getEnvironment writes the environment record as JSON. The record is fixed
// for the lifetime of the process, but clients must revalidate so a restarted
// server with new settings is picked up.
func (h *Handler) getEnvironment(w http.ResponseWriter, r *http.Request) {
	env := h.services.EnvironmentService.GetEnvironment(r.Context())

	w.Header().Set("Cache-Control", "no-cache")
	if _, err := utils.WriteJSON(w, env, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing environment")
	}
}
