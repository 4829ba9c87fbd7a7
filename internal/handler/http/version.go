package http

import (
	"net/http"

	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/utils"
)

type buildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}

// getBuildInfo writes the served version together with the build date and
// commit injected at link time. Missing metadata is reported as "N/A".
func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService.GetBuildInfo(ctx)

	resp := buildInfoResponse{
		Version: h.services.AppInfoService.GetAppVersion(ctx),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error writing build info")
	}
}
