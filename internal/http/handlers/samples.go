package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type sampleRequest struct {
	URL string `json:"url"`
}

type sampleResponse struct {
	Image     string `json:"image"`
	MediaType string `json:"media_type"`
}

// SampleFetch downloads a sample image by URL on behalf of the browser and
// hands it back as a data URI, ready to drop into an uploader slot. Failures
// are scoped to this call; no session state is touched.
func (a *App) SampleFetch(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "url is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	asset, err := a.Samples.Fetch(ctx, req.URL)
	if err != nil {
		a.error(w, http.StatusBadGateway, "sample_fetch_failed", err.Error())
		return
	}
	a.json(w, http.StatusOK, sampleResponse{Image: asset.DataURI(), MediaType: asset.MediaType})
}
