package handlers

import (
	"net/http"

	"github.com/arabic-tutor/tts-gateway/internal/tts"
)

type HealthHandler struct {
	svc *tts.Service
}

func NewHealthHandler(svc *tts.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Home describes the service and lists its endpoints.
func (h *HealthHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Arabic Tutor - AWS Polly TTS Gateway",
		"status":  "running",
		"endpoints": map[string]string{
			"health":          "/health",
			"voices":          "/voices",
			"synthesize":      "/synthesize",
			"synthesize-ssml": "/synthesize-ssml",
			"clear-cache":     "/clear-cache",
		},
	})
}

// Health reports provider availability and the registered voice keys. A
// degraded gateway (no Polly credentials) still answers 200 here so the
// probe itself can tell apart "down" from "up without a provider".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "healthy",
		"polly_available":  h.svc.Available(),
		"available_voices": tts.VoiceKeys(),
	})
}
