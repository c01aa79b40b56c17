package handlers

import (
	"net/http"

	"github.com/arabic-tutor/tts-gateway/internal/tts"
)

type VoiceHandler struct{}

func NewVoiceHandler() *VoiceHandler {
	return &VoiceHandler{}
}

// List returns the voice registry and the default voice key.
func (h *VoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"voices":  tts.Voices,
		"default": tts.DefaultVoice,
	})
}
