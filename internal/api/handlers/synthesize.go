package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arabic-tutor/tts-gateway/internal/tts"
)

type SynthesisHandler struct {
	svc *tts.Service
}

func NewSynthesisHandler(svc *tts.Service) *SynthesisHandler {
	return &SynthesisHandler{svc: svc}
}

// Synthesize converts text to speech and streams back MP3 audio.
func (h *SynthesisHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req tts.SynthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Synthesize(r.Context(), req)
	if err != nil {
		writeSynthesisError(w, err)
		return
	}

	writeAudio(w, result)
}

// SynthesizeSSML wraps the text in an Arabic pronunciation template before
// synthesis.
func (h *SynthesisHandler) SynthesizeSSML(w http.ResponseWriter, r *http.Request) {
	var req tts.SynthesizeSSMLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.svc.SynthesizeSSML(r.Context(), req)
	if err != nil {
		writeSynthesisError(w, err)
		return
	}

	writeAudio(w, result)
}

// ClearCache drops every cached audio file.
func (h *SynthesisHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearCache(); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Error clearing cache: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cache cleared successfully"})
}

func writeAudio(w http.ResponseWriter, result *tts.Result) {
	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Audio)
}
