package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/arabic-tutor/tts-gateway/internal/tts"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeSynthesisError maps the error taxonomy onto HTTP statuses: 400 for
// client-correctable requests, 500 for unavailable, provider and unexpected
// failures. Provider rejections keep the provider's code and message.
func writeSynthesisError(w http.ResponseWriter, err error) {
	var unknownVoice *tts.UnknownVoiceError
	var providerErr *tts.ProviderError

	switch {
	case errors.Is(err, tts.ErrTextRequired):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Text is required"})
	case errors.As(err, &unknownVoice):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Voice %s not available", unknownVoice.Key),
		})
	case errors.Is(err, tts.ErrProviderUnavailable):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "AWS Polly not available"})
	case errors.As(err, &providerErr):
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "AWS Polly error: " + providerErr.Code,
			"message": providerErr.Message,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Unexpected error: " + err.Error(),
		})
	}
}
