package tts

import (
	"errors"
	"fmt"
)

// ErrTextRequired is returned when a synthesis request carries no text.
var ErrTextRequired = errors.New("text is required")

// ErrProviderUnavailable is returned while the gateway runs without a
// configured synthesis provider.
var ErrProviderUnavailable = errors.New("aws polly not available")

// UnknownVoiceError reports a request for a voice key outside the registry.
type UnknownVoiceError struct {
	Key string
}

func (e *UnknownVoiceError) Error() string {
	return fmt.Sprintf("voice %s not available", e.Key)
}

// ProviderError carries a rejection from the synthesis provider, preserving
// the provider's own code and message for the client.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("aws polly error %s: %s", e.Code, e.Message)
}
