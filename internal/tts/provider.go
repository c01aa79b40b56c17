package tts

import "context"

// Request holds fully resolved parameters for one provider call.
type Request struct {
	Text         string
	VoiceID      string
	LanguageCode string
	Engine       string
	SSML         bool
}

// Result holds the synthesized audio and its content type.
type Result struct {
	Audio       []byte
	ContentType string
}

// Provider is the interface for speech synthesis backends.
type Provider interface {
	Synthesize(ctx context.Context, req Request) (*Result, error)
	Name() string
}
