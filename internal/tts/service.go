package tts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arabic-tutor/tts-gateway/internal/cache"
)

// SynthesizeRequest is the body of POST /synthesize.
type SynthesizeRequest struct {
	Text   string `json:"text"`
	Voice  string `json:"voice,omitempty"`
	Engine string `json:"engine,omitempty"`
}

// SynthesizeSSMLRequest is the body of POST /synthesize-ssml.
type SynthesizeSSMLRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
	Rate  string `json:"rate,omitempty"` // x-slow, slow, medium, fast, x-fast
}

// Service dispatches synthesis requests to the provider, serving cached
// audio where it exists. A nil provider means the gateway is running in
// degraded mode and every synthesis call fails with ErrProviderUnavailable.
type Service struct {
	provider Provider
	cache    *cache.Cache
}

// NewService creates a Service. provider may be nil.
func NewService(provider Provider, c *cache.Cache) *Service {
	return &Service{provider: provider, cache: c}
}

// Available reports whether a synthesis provider is configured.
func (s *Service) Available() bool { return s.provider != nil }

// ClearCache drops every cached audio file.
func (s *Service) ClearCache() error { return s.cache.Clear() }

// Synthesize resolves a plain synthesis request and returns MP3 audio.
// Text starting with <speak> is dispatched as SSML.
func (s *Service) Synthesize(ctx context.Context, req SynthesizeRequest) (*Result, error) {
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}

	if req.Text == "" {
		return nil, ErrTextRequired
	}

	voiceKey := req.Voice
	if voiceKey == "" {
		voiceKey = DefaultVoice
	}
	voice, ok := LookupVoice(voiceKey)
	if !ok {
		return nil, &UnknownVoiceError{Key: voiceKey}
	}

	requested := req.Engine
	if requested == "" {
		requested = "standard"
	}

	// The cache key is derived from the engine as requested. The dispatch
	// engine falls back to the voice default when the value is unrecognized.
	engine := requested
	if engine != "standard" && engine != "neural" {
		engine = voice.Engine
	}

	return s.dispatch(ctx, cache.Key(req.Text, voiceKey, requested), Request{
		Text:         req.Text,
		VoiceID:      voice.ID,
		LanguageCode: voice.Language,
		Engine:       engine,
		SSML:         strings.HasPrefix(strings.TrimSpace(req.Text), "<speak>"),
	})
}

const ssmlTemplate = `<speak><prosody rate="%s"><lang xml:lang="%s">%s</lang></prosody></speak>`

// SynthesizeSSML wraps the text in a prosody/lang template tuned for Arabic
// pronunciation and dispatches it as SSML with the voice's default engine.
// An unknown voice key falls back silently to the default voice; the rate is
// passed through to Polly as given.
func (s *Service) SynthesizeSSML(ctx context.Context, req SynthesizeSSMLRequest) (*Result, error) {
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}

	if req.Text == "" {
		return nil, ErrTextRequired
	}

	voiceKey := req.Voice
	if voiceKey == "" {
		voiceKey = DefaultVoice
	}
	voice, ok := LookupVoice(voiceKey)
	if !ok {
		// The cache key still carries the requested key.
		voice = Voices[DefaultVoice]
	}

	rate := req.Rate
	if rate == "" {
		rate = "medium"
	}

	ssml := fmt.Sprintf(ssmlTemplate, rate, voice.Language, req.Text)

	return s.dispatch(ctx, cache.Key(ssml, voiceKey, "ssml"), Request{
		Text:         ssml,
		VoiceID:      voice.ID,
		LanguageCode: voice.Language,
		Engine:       voice.Engine,
		SSML:         true,
	})
}

// dispatch serves key from the cache or calls the provider and stores the
// result. The existence check and the write are not atomic: duplicate
// in-flight requests may both reach the provider and both write the same
// bytes, which is harmless. A failed write never fails the request.
func (s *Service) dispatch(ctx context.Context, key string, req Request) (*Result, error) {
	if audio, ok := s.cache.Get(key); ok {
		return &Result{Audio: audio, ContentType: "audio/mpeg"}, nil
	}

	result, err := s.provider.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(key, result.Audio); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}

	return result, nil
}
