package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/arabic-tutor/tts-gateway/internal/api/handlers"
	"github.com/arabic-tutor/tts-gateway/internal/api/middleware"
	"github.com/arabic-tutor/tts-gateway/internal/tts"
)

type Router struct {
	mux *chi.Mux
	svc *tts.Service
}

func NewRouter(svc *tts.Service) *Router {
	return &Router{mux: chi.NewRouter(), svc: svc}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	rl := middleware.NewRateLimiter(20, 40)
	r.Use(rl.Limit)

	health := handlers.NewHealthHandler(rt.svc)
	r.Get("/", health.Home)
	r.Get("/health", health.Health)

	voices := handlers.NewVoiceHandler()
	r.Get("/voices", voices.List)

	synth := handlers.NewSynthesisHandler(rt.svc)
	r.Post("/synthesize", synth.Synthesize)
	r.Post("/synthesize-ssml", synth.SynthesizeSSML)
	r.Post("/clear-cache", synth.ClearCache)

	return r
}
