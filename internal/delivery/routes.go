package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/voice_relay/internal/media"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *WhisperHandler, mediaDir string) {
	// --- transcription ---
	r.Route("/api", func(api chi.Router) {
		api.Use(httputil.RecoverMiddleware)

		api.Post("/transcribe", h.Transcribe)
		api.Post("/transcribetts", h.TranscribeTTS)
		api.Post("/whisper-tts-detailed", h.TranscribeTTSDetailed)
	})

	// --- synthesized replies, served straight from disk ---
	fs := http.StripPrefix(media.URLPrefix+"/", http.FileServer(http.Dir(mediaDir)))
	r.Get(media.URLPrefix+"/*", fs.ServeHTTP)
	r.Head(media.URLPrefix+"/*", fs.ServeHTTP)

	// --- liveness ---
	r.With(httputil.RecoverMiddleware).Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "Whisper Transcription API is running"})
	})
}
