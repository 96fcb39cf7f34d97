package main

import (
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_relay/internal/ai"
	"github.com/Vovarama1992/voice_relay/internal/config"
	"github.com/Vovarama1992/voice_relay/internal/delivery"
	"github.com/Vovarama1992/voice_relay/internal/media"
	"github.com/Vovarama1992/voice_relay/internal/pipeline"
	"github.com/Vovarama1992/voice_relay/internal/speech"
	"github.com/Vovarama1992/voice_relay/internal/upload"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (STT / LLM / TTS)
	// =========================================================================

	whisperClient := speech.NewWhisperClient(cfg.OpenAIAPIKey)
	ttsClient := speech.NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoice)
	groqClient := ai.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)

	// =========================================================================
	// STORES / SERVICES
	// =========================================================================

	uploadStore := upload.NewStore()

	mediaStore := media.NewStore(cfg.MediaDir)
	if err := mediaStore.EnsureDir(); err != nil {
		log.Fatalf("media dir: %v", err)
	}

	speechService := speech.NewService(whisperClient, ttsClient)
	aiService := ai.NewAiService(groqClient)

	pipelineService := pipeline.NewService(
		speechService, // Whisper
		aiService,     // Groq
		speechService, // ElevenLabs
		uploadStore,
		mediaStore,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	handler := delivery.NewWhisperHandler(pipelineService, zl)
	delivery.RegisterRoutes(r, handler, cfg.MediaDir)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "voice_relay",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
