package config

import (
	"fmt"
	"os"
	"strings"
)

// Config carries everything the service reads from the environment.
// Collaborator credentials are validated here, at startup, so a missing
// key fails the process instead of the first request.
type Config struct {
	Port          string
	AllowedOrigin string
	MediaDir      string

	GroqAPIKey string
	GroqModel  string

	OpenAIAPIKey string

	ElevenLabsAPIKey string
	ElevenLabsVoice  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "http://localhost:3000"),
		MediaDir:      getenv("MEDIA_DIR", "media"),

		GroqAPIKey: os.Getenv("GROQ_API_KEY"),
		GroqModel:  getenv("GROQ_MODEL", "llama-3.3-70b-versatile"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),

		ElevenLabsAPIKey: os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoice:  getenv("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"), // Rachel
	}

	var missing []string
	for _, req := range []struct {
		name  string
		value string
	}{
		{"GROQ_API_KEY", cfg.GroqAPIKey},
		{"OPENAI_API_KEY", cfg.OpenAIAPIKey},
		{"ELEVENLABS_API_KEY", cfg.ElevenLabsAPIKey},
	} {
		if req.value == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required env: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
