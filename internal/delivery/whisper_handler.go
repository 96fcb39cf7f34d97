package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_relay/internal/pipeline"
	"github.com/Vovarama1992/voice_relay/internal/ports"
)

const maxUploadSize = 20 << 20

// Response models mirror what the front end expects.

type TranscribeResponse struct {
	Status        string `json:"status"`
	Transcription string `json:"transcription"`
	QueryResponse string `json:"query_response"`
}

type TTSResponse struct {
	Message  string `json:"message"`
	AudioURL string `json:"audio_url"`
}

type DetailedTTSResponse struct {
	Message       string `json:"message"`
	AudioURL      string `json:"audio_url"`
	Transcription string `json:"transcription"`
	QueryResponse string `json:"query_response"`
}

type WhisperHandler struct {
	pipeline ports.PipelineService
	log      *logger.ZapLogger
}

func NewWhisperHandler(p ports.PipelineService, log *logger.ZapLogger) *WhisperHandler {
	return &WhisperHandler{
		pipeline: p,
		log:      log,
	}
}

func (h *WhisperHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	data, name, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	res, err := h.pipeline.Transcribe(r.Context(), data, name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, TranscribeResponse{
		Status:        "success",
		Transcription: res.Transcription,
		QueryResponse: res.Reply,
	})
}

func (h *WhisperHandler) TranscribeTTS(w http.ResponseWriter, r *http.Request) {
	data, name, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	res, err := h.pipeline.TranscribeTTS(r.Context(), data, name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, TTSResponse{
		Message:  "Text converted to speech",
		AudioURL: res.AudioURL,
	})
}

func (h *WhisperHandler) TranscribeTTSDetailed(w http.ResponseWriter, r *http.Request) {
	data, name, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	res, err := h.pipeline.TranscribeTTSDetailed(r.Context(), data, name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, DetailedTTSResponse{
		Message:       "Text converted to speech",
		AudioURL:      res.AudioURL,
		Transcription: res.Transcription,
		QueryResponse: res.Reply,
	})
}

// readUpload pulls the multipart "audio" part into memory. A missing part
// or a blank filename is the caller's fault and is rejected before the
// pipeline ever runs.
func (h *WhisperHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Audio file is required", http.StatusBadRequest)
		return nil, "", false
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "Audio file is required", http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	if header.Filename == "" {
		http.Error(w, "Audio file is required", http.StatusBadRequest)
		return nil, "", false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}

	return data, header.Filename, true
}

func (h *WhisperHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pipeline.ErrAudioRequired):
		http.Error(w, "Audio file is required", http.StatusBadRequest)

	case errors.Is(err, pipeline.ErrEmptyReply):
		h.log.Log(logger.LogEntry{Level: "error", Message: "empty model reply", Error: err})
		http.Error(w, "No valid response generated from transcription", http.StatusInternalServerError)

	default:
		h.log.Log(logger.LogEntry{Level: "error", Message: "pipeline failed", Error: err})
		http.Error(w, "Error processing audio: "+err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
