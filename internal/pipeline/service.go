package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// === Collaborator ports ===

type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

type ReplyGenerator interface {
	Reply(ctx context.Context, userText string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, outPath string) error
}

type UploadStore interface {
	Save(data []byte, declaredName string) (string, error)
	Release(path string)
}

type MediaStore interface {
	EnsureDir() error
	Allocate() (urlPath, fsPath string)
}

// Result is the full pipeline output; each operation fills the fields it
// exposes.
type Result struct {
	Transcription string
	Reply         string
	AudioURL      string
}

// Service walks one uploaded clip through STT → LLM → (optionally) TTS.
// All calls are blocking and sequential, one request never touches
// another request's files.
type Service struct {
	stt     Transcriber
	reply   ReplyGenerator
	tts     Synthesizer
	uploads UploadStore
	media   MediaStore
}

func NewService(
	stt Transcriber,
	reply ReplyGenerator,
	tts Synthesizer,
	uploads UploadStore,
	media MediaStore,
) *Service {
	return &Service{
		stt:     stt,
		reply:   reply,
		tts:     tts,
		uploads: uploads,
		media:   media,
	}
}

// run is the shared upload → transcribe → reply leg. The temp file is
// gone by the time it returns, on every path.
func (s *Service) run(ctx context.Context, data []byte, declaredName string) (transcription, reply string, err error) {
	if declaredName == "" {
		return "", "", ErrAudioRequired
	}

	tmpPath, err := s.uploads.Save(data, declaredName)
	if err != nil {
		return "", "", fmt.Errorf("save upload: %w", err)
	}
	defer s.uploads.Release(tmpPath)

	transcription, err = s.stt.Transcribe(ctx, tmpPath)
	if err != nil {
		return "", "", fmt.Errorf("transcribe: %w", err)
	}
	log.Printf("[pipeline] transcribed: %q", transcription)

	reply, err = s.reply.Reply(ctx, transcription)
	if err != nil {
		return "", "", fmt.Errorf("generate reply: %w", err)
	}

	return transcription, reply, nil
}

// Transcribe runs STT and the reply model without synthesis. The reply
// may legitimately be empty here.
func (s *Service) Transcribe(ctx context.Context, data []byte, declaredName string) (Result, error) {
	transcription, reply, err := s.run(ctx, data, declaredName)
	if err != nil {
		return Result{}, err
	}
	return Result{Transcription: transcription, Reply: reply}, nil
}

// TranscribeTTS additionally voices the generated reply and returns only
// the URL of the synthesized file.
func (s *Service) TranscribeTTS(ctx context.Context, data []byte, declaredName string) (Result, error) {
	res, err := s.synthesize(ctx, data, declaredName)
	if err != nil {
		return Result{}, err
	}
	return Result{AudioURL: res.AudioURL}, nil
}

// TranscribeTTSDetailed is TranscribeTTS with the intermediate texts kept
// in the result.
func (s *Service) TranscribeTTSDetailed(ctx context.Context, data []byte, declaredName string) (Result, error) {
	return s.synthesize(ctx, data, declaredName)
}

func (s *Service) synthesize(ctx context.Context, data []byte, declaredName string) (Result, error) {
	transcription, reply, err := s.run(ctx, data, declaredName)
	if err != nil {
		return Result{}, err
	}

	// checked condition, not a collaborator crash
	if strings.TrimSpace(reply) == "" {
		return Result{}, ErrEmptyReply
	}

	if err := s.media.EnsureDir(); err != nil {
		return Result{}, fmt.Errorf("ensure media dir: %w", err)
	}

	urlPath, fsPath := s.media.Allocate()
	if err := s.tts.Synthesize(ctx, reply, fsPath); err != nil {
		return Result{}, fmt.Errorf("synthesize: %w", err)
	}
	log.Printf("[pipeline] synthesized -> %s", fsPath)

	return Result{
		Transcription: transcription,
		Reply:         reply,
		AudioURL:      urlPath,
	}, nil
}
