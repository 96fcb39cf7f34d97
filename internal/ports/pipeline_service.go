package ports

import (
	"context"

	"github.com/Vovarama1992/voice_relay/internal/pipeline"
)

// PipelineService is what delivery needs from the orchestrator.
type PipelineService interface {
	Transcribe(ctx context.Context, data []byte, declaredName string) (pipeline.Result, error)
	TranscribeTTS(ctx context.Context, data []byte, declaredName string) (pipeline.Result, error)
	TranscribeTTSDetailed(ctx context.Context, data []byte, declaredName string) (pipeline.Result, error)
}
