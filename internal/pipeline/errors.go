package pipeline

import "errors"

var (
	// ErrAudioRequired means the request carried no usable upload. When
	// it is returned, nothing was written to disk and no collaborator
	// was called.
	ErrAudioRequired = errors.New("audio file is required")

	// ErrEmptyReply means the language model returned nothing usable on
	// a synthesis path. Distinct from a collaborator crash so the two
	// can be told apart in logs.
	ErrEmptyReply = errors.New("no valid response generated from transcription")
)
