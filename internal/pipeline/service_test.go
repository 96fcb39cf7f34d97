package pipeline

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/voice_relay/internal/media"
	"github.com/Vovarama1992/voice_relay/internal/upload"
)

// === collaborator stubs ===

type stubSTT struct {
	text    string
	err     error
	calls   int
	gotPath string
	sawFile bool
}

func (s *stubSTT) Transcribe(_ context.Context, filePath string) (string, error) {
	s.calls++
	s.gotPath = filePath
	if _, err := os.Stat(filePath); err == nil {
		s.sawFile = true
	}
	return s.text, s.err
}

type stubReply struct {
	text  string
	err   error
	calls int
}

func (s *stubReply) Reply(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubTTS struct {
	err   error
	calls int
}

func (s *stubTTS) Synthesize(_ context.Context, _ string, outPath string) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return os.WriteFile(outPath, []byte("mp3-bytes"), 0644)
}

func newTestService(t *testing.T, stt *stubSTT, reply *stubReply, tts *stubTTS) (*Service, string) {
	t.Helper()
	mediaDir := filepath.Join(t.TempDir(), "media")
	return NewService(stt, reply, tts, upload.NewStore(), media.NewStore(mediaDir)), mediaDir
}

// === Operation A ===

func TestTranscribe_Success(t *testing.T) {
	stt := &stubSTT{text: "hello world"}
	reply := &stubReply{text: "Hi there!"}
	svc, _ := newTestService(t, stt, reply, &stubTTS{})

	res, err := svc.Transcribe(context.Background(), []byte("audio"), "clip.wav")
	require.NoError(t, err)

	assert.Equal(t, "hello world", res.Transcription)
	assert.Equal(t, "Hi there!", res.Reply)
	assert.Empty(t, res.AudioURL)

	assert.True(t, stt.sawFile, "temp file should exist while STT runs")
	_, statErr := os.Stat(stt.gotPath)
	assert.True(t, os.IsNotExist(statErr), "temp file must be gone after the request")
}

func TestTranscribe_EmptyReplyIsFine(t *testing.T) {
	svc, _ := newTestService(t, &stubSTT{text: "hi"}, &stubReply{text: ""}, &stubTTS{})

	res, err := svc.Transcribe(context.Background(), []byte("audio"), "clip.wav")
	require.NoError(t, err)
	assert.Empty(t, res.Reply)
}

func TestTranscribe_MissingFilename(t *testing.T) {
	stt := &stubSTT{text: "hello"}
	reply := &stubReply{text: "hi"}
	svc, _ := newTestService(t, stt, reply, &stubTTS{})

	ops := map[string]func() error{
		"transcribe": func() error {
			_, err := svc.Transcribe(context.Background(), []byte("x"), "")
			return err
		},
		"tts": func() error {
			_, err := svc.TranscribeTTS(context.Background(), []byte("x"), "")
			return err
		},
		"tts-detailed": func() error {
			_, err := svc.TranscribeTTSDetailed(context.Background(), []byte("x"), "")
			return err
		},
	}

	for name, op := range ops {
		err := op()
		assert.ErrorIs(t, err, ErrAudioRequired, name)
	}
	assert.Zero(t, stt.calls, "no collaborator may run without a filename")
	assert.Zero(t, reply.calls)
}

func TestTranscribe_STTFailureReleasesTempFile(t *testing.T) {
	stt := &stubSTT{err: errors.New("model exploded")}
	reply := &stubReply{text: "hi"}
	svc, _ := newTestService(t, stt, reply, &stubTTS{})

	_, err := svc.Transcribe(context.Background(), []byte("audio"), "clip.ogg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model exploded")

	_, statErr := os.Stat(stt.gotPath)
	assert.True(t, os.IsNotExist(statErr), "temp file must be released on failure too")
	assert.Zero(t, reply.calls, "reply model must not run after STT failure")
}

// === Operations B / C ===

func TestTranscribeTTS_Success(t *testing.T) {
	stt := &stubSTT{text: "hello world"}
	svc, mediaDir := newTestService(t, stt, &stubReply{text: "Hi there!"}, &stubTTS{})

	res, err := svc.TranscribeTTS(context.Background(), []byte("audio"), "clip.wav")
	require.NoError(t, err)

	require.NotEmpty(t, res.AudioURL)
	assert.Empty(t, res.Transcription, "plain TTS op exposes only the audio reference")
	assert.Empty(t, res.Reply)

	// the URL points at a file that actually exists
	synthesized := filepath.Join(mediaDir, path.Base(res.AudioURL))
	_, statErr := os.Stat(synthesized)
	require.NoError(t, statErr)

	_, statErr = os.Stat(stt.gotPath)
	assert.True(t, os.IsNotExist(statErr), "upload temp file must be gone")
}

func TestTranscribeTTSDetailed_Success(t *testing.T) {
	svc, mediaDir := newTestService(t, &stubSTT{text: "hello world"}, &stubReply{text: "Hi there!"}, &stubTTS{})

	res, err := svc.TranscribeTTSDetailed(context.Background(), []byte("audio"), "clip.wav")
	require.NoError(t, err)

	assert.Equal(t, "hello world", res.Transcription)
	assert.Equal(t, "Hi there!", res.Reply)
	require.NotEmpty(t, res.AudioURL)

	_, statErr := os.Stat(filepath.Join(mediaDir, path.Base(res.AudioURL)))
	require.NoError(t, statErr)
}

func TestTranscribeTTS_EmptyReply(t *testing.T) {
	for _, replyText := range []string{"", "   \n\t"} {
		tts := &stubTTS{}
		svc, mediaDir := newTestService(t, &stubSTT{text: "hello"}, &stubReply{text: replyText}, tts)

		_, err := svc.TranscribeTTS(context.Background(), []byte("audio"), "clip.wav")
		assert.ErrorIs(t, err, ErrEmptyReply)
		assert.Zero(t, tts.calls, "no synthesis on empty reply")

		entries, _ := os.ReadDir(mediaDir)
		assert.Empty(t, entries, "no media file may appear on empty reply")
	}
}

func TestTranscribeTTS_SynthesisFailure(t *testing.T) {
	stt := &stubSTT{text: "hello"}
	svc, _ := newTestService(t, stt, &stubReply{text: "Hi!"}, &stubTTS{err: errors.New("voice service down")})

	_, err := svc.TranscribeTTS(context.Background(), []byte("audio"), "clip.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "voice service down")

	_, statErr := os.Stat(stt.gotPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTranscribeTTS_IndependentOutputNames(t *testing.T) {
	svc, mediaDir := newTestService(t, &stubSTT{text: "hello"}, &stubReply{text: "Hi!"}, &stubTTS{})

	a, err := svc.TranscribeTTS(context.Background(), []byte("audio"), "clip.wav")
	require.NoError(t, err)
	b, err := svc.TranscribeTTS(context.Background(), []byte("audio"), "clip.wav")
	require.NoError(t, err)

	assert.NotEqual(t, a.AudioURL, b.AudioURL)

	entries, readErr := os.ReadDir(mediaDir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 2)
}
