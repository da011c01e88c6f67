/**
* Name: 			tts.go
* Description: 		Google text-to-speech, text in, MP3 out
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

const maxSpeechChars = 500

var ErrEmptyText = errors.New("text to speak is empty")

// TTSClient wraps the Google text-to-speech client.
type TTSClient struct {
	client   *texttospeech.Client
	language string
	voice    string
	logger   *zap.Logger
}

// NewTTSClient connects with credentialsFile, or application default credentials when it is empty.
func NewTTSClient(ctx context.Context, credentialsFile, language, voice string, logger *zap.Logger) (*TTSClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewTTSClient(): failed to create TTS client: %w", err)
	}
	return &TTSClient{
		client:   client,
		language: language,
		voice:    voice,
		logger:   logger,
	}, nil
}

// Synthesize converts text to MP3 audio.
func (t *TTSClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = ClampSpeechText(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	t.logger.Debug("Synthesize(): converting text to audio", zap.Int("chars", utf8.RuneCountInString(text)))

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: t.language,
			Name:         t.voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := t.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		t.logger.Error("Synthesize(): SynthesizeSpeech failed", zap.Error(err))
		return nil, err
	}
	t.logger.Debug("Synthesize(): succeeded", zap.Int("bytes", len(resp.AudioContent)))
	return resp.AudioContent, nil
}

// ClampSpeechText caps text at 500 characters, marking the cut with "...".
func ClampSpeechText(text string) string {
	if utf8.RuneCountInString(text) <= maxSpeechChars {
		return text
	}
	r := []rune(text)
	return string(r[:maxSpeechChars-3]) + "..."
}

// ScoreSummaryText is the spoken Green Score summary.
func ScoreSummaryText(displayName string, score, rank int) string {
	return fmt.Sprintf("Hey %s! Your Green Score is %d points, and you're ranked number %d on the campus leaderboard. "+
		"Keep making sustainable choices, every action counts! Happy Valentine's Day from GreenMason.",
		displayName, score, rank)
}

func (t *TTSClient) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
