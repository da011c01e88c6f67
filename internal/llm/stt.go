/**
* Name: 			stt.go
* Description: 		Google speech-to-text for spoken EcoChat questions
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
)

var ErrNoSpeech = errors.New("no speech recognized")

// SpeechRecognizer transcribes short LINEAR16 16kHz mono clips.
type SpeechRecognizer struct {
	client   *speech.Client
	language string
	logger   *zap.Logger
}

func NewSpeechRecognizer(ctx context.Context, credentialsFile, language string, logger *zap.Logger) (*SpeechRecognizer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSpeechRecognizer(): failed to create speech client: %w", err)
	}
	return &SpeechRecognizer{client: client, language: language, logger: logger}, nil
}

// Transcribe returns the joined final transcript of audio.
func (r *SpeechRecognizer) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := r.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			AudioChannelCount: 1,
			LanguageCode:      r.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		r.logger.Error("Transcribe(): Recognize failed", zap.Error(err))
		return "", err
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		parts = append(parts, strings.TrimSpace(result.Alternatives[0].Transcript))
	}
	transcript := strings.TrimSpace(strings.Join(parts, " "))
	if transcript == "" {
		return "", ErrNoSpeech
	}
	r.logger.Debug("Transcribe(): recognized", zap.String("transcript", transcript))
	return transcript, nil
}

func (r *SpeechRecognizer) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
