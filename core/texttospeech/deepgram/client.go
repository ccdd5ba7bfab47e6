// Package deepgram synthesizes one utterance at a time through the Deepgram
// speak websocket.
package deepgram

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync/atomic"
	"time"

	msginterfaces "github.com/deepgram/deepgram-go-sdk/pkg/api/speak/v1/websocket/interfaces"
	clientinterfaces "github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces/v1"
	"github.com/deepgram/deepgram-go-sdk/pkg/client/speak"
	"github.com/voxprep/interview-core/core/audio"
	"github.com/voxprep/interview-core/core/texttospeech"
)

const apiKeyEnv = "DEEPGRAM_API_KEY"

type deepgramVoice string

const (
	VoiceThalia  deepgramVoice = "aura-2-thalia-en"
	VoiceOrion   deepgramVoice = "aura-2-orion-en"
	VoiceAsteria deepgramVoice = "aura-asteria-en"

	defaultVoice = VoiceThalia
)

func GetAvailableVoices() []deepgramVoice {
	return []deepgramVoice{VoiceThalia, VoiceOrion, VoiceAsteria}
}

type SpeechClient struct {
	voice deepgramVoice
}

func NewSpeechClient(voice deepgramVoice) (*SpeechClient, error) {
	client := &SpeechClient{voice: defaultVoice}

	if !slices.Contains(GetAvailableVoices(), voice) {
		return nil, fmt.Errorf("invalid voice")
	}

	client.voice = voice

	return client, nil
}

func (c *SpeechClient) SetVoice(voice deepgramVoice) {
	c.voice = voice
}

// Speak synthesizes one utterance, streaming audio through the configured
// callback until synthesis runs dry or ctx is cancelled. It blocks for the
// duration of the utterance; callers own concurrency and cancellation.
func (c *SpeechClient) Speak(ctx context.Context, text string, opts ...texttospeech.SpeechOption) error {
	options := &texttospeech.SpeechOptions{EncodingInfo: audio.GetPlaybackEncodingInfo()}
	for _, opt := range opts {
		opt(options)
	}

	apiKey, ok := os.LookupEnv(apiKeyEnv)
	if !ok {
		return fmt.Errorf("deepgram api key not found")
	}
	if text == "" {
		return nil
	}

	speakOptions := &clientinterfaces.WSSpeakOptions{
		Model:      string(c.voice),
		Encoding:   options.EncodingInfo.Format.Name(),
		SampleRate: options.EncodingInfo.SampleRate,
	}

	var lastRecvUnix atomic.Int64
	var seenAudio atomic.Bool

	callback := &speakCallback{onBinary: func(data []byte) error {
		if len(data) == 0 {
			return nil
		}
		lastRecvUnix.Store(time.Now().UnixNano())
		seenAudio.Store(true)

		if options.AudioCallback != nil {
			chunk := make([]byte, len(data))
			copy(chunk, data)
			options.AudioCallback(chunk)
		}
		return nil
	}}

	client, err := speak.NewWSUsingCallback(ctx, apiKey, &clientinterfaces.ClientOptions{}, speakOptions, callback)
	if err != nil {
		return fmt.Errorf("failed to create speak client: %w", err)
	}
	defer client.Stop()

	if ok := client.Connect(); !ok {
		return fmt.Errorf("failed to connect to deepgram speak socket")
	}

	if err := client.SpeakWithText(text); err != nil {
		return fmt.Errorf("failed to send text to deepgram: %w", err)
	}
	if err := client.Flush(); err != nil {
		logger.Warn("failed to flush deepgram speak stream", "error", err)
	}

	// Synthesis has no explicit end-of-stream signal here; an idle window
	// after the first audio marks the utterance as finished.
	const idleWindow = 400 * time.Millisecond
	const utteranceDeadline = 30 * time.Second

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.Now().Add(utteranceDeadline)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if seenAudio.Load() && time.Since(time.Unix(0, lastRecvUnix.Load())) > idleWindow {
				if options.EndedCallback != nil {
					options.EndedCallback()
				}
				return nil
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("utterance synthesis timed out")
			}
		}
	}
}

type speakCallback struct{ onBinary func([]byte) error }

func (s *speakCallback) Open(*msginterfaces.OpenResponse) error         { return nil }
func (s *speakCallback) Metadata(*msginterfaces.MetadataResponse) error { return nil }
func (s *speakCallback) Flush(*msginterfaces.FlushedResponse) error     { return nil }
func (s *speakCallback) Clear(*msginterfaces.ClearedResponse) error     { return nil }
func (s *speakCallback) Close(*msginterfaces.CloseResponse) error       { return nil }
func (s *speakCallback) Warning(*msginterfaces.WarningResponse) error   { return nil }
func (s *speakCallback) Error(*msginterfaces.ErrorResponse) error       { return nil }
func (s *speakCallback) UnhandledEvent([]byte) error                    { return nil }
func (s *speakCallback) Binary(msg []byte) error {
	if s.onBinary != nil {
		return s.onBinary(msg)
	}
	return nil
}
