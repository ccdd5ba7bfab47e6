// Package texttospeech defines the synthesis contract implemented by speech
// clients.
package texttospeech

import "github.com/voxprep/interview-core/core/audio"

type SpeechOptions struct {
	// AudioCallback receives synthesized audio chunks as they arrive.
	AudioCallback func(audio []byte)
	// EndedCallback fires when the utterance finished playing out. Cancelled
	// utterances are not guaranteed to fire it.
	EndedCallback func()

	EncodingInfo audio.EncodingInfo
}

type SpeechOption func(*SpeechOptions)

func WithAudioCallback(callback func(audio []byte)) SpeechOption {
	return func(o *SpeechOptions) {
		o.AudioCallback = callback
	}
}

func WithEndedCallback(callback func()) SpeechOption {
	return func(o *SpeechOptions) {
		o.EndedCallback = callback
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) SpeechOption {
	return func(o *SpeechOptions) {
		o.EncodingInfo = encodingInfo
	}
}
