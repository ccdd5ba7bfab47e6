// Package speechtotext defines the capture contract implemented by
// transcription clients: one activation yields exactly one of transcript,
// error, or ended.
package speechtotext

import "github.com/voxprep/interview-core/core/audio"

type CaptureOptions struct {
	// TranscriptCallback receives the single final transcript of the
	// activation.
	TranscriptCallback func(transcript string)
	// ErrorCallback receives the activation failure; no transcript follows.
	ErrorCallback func(err error)
	// EndedCallback fires when the activation ends without a transcript.
	EndedCallback func()

	EncodingInfo audio.EncodingInfo
}

type CaptureOption func(*CaptureOptions)

func WithTranscriptCallback(callback func(transcript string)) CaptureOption {
	return func(o *CaptureOptions) {
		o.TranscriptCallback = callback
	}
}

func WithErrorCallback(callback func(err error)) CaptureOption {
	return func(o *CaptureOptions) {
		o.ErrorCallback = callback
	}
}

func WithEndedCallback(callback func()) CaptureOption {
	return func(o *CaptureOptions) {
		o.EndedCallback = callback
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) CaptureOption {
	return func(o *CaptureOptions) {
		o.EncodingInfo = encodingInfo
	}
}
