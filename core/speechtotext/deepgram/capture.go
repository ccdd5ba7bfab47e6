package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	api "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/websocket/interfaces"
	"github.com/gorilla/websocket"
	"github.com/voxprep/interview-core/core/audio"
	"github.com/voxprep/interview-core/core/speechtotext"
)

// Capture opens one activation: it dials the live-transcription socket and
// reads until exactly one of transcript, error, or ended has been emitted.
func (c *CaptureClient) Capture(ctx context.Context, opts ...speechtotext.CaptureOption) error {
	options := &speechtotext.CaptureOptions{EncodingInfo: audio.GetDefaultEncodingInfo()}
	for _, opt := range opts {
		opt(options)
	}

	c.connMu.Lock()
	if c.conn != nil {
		c.connMu.Unlock()
		return fmt.Errorf("capture activation already in progress")
	}
	c.connMu.Unlock()

	conn, err := connectWebsocket(options.EncodingInfo)
	if err != nil {
		return fmt.Errorf("failed to open websocket: %w", err)
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	c.delivered.Store(false)
	c.stopRequested.Store(false)
	c.accumulatedTranscript = ""

	go c.readAndProcessMessages(ctx, conn, *options)

	return nil
}

func connectWebsocket(encodingInfo audio.EncodingInfo) (*websocket.Conn, error) {
	apiKey, ok := os.LookupEnv(apiKeyEnv)
	if !ok {
		return nil, fmt.Errorf("deepgram api key not found")
	}

	listenURL, _ := url.Parse("wss://api.deepgram.com/v1/listen")
	queryParams := listenURL.Query()
	queryParams.Set("encoding", encodingInfo.Format.Name())
	queryParams.Set("sample_rate", strconv.Itoa(encodingInfo.SampleRate))
	queryParams.Set("channels", "1")
	queryParams.Set("model", "nova-3")
	queryParams.Set("language", "en-US")
	queryParams.Set("smart_format", "true")
	queryParams.Set("interim_results", "true")
	queryParams.Set("utterance_end_ms", "1000")
	queryParams.Set("endpointing", "300")
	queryParams.Set("vad_events", "true")

	listenURL.RawQuery = queryParams.Encode()
	conn, _, err := websocket.DefaultDialer.Dial(listenURL.String(),
		http.Header{"Authorization": {"Token " + apiKey}})
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to deepgram: %w", err)
	}

	return conn, nil
}

func (c *CaptureClient) readAndProcessMessages(ctx context.Context, conn *websocket.Conn, options speechtotext.CaptureOptions) {
	keepAliveDone := make(chan struct{})
	defer close(keepAliveDone)
	go c.keepAlive(keepAliveDone)

	go func() {
		select {
		case <-ctx.Done():
			_ = c.Stop()
		case <-keepAliveDone:
		}
	}()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			c.connMu.Lock()
			c.conn = nil
			c.connMu.Unlock()
			conn.Close()

			c.finishActivation(err, options)
			return
		}
		if msgType != websocket.BinaryMessage {
			c.processMessage(msg, options)
		}
	}
}

func (c *CaptureClient) processMessage(msg []byte, options speechtotext.CaptureOptions) {
	var parsedMsg struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(msg, &parsedMsg); err != nil {
		logger.Warn("failed to unmarshal deepgram message", "error", err)
		return
	}

	switch api.TypeResponse(parsedMsg.Type) {
	case api.TypeMessageResponse:
		var msgResp api.MessageResponse
		if err := json.Unmarshal(msg, &msgResp); err != nil {
			logger.Warn("failed to unmarshal deepgram transcript message", "error", err)
			return
		}
		if !msgResp.IsFinal {
			return
		}
		if len(msgResp.Channel.Alternatives) > 0 {
			segment := strings.TrimSpace(msgResp.Channel.Alternatives[0].Transcript)
			if len(segment) > 0 {
				c.accumulatedTranscript += " " + segment
			}
		}
		if msgResp.SpeechFinal {
			c.deliverTranscript(options)
		}

	case api.TypeUtteranceEndResponse:
		c.deliverTranscript(options)
	}
}

// deliverTranscript emits the accumulated utterance once and closes the
// activation.
func (c *CaptureClient) deliverTranscript(options speechtotext.CaptureOptions) {
	transcript := strings.TrimSpace(c.accumulatedTranscript)
	if len(transcript) == 0 {
		return
	}

	if !c.delivered.CompareAndSwap(false, true) {
		return
	}

	c.accumulatedTranscript = ""
	if options.TranscriptCallback != nil {
		options.TranscriptCallback(transcript)
	}

	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()
	if conn != nil {
		if err := conn.WriteJSON(struct {
			Type string `json:"type"`
		}{Type: "CloseStream"}); err != nil {
			logger.Warn("failed to close deepgram stream after transcript", "error", err)
		}
	}
}

// finishActivation resolves activations that ended without a transcript.
func (c *CaptureClient) finishActivation(readErr error, options speechtotext.CaptureOptions) {
	if c.delivered.Load() {
		return
	}
	c.delivered.Store(true)

	if c.stopRequested.Load() || isNormalClose(readErr) {
		if options.EndedCallback != nil {
			options.EndedCallback()
		}
		return
	}

	if options.ErrorCallback != nil {
		options.ErrorCallback(fmt.Errorf("capture activation failed: %w", readErr))
	}
}

func isNormalClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure)
}
