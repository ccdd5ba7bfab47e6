// Package deepgram captures a single spoken utterance per activation through
// the Deepgram live-transcription websocket.
package deepgram

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const apiKeyEnv = "DEEPGRAM_API_KEY"

type CaptureClient struct {
	conn   *websocket.Conn
	connMu sync.Mutex

	accumulatedTranscript string

	// delivered gates the one-result-per-activation contract.
	delivered atomic.Bool
	// stopRequested marks an activation that should end without a transcript.
	stopRequested atomic.Bool
}

func NewCaptureClient() *CaptureClient {
	return &CaptureClient{}
}

// Available reports whether the host can capture at all. Callers consult
// this once before offering the listening action.
func (c *CaptureClient) Available() bool {
	_, ok := os.LookupEnv(apiKeyEnv)
	return ok
}

func (c *CaptureClient) SendAudio(audio []byte) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("no capture activation in progress")
	}

	if err := c.conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
		return fmt.Errorf("failed to write to deepgram client: %w", err)
	}
	return nil
}

// Stop ends the activation without producing a transcript.
func (c *CaptureClient) Stop() error {
	c.stopRequested.Store(true)

	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn != nil {
		if err := c.conn.WriteJSON(struct {
			Type string `json:"type"`
		}{Type: "CloseStream"}); err != nil {
			return fmt.Errorf("failed to close deepgram stream: %w", err)
		}
	}
	return nil
}

func (c *CaptureClient) sendKeepAlive() {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return
	}

	if err := c.conn.WriteJSON(struct {
		Type string `json:"type"`
	}{Type: "KeepAlive"}); err != nil {
		logger.Warn("failed to send keepalive to deepgram", "error", err)
	}
}

func (c *CaptureClient) keepAlive(done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			c.sendKeepAlive()
		}
	}
}
