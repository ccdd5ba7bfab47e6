package httpengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/voxprep/interview-core/core/interview"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// AdvanceTurn issues a single advance-the-interview request. The call either
// yields a normalized result or fails with [interview.ErrTransport] (no
// usable result) or [interview.ErrProtocol] (unusable body). It is never
// retried here.
func (c *Client) AdvanceTurn(ctx context.Context, request interview.TurnRequest) (*interview.TurnResult, error) {
	ctx, span := tracer.Start(ctx, "advance interview turn")
	defer span.End()

	span.SetAttributes(attribute.Int("turn_request.history_length", len(request.History)))

	requestBodyBytes, err := json.Marshal(request)
	if err != nil {
		err = fmt.Errorf("error marshalling turn request: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+advancePath, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		err = fmt.Errorf("error creating HTTP request: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %v", interview.ErrTransport, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if errorBody, readErr := io.ReadAll(resp.Body); readErr == nil {
			span.SetAttributes(attribute.String("response.error", string(errorBody)))
		}

		err := fmt.Errorf("%w: non-success HTTP status %s", interview.ErrTransport, resp.Status)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var responseBody struct {
		Question    string `json:"question"`
		AdvisorTip  string `json:"advisor_tip"`
		Phase       string `json:"phase"`
		Topic       string `json:"topic"`
		IsCompleted bool   `json:"is_completed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&responseBody); err != nil {
		err = fmt.Errorf("%w: undecodable response body: %v", interview.ErrProtocol, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if responseBody.Question == "" {
		err := fmt.Errorf("%w: response carries no question", interview.ErrProtocol)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Bool("turn_result.is_completed", responseBody.IsCompleted))
	return &interview.TurnResult{
		IsCompleted:  responseBody.IsCompleted,
		NextQuestion: responseBody.Question,
		AdvisorTip:   responseBody.AdvisorTip,
		Phase:        responseBody.Phase,
		Topic:        responseBody.Topic,
	}, nil
}
