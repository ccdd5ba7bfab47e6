package httpengine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/voxprep/interview-core/core/interview"
)

func TestStartInterview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload" {
			t.Errorf("expected request to /upload, got %s", r.URL.Path)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("expected a resume document part: %v", err)
		} else {
			defer file.Close()
			if header.Filename != "resume.pdf" {
				t.Errorf("unexpected filename: %q", header.Filename)
			}
			content, _ := io.ReadAll(file)
			if string(content) != "resume bytes" {
				t.Errorf("unexpected document content: %q", content)
			}
		}
		if job := r.FormValue("job"); job != "Backend engineer" {
			t.Errorf("unexpected job field: %q", job)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"question":    "Tell me about yourself.",
			"advisor_tip": "Keep it under two minutes.",
			"job":         "Backend engineer",
			"resume":      "Ten years of Go.",
			"phase":       "introduction",
			"topic":       "background",
		})
	}))
	defer server.Close()

	payload, err := NewClient(server.URL).StartInterview(
		context.Background(), "Backend engineer", strings.NewReader("resume bytes"), "resume.pdf")
	if err != nil {
		t.Fatalf("expected bootstrap to succeed, got %v", err)
	}

	if payload.Question != "Tell me about yourself." {
		t.Errorf("unexpected starter question: %q", payload.Question)
	}
	if payload.Job != "Backend engineer" || payload.Resume != "Ten years of Go." {
		t.Errorf("unexpected profile: %q / %q", payload.Job, payload.Resume)
	}
	if payload.Phase != "introduction" || payload.Topic != "background" {
		t.Errorf("unexpected phase/topic: %q / %q", payload.Phase, payload.Topic)
	}
}

func TestStartInterviewRejectsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"job":    "Backend engineer",
			"resume": "Ten years of Go.",
		})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).StartInterview(
		context.Background(), "Backend engineer", strings.NewReader("resume bytes"), "resume.pdf")
	if !errors.Is(err, interview.ErrMalformedStart) {
		t.Fatalf("expected ErrMalformedStart, got %v", err)
	}
}

func TestStartInterviewTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).StartInterview(
		context.Background(), "Backend engineer", strings.NewReader("resume bytes"), "resume.pdf")
	if !errors.Is(err, interview.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
