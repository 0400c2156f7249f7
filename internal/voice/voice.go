// Package voice talks to the external speech-to-text collaborator.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// MaxAudioBytes is the largest audio file accepted for transcription.
const MaxAudioBytes = 16 << 20

var (
	// ErrNotConfigured is returned when no transcription endpoint is set.
	ErrNotConfigured = errors.New("voice transcription is not configured")
	// ErrAudioTooLarge is returned when the audio exceeds MaxAudioBytes.
	ErrAudioTooLarge = errors.New("audio file exceeds 16MB")
	// ErrInvalidURL is returned for audio URLs that are not absolute http(s) URLs.
	ErrInvalidURL = errors.New("invalid audio url")
)

// Request describes one transcription.
type Request struct {
	AudioURL string
	Language string
}

// Result is the collaborator's answer.
type Result struct {
	Text     string
	Language string
	Duration float64
}

// Transcriber converts audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (*Result, error)
}

// ValidateAudioURL checks that raw is an absolute http or https URL with a host.
func ValidateAudioURL(raw string) (*url.URL, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return u, nil
}

// HTTPTranscriber downloads the audio and posts it to a Whisper-compatible
// /v1/audio/transcriptions endpoint.
type HTTPTranscriber struct {
	Endpoint string
	APIKey   string
	Model    string
	Client   *http.Client
}

// NewHTTPTranscriber returns a transcriber for endpoint, or nil when endpoint is empty.
func NewHTTPTranscriber(endpoint, apiKey string) *HTTPTranscriber {
	if strings.TrimSpace(endpoint) == "" {
		return nil
	}
	return &HTTPTranscriber{
		Endpoint: strings.TrimRight(endpoint, "/"),
		APIKey:   apiKey,
		Model:    "whisper-1",
		Client:   &http.Client{Timeout: 60 * time.Second},
	}
}

type transcriptionResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

func (t *HTTPTranscriber) Transcribe(ctx context.Context, req Request) (*Result, error) {
	if t == nil || t.Endpoint == "" {
		return nil, ErrNotConfigured
	}
	u, err := ValidateAudioURL(req.AudioURL)
	if err != nil {
		return nil, err
	}
	audio, contentType, err := t.download(ctx, u)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	filename := path.Base(u.Path)
	if filename == "" || filename == "/" || filename == "." {
		filename = "audio" + extensionFor(contentType)
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(audio); err != nil {
		return nil, err
	}
	_ = mw.WriteField("model", t.Model)
	_ = mw.WriteField("response_format", "verbose_json")
	if lang := strings.TrimSpace(req.Language); lang != "" {
		_ = mw.WriteField("language", lang)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint+"/v1/audio/transcriptions", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	if t.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+t.APIKey)
	}
	resp, err := t.client().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("transcription service: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	var out transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode transcription: %w", err)
	}
	return &Result{Text: out.Text, Language: out.Language, Duration: out.Duration}, nil
}

func (t *HTTPTranscriber) download(ctx context.Context, u *url.URL) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := t.client().Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download audio: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download audio: %s", resp.Status)
	}
	if resp.ContentLength > MaxAudioBytes {
		return nil, "", ErrAudioTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxAudioBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("download audio: %w", err)
	}
	if len(data) > MaxAudioBytes {
		return nil, "", ErrAudioTooLarge
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (t *HTTPTranscriber) client() *http.Client {
	if t.Client != nil {
		return t.Client
	}
	return http.DefaultClient
}

func extensionFor(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".audio"
	}
	switch mt {
	case "audio/webm":
		return ".webm"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/ogg":
		return ".ogg"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		return ".m4a"
	default:
		return ".audio"
	}
}
