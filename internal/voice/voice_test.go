package voice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAudioURL(t *testing.T) {
	for _, ok := range []string{"https://cdn.example.com/a.webm", "http://localhost:8080/x.mp3"} {
		_, err := ValidateAudioURL(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "not a url", "ftp://example.com/a.mp3", "/relative/path.mp3", "https://"} {
		_, err := ValidateAudioURL(bad)
		assert.ErrorIs(t, err, ErrInvalidURL, bad)
	}
}

func TestHTTPTranscriber_Transcribe(t *testing.T) {
	audio := []byte("fake-audio-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/files/memo.webm":
			w.Header().Set("Content-Type", "audio/webm")
			_, _ = w.Write(audio)
		case "/v1/audio/transcriptions":
			if r.Header.Get("Authorization") != "Bearer key-1" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "whisper-1", r.FormValue("model"))
			assert.Equal(t, "verbose_json", r.FormValue("response_format"))
			assert.Equal(t, "en", r.FormValue("language"))
			f, hdr, err := r.FormFile("file")
			require.NoError(t, err)
			defer f.Close()
			got, _ := io.ReadAll(f)
			assert.Equal(t, audio, got)
			assert.Equal(t, "memo.webm", hdr.Filename)
			_ = json.NewEncoder(w).Encode(map[string]any{"text": "buy milk tomorrow", "language": "english", "duration": 2.5})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tr := NewHTTPTranscriber(srv.URL+"/", "key-1")
	res, err := tr.Transcribe(context.Background(), Request{AudioURL: srv.URL + "/files/memo.webm", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, "buy milk tomorrow", res.Text)
	assert.Equal(t, "english", res.Language)
	assert.InDelta(t, 2.5, res.Duration, 1e-9)
}

func TestHTTPTranscriber_Errors(t *testing.T) {
	var nilTr *HTTPTranscriber
	_, err := nilTr.Transcribe(context.Background(), Request{AudioURL: "https://example.com/a.mp3"})
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Nil(t, NewHTTPTranscriber("  ", "k"))

	big := strings.Repeat("a", MaxAudioBytes+1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/big.mp3":
			_, _ = io.WriteString(w, big)
		case "/v1/audio/transcriptions":
			http.Error(w, "model overloaded", http.StatusServiceUnavailable)
		default:
			_, _ = io.WriteString(w, "small")
		}
	}))
	defer srv.Close()

	tr := NewHTTPTranscriber(srv.URL, "")
	_, err = tr.Transcribe(context.Background(), Request{AudioURL: srv.URL + "/big.mp3"})
	assert.ErrorIs(t, err, ErrAudioTooLarge)

	_, err = tr.Transcribe(context.Background(), Request{AudioURL: srv.URL + "/small.mp3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")

	_, err = tr.Transcribe(context.Background(), Request{AudioURL: "ftp://example.com/a.mp3"})
	assert.ErrorIs(t, err, ErrInvalidURL)
}
