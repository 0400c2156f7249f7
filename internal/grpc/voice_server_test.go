package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	plannerv1 "taskPlanner/api/planner/v1"
	"taskPlanner/internal/auth"
	"taskPlanner/internal/voice"
	"taskPlanner/models"
)

type fakeTranscriber struct {
	got voice.Request
	res *voice.Result
	err error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, req voice.Request) (*voice.Result, error) {
	f.got = req
	return f.res, f.err
}

func TestVoiceServer_Transcribe(t *testing.T) {
	ctx := auth.WithUser(context.Background(), &models.User{ID: 1, OpenID: "open-x"})
	fake := &fakeTranscriber{res: &voice.Result{Text: "buy milk tomorrow", Language: "en", Duration: 1.5}}
	s := &VoiceServer{Transcriber: fake}

	resp, err := s.Transcribe(ctx, &plannerv1.TranscribeRequest{AudioURL: "https://files.example.com/a.webm", Language: strPtr("en")})
	require.NoError(t, err)
	assert.Equal(t, "buy milk tomorrow", resp.Text)
	assert.Equal(t, "en", resp.Language)
	assert.InDelta(t, 1.5, resp.Duration, 1e-9)
	assert.Equal(t, "en", fake.got.Language)
	assert.Equal(t, "https://files.example.com/a.webm", fake.got.AudioURL)
}

func TestVoiceServer_Errors(t *testing.T) {
	ctx := auth.WithUser(context.Background(), &models.User{ID: 1, OpenID: "open-x"})
	okURL := &plannerv1.TranscribeRequest{AudioURL: "https://files.example.com/a.webm"}

	_, err := (&VoiceServer{}).Transcribe(context.Background(), okURL)
	requireCode(t, err, codes.Unauthenticated)

	_, err = (&VoiceServer{Transcriber: &fakeTranscriber{}}).Transcribe(ctx, &plannerv1.TranscribeRequest{AudioURL: "ftp://x/y"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = (&VoiceServer{}).Transcribe(ctx, okURL)
	requireCode(t, err, codes.FailedPrecondition)

	cases := []struct {
		err  error
		want codes.Code
	}{
		{voice.ErrNotConfigured, codes.FailedPrecondition},
		{fmt.Errorf("download: %w", voice.ErrAudioTooLarge), codes.InvalidArgument},
		{errors.New("upstream 502"), codes.Unavailable},
	}
	for _, tc := range cases {
		_, err := (&VoiceServer{Transcriber: &fakeTranscriber{err: tc.err}}).Transcribe(ctx, okURL)
		requireCode(t, err, tc.want)
	}
}
