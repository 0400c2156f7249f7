package grpcserver

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	plannerv1 "taskPlanner/api/planner/v1"
	"taskPlanner/internal/auth"
	"taskPlanner/internal/voice"
)

// VoiceServer implements VoiceService. A nil Transcriber means the feature is off.
type VoiceServer struct {
	plannerv1.UnimplementedVoiceServiceServer
	Transcriber voice.Transcriber
}

func (s *VoiceServer) Transcribe(ctx context.Context, req *plannerv1.TranscribeRequest) (*plannerv1.TranscribeResponse, error) {
	if _, err := auth.RequireUser(ctx); err != nil {
		return nil, err
	}
	if req == nil {
		req = &plannerv1.TranscribeRequest{}
	}
	if _, err := voice.ValidateAudioURL(req.AudioURL); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if s.Transcriber == nil {
		return nil, status.Error(codes.FailedPrecondition, voice.ErrNotConfigured.Error())
	}
	in := voice.Request{AudioURL: req.AudioURL}
	if req.Language != nil {
		in.Language = *req.Language
	}
	res, err := s.Transcriber.Transcribe(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, voice.ErrNotConfigured):
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		case errors.Is(err, voice.ErrAudioTooLarge), errors.Is(err, voice.ErrInvalidURL):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			log.Ctx(ctx).Warn().Err(err).Msg("transcription failed")
			return nil, status.Errorf(codes.Unavailable, "transcription failed: %v", err)
		}
	}
	return &plannerv1.TranscribeResponse{Text: res.Text, Language: res.Language, Duration: res.Duration}, nil
}
