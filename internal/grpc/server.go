package grpcserver

import (
	"context"
	"net"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	plannerv1 "taskPlanner/api/planner/v1"
	"taskPlanner/internal/auth"
	"taskPlanner/internal/config"
	"taskPlanner/internal/voice"
	"taskPlanner/repository"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// publicMethods run with optional authentication.
var publicMethods = []string{
	healthCheckMethod,
	plannerv1.AuthService_Me_FullMethodName,
	plannerv1.AuthService_Logout_FullMethodName,
}

// Deps are the collaborators the services are built from.
type Deps struct {
	Users       *repository.UserRepository
	Tasks       *repository.TaskRepository
	Reminders   *repository.ReminderRepository
	Events      *repository.CalendarRepository
	Transcriber voice.Transcriber // nil disables VoiceService/Transcribe
	Location    *time.Location    // default day-bucketing zone for CalendarService/Month
	Now         func() time.Time
}

// NewServer builds a gRPC server with logging and authentication interceptors and all planner
// services plus the standard health service registered.
func NewServer(cfg *config.Config, deps Deps) *grpc.Server {
	if cfg == nil {
		panic("config is required")
	}
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		newUnaryLoggingInterceptor(log.Logger),
		auth.NewUnaryAuthInterceptor(auth.InterceptorConfig{
			Secret:        cfg.Auth.JWTSecret,
			CookieName:    cfg.Auth.CookieName,
			Identities:    deps.Users,
			PublicMethods: publicMethods,
			Now:           deps.Now,
		}),
	))

	plannerv1.RegisterAuthServiceServer(srv, &AuthServer{CookieName: cfg.Auth.CookieName})
	plannerv1.RegisterTaskServiceServer(srv, &TaskServer{Tasks: deps.Tasks})
	plannerv1.RegisterReminderServiceServer(srv, &ReminderServer{Reminders: deps.Reminders})
	plannerv1.RegisterCalendarServiceServer(srv, &CalendarServer{Events: deps.Events, Tasks: deps.Tasks, Location: deps.Location})
	plannerv1.RegisterVoiceServiceServer(srv, &VoiceServer{Transcriber: deps.Transcriber})

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}

// StartGRPC starts the gRPC server on the configured address and returns a shutdown function.
func StartGRPC(cfg *config.Config, deps Deps) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := NewServer(cfg, deps)
	go func() {
		if err := srv.Serve(lis); err != nil {
			log.Error().Err(err).Msg("grpc serve stopped")
		}
	}()
	log.Info().Str("addr", lis.Addr().String()).Msg("grpc server listening")

	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}
