package grpc

import (
	"context"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	health "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const watchInterval = 5 * time.Second

// probe reports SERVING as long as the database answers.
func probe(ctx context.Context) health.HealthCheckResponse_ServingStatus {
	if database.C == nil {
		return health.HealthCheckResponse_NOT_SERVING
	}
	source, err := database.C.DB()
	if err != nil {
		return health.HealthCheckResponse_NOT_SERVING
	}
	if err := source.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("Database did not answer the health probe.")
		return health.HealthCheckResponse_NOT_SERVING
	}
	return health.HealthCheckResponse_SERVING
}

func (v *App) Check(ctx context.Context, request *health.HealthCheckRequest) (*health.HealthCheckResponse, error) {
	if service := request.GetService(); len(service) > 0 && service != health.Health_ServiceDesc.ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", service)
	}

	return &health.HealthCheckResponse{
		Status: probe(ctx),
	}, nil
}

func (v *App) Watch(request *health.HealthCheckRequest, server health.Health_WatchServer) error {
	ctx := server.Context()
	last := health.HealthCheckResponse_SERVICE_UNKNOWN
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		if current := probe(ctx); current != last {
			if err := server.Send(&health.HealthCheckResponse{Status: current}); err != nil {
				return err
			}
			last = current
		}

		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case <-ticker.C:
		}
	}
}
