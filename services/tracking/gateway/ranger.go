package gateway

import (
	"context"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/circuitbreaker"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/internal/pkg/ranger"
	"github.com/twigalabs/rangertrack/internal/pkg/retry"
)

// RangerGateway hardens the upstream client with retries and a circuit
// breaker. A breaker trip surfaces immediately instead of hammering a
// struggling server.
type RangerGateway struct {
	cfg     *models.Config
	client  *ranger.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	logger  *logger.ZapLogger
}

// NewRangerGateway creates a gateway around the configured upstream client
func NewRangerGateway(cfg *models.Config, client *ranger.Client, zapLogger *logger.ZapLogger) *RangerGateway {
	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = retry.NetworkRetryableFunc()

	return &RangerGateway{
		cfg:     cfg,
		client:  client,
		retrier: retry.New(retryConfig, zapLogger),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("ranger-upstream"), zapLogger),
		logger:  zapLogger,
	}
}

func (g *RangerGateway) execute(ctx context.Context, fn func(context.Context) error) error {
	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, fn)
	})
}

// ValidateCredentials authenticates the given credentials with a throwaway
// client so the service's own token cache is untouched
func (g *RangerGateway) ValidateCredentials(ctx context.Context, username, password string) error {
	probeCfg := g.cfg.Ranger
	probeCfg.Username = username
	probeCfg.Password = password

	probe := ranger.NewClient(probeCfg, g.logger)
	return probe.Authenticate(ctx)
}

// GetSources fetches the fleet's registered units
func (g *RangerGateway) GetSources(ctx context.Context) ([]models.Source, error) {
	var sources []models.Source
	err := g.execute(ctx, func(ctx context.Context) error {
		var err error
		sources, err = g.client.GetSources(ctx)
		return err
	})
	return sources, err
}

// GetObservations fetches the fixes of the given units over the window
func (g *RangerGateway) GetObservations(ctx context.Context, sourceIDs []string, since, until time.Time) ([]models.Observation, error) {
	var observations []models.Observation
	err := g.execute(ctx, func(ctx context.Context) error {
		var err error
		observations, err = g.client.GetObservations(ctx, sourceIDs, since, until)
		return err
	})
	return observations, err
}

// GetPatrols fetches patrols overlapping the window
func (g *RangerGateway) GetPatrols(ctx context.Context, since, until time.Time, status string) ([]models.Patrol, error) {
	var patrols []models.Patrol
	err := g.execute(ctx, func(ctx context.Context) error {
		var err error
		patrols, err = g.client.GetPatrols(ctx, since, until, status)
		return err
	})
	return patrols, err
}
