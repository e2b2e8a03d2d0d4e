package persistence

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
	"github.com/mskustudx/studx/internal/pkg/metrics"
)

// DefaultTimeout bounds a single load or save
const DefaultTimeout = 5 * time.Second

// Gateway is the write-through front of a Store
type Gateway struct {
	store   Store
	logger  zerolog.Logger
	timeout time.Duration
}

// NewGateway wraps store. A non-positive timeout selects DefaultTimeout.
func NewGateway(store Store, logger zerolog.Logger, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		store:   store,
		logger:  logger.With().Str("component", "persistence").Str("store", store.Name()).Logger(),
		timeout: timeout,
	}
}

// Initialize returns the live user collection for process start: the stored
// snapshot when it holds at least one user, otherwise the defaults, which are
// then written as the first snapshot. Read failures fall back to the defaults.
func (g *Gateway) Initialize(ctx context.Context, defaults func() ([]*models.User, error)) ([]*models.User, error) {
	loadCtx, cancel := context.WithTimeout(ctx, g.timeout)
	users, err := g.store.Load(loadCtx)
	cancel()

	if err != nil {
		g.logger.Error().Err(apperrors.NewPersistenceError("snapshot load failed", err)).Msg("Falling back to default users")
	} else if len(users) > 0 {
		g.logger.Info().Int("users", len(users)).Msg("Loaded user snapshot")
		return users, nil
	}

	users, err = defaults()
	if err != nil {
		return nil, err
	}
	g.logger.Info().Int("users", len(users)).Msg("No user snapshot found, writing defaults")
	g.Snapshot(ctx, users)
	return users, nil
}

// Snapshot overwrites the stored collection. Failures are logged and counted
// but never returned: callers have already applied their change in memory.
// The write is detached from ctx cancellation so a client hanging up does not
// abort it.
func (g *Gateway) Snapshot(ctx context.Context, users []*models.User) {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)
	defer cancel()

	start := time.Now()
	err := g.store.Save(saveCtx, users)
	metrics.RecordSnapshotWrite(err)
	if err != nil {
		g.logger.Error().
			Err(apperrors.NewPersistenceError("snapshot write failed", err)).
			Int("users", len(users)).
			Msg("Failed to save user snapshot")
		return
	}
	g.logger.Debug().
		Int("users", len(users)).
		Dur("took", time.Since(start)).
		Msg("Saved user snapshot")
}

// Close releases the underlying store
func (g *Gateway) Close() error {
	return g.store.Close()
}
