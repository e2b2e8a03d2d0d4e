package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/app/repositories"
	"github.com/mskustudx/studx/internal/pkg/livefeed"
	"github.com/mskustudx/studx/internal/seed"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type countingSnapshotter struct {
	mu    sync.Mutex
	calls int
	last  []*models.User
}

func (s *countingSnapshotter) Snapshot(ctx context.Context, users []*models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.last = make([]*models.User, 0, len(users))
	for _, u := range users {
		s.last = append(s.last, u.Clone())
	}
}

func (s *countingSnapshotter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recordingFeed struct {
	events []livefeed.Event
}

func (f *recordingFeed) Publish(event livefeed.Event) {
	f.events = append(f.events, event)
}

type fixture struct {
	services  *Services
	repos     *repositories.Repositories
	snapshots *countingSnapshotter
	feed      *recordingFeed
}

// plainHash keeps seeded credentials cheap to check in tests
func plainHash(credential string) (string, error) {
	return credential, nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog, err := seed.LoadCatalog()
	require.NoError(t, err)
	users, err := catalog.DefaultUsers(plainHash, testNow)
	require.NoError(t, err)

	snapshots := &countingSnapshotter{}
	feed := &recordingFeed{}
	repos := repositories.NewRepositories(catalog, users, snapshots)

	clock := testNow
	svc := NewServices(repos, Deps{
		Feed:   feed,
		Logger: zerolog.Nop(),
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})

	return &fixture{services: svc, repos: repos, snapshots: snapshots, feed: feed}
}

func ptr(v int64) *int64 {
	return &v
}
