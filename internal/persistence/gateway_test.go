package persistence

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mskustudx/studx/internal/app/models"
)

type failingStore struct {
	loadErr error
	saveErr error
	saves   int
}

func (s *failingStore) Name() string { return "failing" }
func (s *failingStore) Close() error { return nil }
func (s *failingStore) Load(ctx context.Context) ([]*models.User, error) {
	return nil, s.loadErr
}
func (s *failingStore) Save(ctx context.Context, users []*models.User) error {
	s.saves++
	return s.saveErr
}

func defaultsOf(users ...*models.User) func() ([]*models.User, error) {
	return func() ([]*models.User, error) { return users, nil }
}

func TestGateway_InitializeWritesDefaultsWhenEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "users-data.json"))
	gw := NewGateway(store, zerolog.Nop(), 0)
	ctx := context.Background()

	users, err := gw.Initialize(ctx, defaultsOf(&models.User{ID: 1, Email: "seed@studx.edu.tr"}))
	require.NoError(t, err)
	require.Len(t, users, 1)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "seed@studx.edu.tr", stored[0].Email)
}

func TestGateway_InitializePrefersExistingSnapshot(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "users-data.json"))
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleUsers()))

	gw := NewGateway(store, zerolog.Nop(), 0)
	users, err := gw.Initialize(ctx, defaultsOf(&models.User{ID: 9, Email: "seed@studx.edu.tr"}))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "demo@studx.edu.tr", users[0].Email)
}

func TestGateway_InitializeEmptySnapshotUsesDefaults(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "users-data.json"))
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, nil))

	gw := NewGateway(store, zerolog.Nop(), 0)
	users, err := gw.Initialize(ctx, defaultsOf(&models.User{ID: 9, Email: "seed@studx.edu.tr"}))
	require.NoError(t, err)
	assert.Equal(t, int64(9), users[0].ID)
}

func TestGateway_LoadFailureFallsBackToDefaults(t *testing.T) {
	store := &failingStore{loadErr: errors.New("connection refused")}
	gw := NewGateway(store, zerolog.Nop(), 0)

	users, err := gw.Initialize(context.Background(), defaultsOf(&models.User{ID: 1}))
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, 1, store.saves)
}

func TestGateway_SnapshotSwallowsWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	store := &failingStore{saveErr: errors.New("read-only file system")}
	gw := NewGateway(store, zerolog.New(&buf), 0)

	assert.NotPanics(t, func() {
		gw.Snapshot(context.Background(), sampleUsers())
	})
	assert.Equal(t, 1, store.saves)
	assert.Contains(t, buf.String(), "read-only file system")
}

func TestGateway_SnapshotSurvivesCancelledContext(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "users-data.json"))
	gw := NewGateway(store, zerolog.Nop(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gw.Snapshot(ctx, sampleUsers())

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
