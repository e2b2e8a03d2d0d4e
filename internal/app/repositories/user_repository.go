package repositories

import (
	"context"
	"strings"
	"sync"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
)

// Snapshotter receives the full user collection after every mutation.
// Implementations must not retain the slice after returning.
type Snapshotter interface {
	Snapshot(ctx context.Context, users []*models.User)
}

// IUserRepository is the user collection as seen by services
type IUserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id int64, fn func(u *models.User) error) (*models.User, error)
	Persist(ctx context.Context)
}

// UserRepository owns the live user collection. Every mutation runs under
// the write lock and is followed by a snapshot of the whole collection
// before the lock is released, so snapshots are written in mutation order.
type UserRepository struct {
	mu        sync.RWMutex
	users     map[int64]*models.User
	byEmail   map[string]int64
	order     []int64
	nextID    int64
	snapshots Snapshotter
}

// NewUserRepository creates the user collection from loaded or seeded users
func NewUserRepository(users []*models.User, snapshots Snapshotter) *UserRepository {
	r := &UserRepository{
		users:     make(map[int64]*models.User, len(users)),
		byEmail:   make(map[string]int64, len(users)),
		nextID:    1,
		snapshots: snapshots,
	}
	for _, u := range users {
		if _, dup := r.users[u.ID]; dup {
			continue
		}
		cp := u.Clone()
		r.users[cp.ID] = cp
		r.byEmail[emailKey(cp.Email)] = cp.ID
		r.order = append(r.order, cp.ID)
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
	}
	return r
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u.Clone(), nil
}

// GetByEmail retrieves a user by email, ignoring case
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return r.users[id].Clone(), nil
}

// Create assigns the next id to user, stores it, and snapshots
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, taken := r.byEmail[key]; taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	u := user.Clone()
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	r.byEmail[key] = u.ID
	r.order = append(r.order, u.ID)

	r.snapshotLocked(ctx)
	return u.Clone(), nil
}

// Update applies fn to the stored user and snapshots. If fn fails nothing is written.
func (r *UserRepository) Update(ctx context.Context, id int64, fn func(u *models.User) error) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if err := fn(u); err != nil {
		return nil, err
	}

	r.snapshotLocked(ctx)
	return u.Clone(), nil
}

// Persist snapshots the collection without changing it
func (r *UserRepository) Persist(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshotLocked(ctx)
}

// All returns copies of every user in creation order
func (r *UserRepository) All(ctx context.Context) []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id].Clone())
	}
	return out
}

// Count returns the number of users
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *UserRepository) snapshotLocked(ctx context.Context) {
	if r.snapshots == nil {
		return
	}
	users := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	r.snapshots.Snapshot(ctx, users)
}
