// Package persistence keeps a durable snapshot of the user collection.
//
// Catalog entities and materials are seed data and are never written. Every
// user mutation overwrites the whole snapshot through a Store; the Gateway
// logs and swallows write failures because the in-memory change has already
// been applied by the time a snapshot is attempted.
package persistence

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/mskustudx/studx/internal/app/models"
)

// Store loads and saves the whole user collection as one document
type Store interface {
	// Load returns the stored users, or an empty slice when no snapshot exists
	Load(ctx context.Context) ([]*models.User, error)
	// Save replaces the stored snapshot
	Save(ctx context.Context, users []*models.User) error
	// Name identifies the backend in logs
	Name() string
	Close() error
}

// encodeUsers renders the snapshot document: a JSON array of user records
func encodeUsers(users []*models.User) ([]byte, error) {
	if users == nil {
		users = []*models.User{}
	}
	return json.MarshalIndent(users, "", "  ")
}

func decodeUsers(data []byte) ([]*models.User, error) {
	if len(data) == 0 {
		return []*models.User{}, nil
	}
	var users []*models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	out := users[:0]
	for _, u := range users {
		if u == nil {
			continue
		}
		u.Normalize()
		out = append(out, u)
	}
	return out, nil
}
