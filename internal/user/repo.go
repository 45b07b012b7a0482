package user

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ericblois/marketplace-backend/internal/docstore"
)

// Repo reads and overwrites user profile documents.
type Repo struct{ store docstore.Store }

func NewRepo(store docstore.Store) *Repo { return &Repo{store: store} }

func (r *Repo) Get(ctx context.Context, userID string) (*UserData, error) {
	var data UserData
	err := r.store.Get(ctx, docstore.UserPath(userID), &data)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "could not find user ID: %s", userID)
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *Repo) Set(ctx context.Context, userID string, data UserData) error {
	return r.store.Set(ctx, docstore.UserPath(userID), data)
}

// Country implements order.ProfileSource.
func (r *Repo) Country(ctx context.Context, userID string) (string, error) {
	data, err := r.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return data.Country, nil
}
