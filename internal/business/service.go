package business

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ericblois/marketplace-backend/internal/docstore"
	"github.com/ericblois/marketplace-backend/internal/user"
)

var errNotAuthorized = status.Error(codes.PermissionDenied, "this user is not authorized to make this action")

// Service creates and deletes business record pairs, keeping the owner's
// businessIDs list in the same transaction as the record writes.
type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

// Create allocates a businessID, files default private and public records
// in the owner's country, and appends the ID to the owner's profile — all
// in one commit.
func (s *Service) Create(ctx context.Context, userID string) (string, error) {
	businessID := uuid.NewString()
	err := s.store.RunTransaction(ctx, func(tx docstore.Tx) error {
		var profile user.UserData
		err := tx.Get(docstore.UserPath(userID), &profile)
		if errors.Is(err, docstore.ErrNotFound) {
			return status.Errorf(codes.NotFound, "could not find user ID: %s", userID)
		}
		if err != nil {
			return err
		}

		private := DefaultPrivateBusinessData()
		private.UserID = userID
		private.BusinessID = businessID
		private.Country = profile.Country

		public := DefaultPublicBusinessData()
		public.UserID = userID
		public.BusinessID = businessID
		public.Country = profile.Country

		profile.BusinessIDs = append(profile.BusinessIDs, businessID)

		if err := tx.Set(docstore.PrivateBusinessPath(profile.Country, businessID), private); err != nil {
			return err
		}
		if err := tx.Set(docstore.PublicBusinessPath(profile.Country, businessID), public); err != nil {
			return err
		}
		return tx.Set(docstore.UserPath(userID), profile)
	})
	if err != nil {
		return "", err
	}
	return businessID, nil
}

// Delete removes both record halves and the matching entry in the owner's
// businessIDs list in one commit. Ownership is checked against each record
// independently.
func (s *Service) Delete(ctx context.Context, userID, businessID string) (string, error) {
	err := s.store.RunTransaction(ctx, func(tx docstore.Tx) error {
		var profile user.UserData
		err := tx.Get(docstore.UserPath(userID), &profile)
		if errors.Is(err, docstore.ErrNotFound) {
			return status.Errorf(codes.NotFound, "could not find user ID: %s", userID)
		}
		if err != nil {
			return err
		}

		privatePath := docstore.PrivateBusinessPath(profile.Country, businessID)
		var private PrivateBusinessData
		err = tx.Get(privatePath, &private)
		if errors.Is(err, docstore.ErrNotFound) {
			return status.Errorf(codes.NotFound, "could not find business ID: %s", businessID)
		}
		if err != nil {
			return err
		}

		publicPath := docstore.PublicBusinessPath(profile.Country, businessID)
		var public PublicBusinessData
		err = tx.Get(publicPath, &public)
		if errors.Is(err, docstore.ErrNotFound) {
			return status.Errorf(codes.NotFound, "could not find business ID: %s", businessID)
		}
		if err != nil {
			return err
		}

		if private.UserID != userID || public.UserID != userID {
			return errNotAuthorized
		}

		idx := slices.Index(profile.BusinessIDs, businessID)
		if idx < 0 {
			return status.Errorf(codes.NotFound, "could not find business ID: %s", businessID)
		}
		profile.BusinessIDs = append(profile.BusinessIDs[:idx], profile.BusinessIDs[idx+1:]...)

		if err := tx.Delete(privatePath); err != nil {
			return err
		}
		if err := tx.Delete(publicPath); err != nil {
			return err
		}
		return tx.Set(docstore.UserPath(userID), profile)
	})
	if err != nil {
		return "", err
	}
	return businessID, nil
}
