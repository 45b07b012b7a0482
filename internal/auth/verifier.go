// Package auth verifies caller identity for the callable operations.
package auth

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ericblois/marketplace-backend/internal/docstore"
)

// Verifier turns a request token into a verified user identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}

// Credentials is the stored credential record for one user.
type Credentials struct {
	UserID     string `json:"userID"`
	SecretHash string `json:"secretHash"`
}

var errInvalidCredentials = status.Error(codes.Unauthenticated, "invalid credentials")

// StoreVerifier verifies "userID:secret" tokens against bcrypt hashes kept
// in the document store under userAuth/{userID}.
type StoreVerifier struct{ store docstore.Store }

func NewStoreVerifier(store docstore.Store) *StoreVerifier {
	return &StoreVerifier{store: store}
}

func (v *StoreVerifier) Verify(ctx context.Context, token string) (string, error) {
	userID, secret, ok := strings.Cut(token, ":")
	if !ok || userID == "" || secret == "" {
		return "", errInvalidCredentials
	}
	var creds Credentials
	if err := v.store.Get(ctx, docstore.UserAuthPath(userID), &creds); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return "", errInvalidCredentials
		}
		return "", err
	}
	if !CheckPassword(creds.SecretHash, secret) {
		return "", errInvalidCredentials
	}
	return userID, nil
}

// Register stores a credential record for userID, replacing any previous
// secret.
func (v *StoreVerifier) Register(ctx context.Context, userID, secret string) error {
	hash, err := HashPassword(secret)
	if err != nil {
		return err
	}
	creds := Credentials{UserID: userID, SecretHash: hash}
	return v.store.Set(ctx, docstore.UserAuthPath(userID), creds)
}
