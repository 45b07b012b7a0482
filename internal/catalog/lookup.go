package catalog

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ericblois/marketplace-backend/internal/docstore"
)

// Lookup fetches authoritative product records for pricing.
type Lookup interface {
	Product(ctx context.Context, country, businessID, productID string) (*ProductData, error)
}

// StoreLookup reads product records from the public business data in the
// document store.
type StoreLookup struct{ store docstore.Store }

func NewStoreLookup(store docstore.Store) *StoreLookup {
	return &StoreLookup{store: store}
}

func (l *StoreLookup) Product(ctx context.Context, country, businessID, productID string) (*ProductData, error) {
	var p ProductData
	err := l.store.Get(ctx, docstore.ProductPath(country, businessID, productID), &p)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "could not find product ID: %s, from business ID: %s", productID, businessID)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
