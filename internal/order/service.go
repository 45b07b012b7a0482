package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ericblois/marketplace-backend/internal/catalog"
	"github.com/ericblois/marketplace-backend/internal/docstore"
)

// createIDAttempts bounds order ID regeneration when a generated ID is
// already taken.
const createIDAttempts = 5

var errNotAuthorized = status.Error(codes.PermissionDenied, "this user is not authorized to make this action")

// ProfileSource supplies the profile fields the lifecycle manager needs
// from user records.
type ProfileSource interface {
	Country(ctx context.Context, userID string) (string, error)
}

// privateBusinessRecord carries just the private-business fields the
// lifecycle checks read.
type privateBusinessRecord struct {
	UserID  string `json:"userID"`
	Country string `json:"country"`
}

// Service owns the order state machine and the dual-write protocol: every
// mutation writes the customer copy and the business copy of an order in
// one transaction.
type Service struct {
	store    docstore.Store
	products catalog.Lookup
	profiles ProfileSource
	taxRate  func(country string) decimal.Decimal

	now   func() time.Time
	newID func() string
}

func NewService(store docstore.Store, products catalog.Lookup, profiles ProfileSource, taxRate func(string) decimal.Decimal) *Service {
	return &Service{
		store:    store,
		products: products,
		profiles: profiles,
		taxRate:  taxRate,
		now:      time.Now,
		newID:    GenerateOrderID,
	}
}

// Create prices the cart from the authoritative product records and files
// the new pending order under both the customer and the business.
func (s *Service) Create(ctx context.Context, userID string, req CreateOrderRequest) (string, error) {
	if !req.DeliveryMethod.Valid() {
		return "", status.Errorf(codes.InvalidArgument, "unknown delivery method: %s", req.DeliveryMethod)
	}
	country, err := s.profiles.Country(ctx, userID)
	if err != nil {
		return "", err
	}
	subtotal, total, err := ComputeCartTotal(ctx, req.CartItems, country, s.products, s.taxRate(country))
	if err != nil {
		return "", err
	}

	data := OrderData{
		BusinessID:     req.BusinessID,
		UserID:         userID,
		CartItems:      req.CartItems,
		SubtotalPrice:  subtotal,
		TotalPrice:     total,
		ShippingInfo:   req.ShippingInfo,
		DeliveryMethod: req.DeliveryMethod,
		DeliveryPrice:  req.DeliveryPrice,
		CreationTime:   s.now().UTC(),
		Status:         StatusPending,
	}
	err = s.store.RunTransaction(ctx, func(tx docstore.Tx) error {
		for attempt := 0; attempt < createIDAttempts; attempt++ {
			data.OrderID = s.newID()
			businessPath := docstore.BusinessOrderPath(country, req.BusinessID, data.OrderID)
			var taken OrderData
			err := tx.Get(businessPath, &taken)
			if err == nil {
				continue // ID collision, generate another
			}
			if !errors.Is(err, docstore.ErrNotFound) {
				return err
			}
			if err := tx.Set(businessPath, data); err != nil {
				return err
			}
			return tx.Set(docstore.UserOrderPath(userID, data.OrderID), data)
		}
		return status.Error(codes.Internal, "could not allocate an unused order ID")
	})
	if err != nil {
		return "", err
	}
	return data.OrderID, nil
}

// Respond moves a pending order to accepted or rejected on behalf of the
// business owner.
func (s *Service) Respond(ctx context.Context, userID, businessID, orderID string, accept bool) error {
	return s.transition(ctx, userID, businessID, orderID, func(data *OrderData) error {
		if data.Status != StatusPending {
			return status.Errorf(codes.Aborted, "cannot respond to an order with status: %s", data.Status)
		}
		if accept {
			data.Status = StatusAccepted
		} else {
			data.Status = StatusRejected
		}
		t := s.now().UTC()
		data.ResponseTime = &t
		return nil
	})
}

// Complete moves an accepted order to shipped or completed on behalf of the
// business owner.
func (s *Service) Complete(ctx context.Context, userID, businessID, orderID string, shipped bool) error {
	return s.transition(ctx, userID, businessID, orderID, func(data *OrderData) error {
		if data.Status != StatusAccepted {
			return status.Errorf(codes.Aborted, "cannot complete an order with status: %s", data.Status)
		}
		if shipped {
			data.Status = StatusShipped
		} else {
			data.Status = StatusCompleted
		}
		t := s.now().UTC()
		data.CompletionTime = &t
		return nil
	})
}

// Get returns the customer's copy of an order.
func (s *Service) Get(ctx context.Context, userID, orderID string) (*OrderData, error) {
	var data OrderData
	err := s.store.Get(ctx, docstore.UserOrderPath(userID, orderID), &data)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "could not find order ID: %s", orderID)
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// transition authorizes the caller against the private business record,
// applies the state change to the business copy, and overwrites both copies
// atomically. The read and the status check happen inside the transaction,
// so concurrent transitions on the same order serialize.
func (s *Service) transition(ctx context.Context, userID, businessID, orderID string, apply func(*OrderData) error) error {
	country, err := s.profiles.Country(ctx, userID)
	if err != nil {
		return err
	}
	return s.store.RunTransaction(ctx, func(tx docstore.Tx) error {
		var private privateBusinessRecord
		err := tx.Get(docstore.PrivateBusinessPath(country, businessID), &private)
		if errors.Is(err, docstore.ErrNotFound) {
			return status.Errorf(codes.NotFound, "could not find business ID: %s", businessID)
		}
		if err != nil {
			return err
		}
		if private.UserID != userID {
			return errNotAuthorized
		}

		businessPath := docstore.BusinessOrderPath(private.Country, businessID, orderID)
		var data OrderData
		err = tx.Get(businessPath, &data)
		if errors.Is(err, docstore.ErrNotFound) {
			return status.Errorf(codes.NotFound, "could not find order ID: %s", orderID)
		}
		if err != nil {
			return err
		}

		if err := apply(&data); err != nil {
			return err
		}
		if err := tx.Set(businessPath, data); err != nil {
			return err
		}
		return tx.Set(docstore.UserOrderPath(data.UserID, orderID), data)
	})
}
