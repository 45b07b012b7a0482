// Package order prices carts against authoritative product records and owns
// the order lifecycle, keeping the customer and business copies of each
// order in lockstep.
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusShipped   Status = "shipped"
	StatusCompleted Status = "completed"
)

type DeliveryMethod string

const (
	DeliveryPickup        DeliveryMethod = "pickup"
	DeliveryLocal         DeliveryMethod = "local"
	DeliveryCountry       DeliveryMethod = "country"
	DeliveryInternational DeliveryMethod = "international"
)

func (m DeliveryMethod) Valid() bool {
	switch m {
	case DeliveryPickup, DeliveryLocal, DeliveryCountry, DeliveryInternational:
		return true
	}
	return false
}

type ShippingInfo struct {
	Name          string  `json:"name"`
	StreetAddress string  `json:"streetAddress"`
	City          string  `json:"city"`
	Region        *string `json:"region"`
	Country       string  `json:"country"`
	PostalCode    string  `json:"postalCode"`
}

// OptionSelection is the client's claimed choice for one option type. The
// claimed price change is advisory; pricing re-resolves it from the product
// record.
type OptionSelection struct {
	OptionName  string          `json:"optionName"`
	PriceChange decimal.Decimal `json:"priceChange"`
}

// OptionSelections maps an option type name to the claimed selection.
type OptionSelections map[string]OptionSelection

// CartItem is one product line selection. BasePrice and TotalPrice are
// whatever the client claimed and are never used for money calculation.
type CartItem struct {
	BusinessID     string           `json:"businessID"`
	ProductID      string           `json:"productID"`
	ProductOptions OptionSelections `json:"productOptions"`
	BasePrice      decimal.Decimal  `json:"basePrice"`
	TotalPrice     decimal.Decimal  `json:"totalPrice"`
	Quantity       int              `json:"quantity"`
}

// OrderData is stored twice with identical content: once under the
// customer's identity and once under the business's. Both copies are always
// written in the same transaction.
type OrderData struct {
	BusinessID     string          `json:"businessID"`
	UserID         string          `json:"userID"`
	OrderID        string          `json:"orderID"`
	CartItems      []CartItem      `json:"cartItems"`
	SubtotalPrice  decimal.Decimal `json:"subtotalPrice"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	ShippingInfo   ShippingInfo    `json:"shippingInfo"`
	DeliveryMethod DeliveryMethod  `json:"deliveryMethod"`
	DeliveryPrice  decimal.Decimal `json:"deliveryPrice"`
	CreationTime   time.Time       `json:"creationTime"`
	ResponseTime   *time.Time      `json:"responseTime"`
	CompletionTime *time.Time      `json:"completionTime"`
	Status         Status          `json:"status"`
}
