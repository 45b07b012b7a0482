package order

import "github.com/shopspring/decimal"

// CreateOrderRequest payload for placing an order.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	BusinessID     string          `json:"businessID"`
	CartItems      []CartItem      `json:"cartItems"`
	ShippingInfo   ShippingInfo    `json:"shippingInfo"`
	DeliveryMethod DeliveryMethod  `json:"deliveryMethod" example:"pickup"`
	DeliveryPrice  decimal.Decimal `json:"deliveryPrice"  example:"4.99"`
}

// RespondToOrderRequest payload for accepting or rejecting an order.
// swagger:model RespondToOrderRequest
type RespondToOrderRequest struct {
	BusinessID  string `json:"businessID"`
	AcceptOrder bool   `json:"acceptOrder"`
}

// CompleteOrderRequest payload for closing out an accepted order.
// swagger:model CompleteOrderRequest
type CompleteOrderRequest struct {
	BusinessID string `json:"businessID"`
	Shipped    bool   `json:"shipped"`
}
