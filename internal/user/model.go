package user

import "github.com/ericblois/marketplace-backend/internal/order"

// UserData is the customer profile document at userData/{userID}. The
// profile owns the client-side cart and the list of businesses the user
// runs.
type UserData struct {
	Name              string               `json:"name"`
	Age               int                  `json:"age"`
	Gender            string               `json:"gender"`
	BirthDay          string               `json:"birthDay"`
	BirthMonth        string               `json:"birthMonth"`
	BirthYear         string               `json:"birthYear"`
	Country           string               `json:"country"`
	ShippingAddresses []order.ShippingInfo `json:"shippingAddresses"`
	CartItems         []order.CartItem     `json:"cartItems"`
	Favorites         []string             `json:"favorites"`
	BusinessIDs       []string             `json:"businessIDs"`
}

// DefaultUserData returns an empty profile with non-nil collections.
func DefaultUserData() UserData {
	return UserData{
		Gender:            "male",
		ShippingAddresses: []order.ShippingInfo{},
		CartItems:         []order.CartItem{},
		Favorites:         []string{},
		BusinessIDs:       []string{},
	}
}
