// Package business manages the paired private/public record halves of one
// business: the private half carries authorization-sensitive fields, the
// public half the customer-facing listing. Both share the same businessID
// and are always created and deleted together.
package business

import "github.com/ericblois/marketplace-backend/internal/catalog"

type Coords struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type DeliveryMethods struct {
	Pickup        bool `json:"pickup"`
	Local         bool `json:"local"`
	Country       bool `json:"country"`
	International bool `json:"international"`
}

type PrivateBusinessData struct {
	UserID     string `json:"userID"`
	BusinessID string `json:"businessID"`
	Country    string `json:"country"`
	Coords     Coords `json:"coords"`
}

type PublicBusinessData struct {
	UserID             string                    `json:"userID"`
	BusinessID         string                    `json:"businessID"`
	Name               string                    `json:"name"`
	ProfileImage       string                    `json:"profileImage"`
	GalleryImages      []string                  `json:"galleryImages"`
	BusinessType       string                    `json:"businessType"`
	TotalRating        float64                   `json:"totalRating"`
	Description        string                    `json:"description"`
	Coords             Coords                    `json:"coords"`
	Address            string                    `json:"address"`
	City               string                    `json:"city"`
	Region             string                    `json:"region"`
	Country            string                    `json:"country"`
	PostalCode         string                    `json:"postalCode"`
	Geohash            string                    `json:"geohash"`
	DeliveryMethods    DeliveryMethods           `json:"deliveryMethods"`
	LocalDeliveryRange float64                   `json:"localDeliveryRange"`
	Keywords           []string                  `json:"keywords"`
	ProductList        []catalog.ProductCategory `json:"productList"`
}

// DefaultPrivateBusinessData returns an empty private record.
func DefaultPrivateBusinessData() PrivateBusinessData {
	return PrivateBusinessData{}
}

// DefaultPublicBusinessData returns an empty public listing with non-nil
// collections.
func DefaultPublicBusinessData() PublicBusinessData {
	return PublicBusinessData{
		GalleryImages: []string{},
		Keywords:      []string{},
		ProductList:   []catalog.ProductCategory{},
	}
}
