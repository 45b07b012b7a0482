// Package catalog holds the product records owned by businesses. Product
// management itself lives outside this service; orders read these records to
// price carts.
package catalog

import "github.com/shopspring/decimal"

// ProductOption is one selectable value of an option type. A null
// PriceChange leaves the item price unchanged.
type ProductOption struct {
	Name        string              `json:"name"`
	PriceChange decimal.NullDecimal `json:"priceChange"`
	Images      []string            `json:"images"`
}

// ProductOptionType is a named customization axis (e.g. "size") on a
// product. Option names are unique within a type.
type ProductOptionType struct {
	Name     string          `json:"name"`
	Optional bool            `json:"optional"`
	Options  []ProductOption `json:"options"`
}

// Option returns the option named name, or nil if the type has no such
// option.
func (t *ProductOptionType) Option(name string) *ProductOption {
	for i := range t.Options {
		if t.Options[i].Name == name {
			return &t.Options[i]
		}
	}
	return nil
}

// ProductData is the authoritative product record. A null Price means the
// product cannot be ordered. Option type names are unique within a product.
type ProductData struct {
	BusinessID  string              `json:"businessID"`
	ProductID   string              `json:"productID"`
	Category    string              `json:"category"`
	Name        string              `json:"name"`
	Price       decimal.NullDecimal `json:"price"`
	Description string              `json:"description"`
	Images      []string            `json:"images"`
	OptionTypes []ProductOptionType `json:"optionTypes"`
	Ratings     []float64           `json:"ratings"`
	ExtraInfo   string              `json:"extraInfo"`
	IsVisible   bool                `json:"isVisible"`
}

// OptionType returns the option type named name, or nil.
func (p *ProductData) OptionType(name string) *ProductOptionType {
	for i := range p.OptionTypes {
		if p.OptionTypes[i].Name == name {
			return &p.OptionTypes[i]
		}
	}
	return nil
}

// ProductCategory is one named group in a business's product list.
type ProductCategory struct {
	Name       string   `json:"name"`
	ProductIDs []string `json:"productIDs"`
}
