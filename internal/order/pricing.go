package order

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ericblois/marketplace-backend/internal/catalog"
)

// ComputeCartTotal resolves every cart item against the authoritative
// product records and returns the cart subtotal and the tax-inclusive
// total. Prices claimed by the client on the cart items are ignored.
func ComputeCartTotal(ctx context.Context, items []CartItem, country string, products catalog.Lookup, taxRate decimal.Decimal) (subtotal, total decimal.Decimal, err error) {
	for _, item := range items {
		price, err := itemPrice(ctx, item, country, products)
		if err != nil {
			return decimal.Decimal{}, decimal.Decimal{}, err
		}
		subtotal = subtotal.Add(price)
	}
	return subtotal, subtotal.Mul(taxRate), nil
}

func itemPrice(ctx context.Context, item CartItem, country string, products catalog.Lookup) (decimal.Decimal, error) {
	product, err := products.Product(ctx, country, item.BusinessID, item.ProductID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if product.ProductID != item.ProductID || product.BusinessID != item.BusinessID {
		return decimal.Decimal{}, status.Errorf(codes.DataLoss,
			"product lookup for ID: %s returned record for ID: %s", item.ProductID, product.ProductID)
	}
	if !product.Price.Valid {
		return decimal.Decimal{}, status.Errorf(codes.FailedPrecondition, "product ID: %s has no price", item.ProductID)
	}

	price := product.Price.Decimal
	for _, typeName := range sortedTypeNames(item.ProductOptions) {
		optionType := product.OptionType(typeName)
		if optionType == nil {
			return decimal.Decimal{}, status.Errorf(codes.InvalidArgument,
				"could not find option type: %s, on product ID: %s", typeName, item.ProductID)
		}
		option := optionType.Option(item.ProductOptions[typeName].OptionName)
		if option == nil {
			return decimal.Decimal{}, status.Errorf(codes.InvalidArgument,
				"could not find option: %s, on product ID: %s", item.ProductOptions[typeName].OptionName, item.ProductID)
		}
		if option.PriceChange.Valid {
			price = price.Add(option.PriceChange.Decimal)
		}
	}
	// Quantity is recorded on the item but does not factor into the price.
	return price, nil
}

func sortedTypeNames(selections OptionSelections) []string {
	names := make([]string, 0, len(selections))
	for name := range selections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
