package docstore

import "fmt"

// Every storage path used by the services is built here, keyed by entity,
// so the country and /businesses segments cannot drift between call sites.

func UserPath(userID string) string {
	return fmt.Sprintf("userData/%s", userID)
}

func UserAuthPath(userID string) string {
	return fmt.Sprintf("userAuth/%s", userID)
}

func UserOrderPath(userID, orderID string) string {
	return fmt.Sprintf("userData/%s/orders/%s", userID, orderID)
}

func PrivateBusinessPath(country, businessID string) string {
	return fmt.Sprintf("privateBusinessData/%s/businesses/%s", country, businessID)
}

func BusinessOrderPath(country, businessID, orderID string) string {
	return fmt.Sprintf("privateBusinessData/%s/businesses/%s/orders/%s", country, businessID, orderID)
}

func PublicBusinessPath(country, businessID string) string {
	return fmt.Sprintf("publicBusinessData/%s/businesses/%s", country, businessID)
}

func ProductPath(country, businessID, productID string) string {
	return fmt.Sprintf("publicBusinessData/%s/businesses/%s/products/%s", country, businessID, productID)
}
