package order

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const orderIDLen = 12

// GenerateOrderID produces a 12-character uppercase base-36 order ID from a
// random 3-digit salt and a fingerprint of the current instant. IDs are
// cheap and human-facing; uniqueness is only probabilistic, so Create
// re-generates on collision.
func GenerateOrderID() string {
	return orderIDAt(time.Now())
}

func orderIDAt(now time.Time) string {
	// Millisecond timestamp digits with the leading 4 (the year) dropped.
	stamp := now.UTC().Format("20060102150405.000")
	digits := strings.Replace(stamp, ".", "", 1)[4:]
	salt := strconv.Itoa(rand.Intn(900) + 100)
	num, _ := strconv.ParseInt(salt+digits, 10, 64)
	id := strings.ToUpper(strconv.FormatInt(num, 36))
	for len(id) < orderIDLen {
		pad := strings.ToUpper(strconv.FormatInt(rand.Int63n(36), 36))
		id = pad + id
	}
	return id
}
