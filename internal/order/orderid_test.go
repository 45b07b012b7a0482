package order

import (
	"regexp"
	"testing"
	"time"
)

var orderIDPattern = regexp.MustCompile(`^[0-9A-Z]{12}$`)

func TestGenerateOrderID_Format(t *testing.T) {
	t.Parallel()

	for i := 0; i < 10000; i++ {
		id := GenerateOrderID()
		if !orderIDPattern.MatchString(id) {
			t.Fatalf("id=%q does not match %s", id, orderIDPattern)
		}
	}
}

func TestOrderIDAt_CoversClockEdges(t *testing.T) {
	t.Parallel()

	instants := []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 23, 59, 59, 999e6, time.UTC),
		time.Date(2099, 12, 31, 12, 30, 45, 1e6, time.UTC),
	}
	for _, instant := range instants {
		id := orderIDAt(instant)
		if !orderIDPattern.MatchString(id) {
			t.Errorf("instant=%s id=%q does not match %s", instant, id, orderIDPattern)
		}
	}
}
