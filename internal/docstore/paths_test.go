package docstore

import "testing"

func TestPaths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		got  string
		want string
	}{
		{UserPath("u1"), "userData/u1"},
		{UserAuthPath("u1"), "userAuth/u1"},
		{UserOrderPath("u1", "ORD123"), "userData/u1/orders/ORD123"},
		{PrivateBusinessPath("canada", "b1"), "privateBusinessData/canada/businesses/b1"},
		{BusinessOrderPath("canada", "b1", "ORD123"), "privateBusinessData/canada/businesses/b1/orders/ORD123"},
		{PublicBusinessPath("canada", "b1"), "publicBusinessData/canada/businesses/b1"},
		{ProductPath("canada", "b1", "p1"), "publicBusinessData/canada/businesses/b1/products/p1"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("path=%q, expected %q", c.got, c.want)
		}
	}
}
