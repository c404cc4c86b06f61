package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in       string
		price    float64
		currency string
	}{
		{"", 0, ""},
		{"¥2899", 2899, "¥"},
		{"￥699.00", 699, "￥"},
		{"  ¥ 349 ", 349, "¥"},
		{"$59.99", 59.99, "$"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			price, currency, err := ParsePrice(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.price, price)
			assert.Equal(t, tc.currency, currency)
		})
	}
}

func TestParsePriceRejectsNonNumeric(t *testing.T) {
	_, _, err := ParsePrice("sold out")
	assert.Error(t, err)
}
