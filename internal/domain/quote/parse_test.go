package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"0", "0"},
		{"10", "10"},
		{"1.000", "1000"},
		{"1.000.000", "1000000"},
		{"1.000,5", "1000.5"},
		{"0,19", "0.19"},
		{",5", "0.5"},
		{"$ 1.200", "1200"},
		{"abc", "0"},
		{"12abc34", "1234"},
		{"1,2,3", "0"},
		{"-500", "-500"},
		{"-1.000,25", "-1000.25"},
		{"  19  ", "19"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			want := decimal.RequireFromString(c.want)
			assert.True(t, ParseAmount(c.in).Equal(want),
				"ParseAmount(%q) = %s, want %s", c.in, ParseAmount(c.in), want)
		})
	}
}

func TestParseAmountNeverPanics(t *testing.T) {
	for _, in := range []string{"-", "-.", ".,.,", "--5", "...", "−∞"} {
		assert.NotPanics(t, func() { ParseAmount(in) }, "input %q", in)
	}
}
