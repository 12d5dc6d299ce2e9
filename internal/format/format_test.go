package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{100000, "$100,000"},
		{1000000, "$1,000,000"},
		{579637.04, "$579,637"},
		{-21028.41, "-$21,028"},
		{999.5, "$1,000"},
		{math.NaN(), "N/A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "%v", tt.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "1.6%", Percent(1.55))
	assert.Equal(t, "-0.3%", Percent(-0.32))
	assert.Equal(t, "undefined", Percent(math.NaN()))
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"317", "317"},
		{"317555", "317-555"},
		{"3175550142", "317-555-0142"},
		{"(317) 555-0142", "317-555-0142"},
		{"+1 317 555 0142", "317-555-0142"},
		{"31755501429999", "317-555-0142"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhoneNumber(tt.in), tt.in)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "13175550142", Digits("+1 (317) 555-0142"))
}
