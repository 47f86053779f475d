package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		multiplier  float64
		expected    float64
	}{
		{
			name:        "denominador zero retorna 0",
			numerator:   150,
			denominator: 0,
			multiplier:  1000,
			expected:    0,
		},
		{
			name:        "denominador negativo retorna 0",
			numerator:   10,
			denominator: -5,
			multiplier:  1,
			expected:    0,
		},
		{
			name:        "cpm com multiplicador 1000",
			numerator:   150,
			denominator: 60000,
			multiplier:  1000,
			expected:    2.5,
		},
		{
			name:        "ctr com multiplicador 100",
			numerator:   30,
			denominator: 1500,
			multiplier:  100,
			expected:    2.0,
		},
		{
			name:        "arredondamento em 4 casas decimais",
			numerator:   1,
			denominator: 3,
			multiplier:  1,
			expected:    0.3333,
		},
		{
			name:        "numerador zero retorna 0",
			numerator:   0,
			denominator: 100,
			multiplier:  1,
			expected:    0,
		},
		{
			name:        "numerador NaN é absorvido como 0",
			numerator:   math.NaN(),
			denominator: 10,
			multiplier:  1,
			expected:    0,
		},
		{
			name:        "denominador infinito é absorvido como 0",
			numerator:   10,
			denominator: math.Inf(1),
			multiplier:  1,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rate(tt.numerator, tt.denominator, tt.multiplier))
		})
	}
}

func TestRateNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		Rate(math.NaN(), math.NaN(), math.NaN())
		Rate(math.Inf(-1), math.Inf(1), 0)
		Rate(1e308, 1e-308, 1e308)
	})
}

func TestFloat64OrZero(t *testing.T) {
	assert.Equal(t, 0.0, Float64OrZero(nil))

	v := 3.14
	assert.Equal(t, 3.14, Float64OrZero(&v))
}

func TestInt64OrZero(t *testing.T) {
	assert.Equal(t, int64(0), Int64OrZero(nil))

	v := int64(42)
	assert.Equal(t, int64(42), Int64OrZero(&v))
}
