package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCellText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nulo", in: nil, want: "nan"},
		{name: "texto", in: "AUTOMOTIVE", want: "AUTOMOTIVE"},
		{name: "inteiro", in: int64(54), want: "54"},
		{name: "float inteiro", in: 1.0, want: "1.0"},
		{name: "float zero", in: 0.0, want: "0.0"},
		{name: "float negativo", in: -3.0, want: "-3.0"},
		{name: "float decimal", in: 93.14, want: "93.14"},
		{name: "float pequeno", in: 0.00001, want: "1e-05"},
		{name: "float grande", in: 1e16, want: "1e+16"},
		{name: "NaN", in: math.NaN(), want: "nan"},
		{name: "infinito", in: math.Inf(-1), want: "-inf"},
		{name: "booleano", in: true, want: "True"},
		{name: "data", in: time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC), want: "2013-01-01"},
		{name: "data e hora", in: time.Date(2013, 1, 1, 13, 5, 0, 0, time.UTC), want: "2013-01-01 13:05:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellText(tt.in))
		})
	}
}
