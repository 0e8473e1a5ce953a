package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "Valor em milhares", amount: 50000, expected: "50.0 mil"},
		{name: "Milhar quebrado mantém uma casa", amount: 1500, expected: "1.5 mil"},
		{name: "Limite de mil", amount: 1000, expected: "1.0 mil"},
		{name: "Abaixo de mil sai inteiro", amount: 999, expected: "999"},
		{name: "Zero", amount: 0, expected: "0"},
		{name: "Fração abaixo de mil trunca", amount: 850.7, expected: "850"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoney(tt.amount))
		})
	}
}

func TestFormatThresholdLabel(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{name: "Milhar exato sem casa decimal", amount: 50000, expected: "50mil"},
		{name: "Milhar quebrado com uma casa", amount: 37500, expected: "37.5mil"},
		{name: "Um mil", amount: 1000, expected: "1mil"},
		{name: "Abaixo de mil vira fração", amount: 500, expected: "0.5mil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatThresholdLabel(tt.amount))
		})
	}
}
