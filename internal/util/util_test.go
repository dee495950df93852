package util

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{name: "zero", amount: 0, expected: "0"},
		{name: "under a thousand", amount: 950, expected: "950"},
		{name: "exact thousand", amount: 1000, expected: "1 000"},
		{name: "order total", amount: 5000, expected: "5 000"},
		{name: "millions", amount: 12345678, expected: "12 345 678"},
		{name: "negative", amount: -4500, expected: "-4 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatAmount(tt.amount); got != tt.expected {
				t.Fatalf("FormatAmount(%d) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "zero estimate", duration: 0, expected: "0s"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "delivery estimate", duration: 25 * time.Minute, expected: "25m0s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
