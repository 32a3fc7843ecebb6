// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected Amount
		valid    bool
	}{
		{"2.50", 250, true},
		{"2.5", 250, true},
		{"1", 100, true},
		{".75", 75, true},
		{"0", 0, true},
		{"", 0, true},
		{"1999.99", 199999, true},
		{"2.555", 0, false},
		{"2.", 0, false},
		{"-1", 0, false},
		{"1,50", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if !tt.valid {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("Expected ErrInvalidAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAmountString(t *testing.T) {
	tests := map[Amount]string{
		0:    "0.00",
		5:    "0.05",
		750:  "7.50",
		1500: "15.00",
		-250: "-2.50",
	}
	for amount, expected := range tests {
		if amount.String() != expected {
			t.Errorf("Expected %s, got %s", expected, amount.String())
		}
	}
}

func TestAmountJSON(t *testing.T) {
	var payload struct {
		Price Amount `json:"price"`
	}

	inputs := map[string]Amount{
		`{"price":"2.50"}`: 250,
		`{"price":2.5}`:    250,
		`{"price":0.1}`:    10,
		`{"price":null}`:   0,
		`{"price":1e1}`:    1000,
	}
	for input, expected := range inputs {
		payload.Price = -1
		if err := json.Unmarshal([]byte(input), &payload); err != nil {
			t.Fatalf("%s: %v", input, err)
		}
		if payload.Price != expected {
			t.Errorf("%s: expected %d, got %d", input, expected, payload.Price)
		}
	}

	if err := json.Unmarshal([]byte(`{"price":-1}`), &payload); err == nil {
		t.Error("Expected negative price to fail")
	}

	payload.Price = 750
	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"price":"7.50"}` {
		t.Errorf("Unexpected JSON: %s", out)
	}
}

func TestAmountFromFloatBounds(t *testing.T) {
	tests := []struct {
		name  string
		f     float64
		valid bool
	}{
		{"zero", 0, true},
		{"large but representable", 1e15, true},
		{"exactly 2^63 cents", 9.223372036854776e16, false},
		{"above range", 1e20, false},
		{"negative", -0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AmountFromFloat(tt.f)
			if tt.valid {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if a < 0 {
					t.Errorf("Expected non-negative amount, got %d", a)
				}
				return
			}
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("Expected ErrInvalidAmount, got %v (amount %d)", err, a)
			}
		})
	}

	var payload struct {
		Price Amount `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{"price":9.223372036854776e16}`), &payload); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount from JSON, got %v (price %d)", err, payload.Price)
	}
}
