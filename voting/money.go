// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a currency amount in minor units (cents).
type Amount int64

// DefaultUnitPrice is charged per vote when a category has no price.
const DefaultUnitPrice Amount = 100

const minorPerUnit = 100

// String formats the amount with exactly two decimals, e.g. "7.50"
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/minorPerUnit, v%minorPerUnit)
}

// ParseAmount parses a non-negative decimal with at most two fraction digits.
// An empty string is zero.
func ParseAmount(raw string) (Amount, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	whole, frac, hasFrac := strings.Cut(raw, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (frac == "" || len(frac) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > math.MaxInt64/minorPerUnit-1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	var cents int64
	if frac != "" {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}
	return Amount(units*minorPerUnit + cents), nil
}

// AmountFromFloat rounds a JSON-style number to the nearest cent.
func AmountFromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f*minorPerUnit >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, f)
	}
	return Amount(math.Round(f * minorPerUnit)), nil
}

// MarshalJSON writes the amount as a decimal string so clients never see
// binary floats.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts "2.50", 2.5 or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := ParseAmount(str)
		if err != nil {
			return err
		}
		*a = v
		return nil
	}

	// Bare numbers go through the decimal parser when they can, so 2.50
	// never picks up float error.
	if v, err := ParseAmount(s); err == nil {
		*a = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	v, err := AmountFromFloat(f)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
