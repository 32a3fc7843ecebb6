// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"math"
	"strconv"
	"strings"
)

// MaxQuantity is the largest number of votes a single order may carry.
const MaxQuantity = math.MaxInt32

// VotePackages are the quantities offered as one-tap shortcuts.
// They are plain inputs to PriceOrder.
var VotePackages = []int{1, 5, 10, 50}

// VoteOrder is a validated, priced request to cast Quantity votes for one
// nominee. It is advisory: the payment side re-derives the charge.
type VoteOrder struct {
	AwardID    string
	CategoryID string
	NomineeID  string
	Quantity   int
	UnitPrice  Amount
	Total      Amount
}

// PriceOrder validates the nominee and quantity and prices the order.
// Validation always finishes before any arithmetic, so a rejected order
// never carries a total.
func PriceOrder(category Category, nomineeID string, quantity int) (VoteOrder, error) {
	if quantity < 1 {
		return VoteOrder{}, ErrInvalidQuantity
	}
	if _, ok := category.Nominee(nomineeID); !ok {
		return VoteOrder{}, ErrNomineeNotInCategory
	}

	unit := category.UnitPrice()
	if int64(quantity) > math.MaxInt64/int64(unit) {
		return VoteOrder{}, ErrInvalidQuantity
	}

	return VoteOrder{
		AwardID:    category.AwardID,
		CategoryID: category.ID,
		NomineeID:  nomineeID,
		Quantity:   quantity,
		UnitPrice:  unit,
		Total:      Amount(int64(quantity) * int64(unit)),
	}, nil
}

// ParseQuantity turns raw user input into a vote quantity.
// Whole numbers written as "10" or "10.0" are accepted; anything else,
// including "2.5", "", values below one and values above MaxQuantity, is
// InvalidQuantity.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > MaxQuantity {
			return 0, ErrInvalidQuantity
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 1 || f > MaxQuantity {
		return 0, ErrInvalidQuantity
	}
	return int(f), nil
}
