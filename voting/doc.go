// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting holds the award voting rules shared by every handler.

It has no I/O and no global state. Everything here is a pure function of
its arguments, so it is safe to call from any number of goroutines.

# Voting Phase

An award moves through four phases, recomputed on every read:

	upcoming → voting_open → voting_closed → completed

The phase is derived from the voting window and the ceremony date:

	phase := voting.ResolvePhase(award, time.Now())

ResolvePhase folds in the ceremony date. A Resolver with
CeremonyOverride set to false looks at the voting window only:

	phase := voting.Resolver{}.Resolve(award, now)

The clock is always passed in. Nothing in this package calls time.Now.

# Vote Orders

PriceOrder validates a nominee selection and quantity and returns a
priced VoteOrder:

	order, err := voting.PriceOrder(category, nomineeID, 10)

Validation failures are *ValidationError values with a Kind of
InvalidQuantity or NomineeNotInCategory. Quantities below one are
rejected, never clamped.

# Money

Amounts are integer minor units (cents). A category without a positive
cost per vote is priced at one currency unit:

	category.UnitPrice() // 100 when CostPerVote <= 0
*/
package voting
