// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "time"

// Phase is the lifecycle state of an award's voting window at an instant.
type Phase string

const (
	PhaseUpcoming     Phase = "upcoming"
	PhaseVotingOpen   Phase = "voting_open"
	PhaseVotingClosed Phase = "voting_closed"
	PhaseCompleted    Phase = "completed"
)

func (p Phase) String() string {
	return string(p)
}

// Valid reports whether p is one of the four known phases
func (p Phase) Valid() bool {
	switch p {
	case PhaseUpcoming, PhaseVotingOpen, PhaseVotingClosed, PhaseCompleted:
		return true
	}
	return false
}

// AcceptsVotes reports whether orders may be placed in this phase
func (p Phase) AcceptsVotes() bool {
	return p == PhaseVotingOpen
}

// Resolver derives a Phase from an award's timestamps.
type Resolver struct {
	// CeremonyOverride reports completed once the ceremony date has passed,
	// whatever the voting window says.
	CeremonyOverride bool
}

// DefaultResolver folds the ceremony date into the result.
var DefaultResolver = Resolver{CeremonyOverride: true}

// ResolvePhase resolves with DefaultResolver.
func ResolvePhase(award Award, now time.Time) Phase {
	return DefaultResolver.Resolve(award, now)
}

// Resolve returns exactly one phase for the award at now.
//
// The explicit Status is only consulted when the award carries no
// timestamps at all. Once any timestamp is present, it is ignored.
func (r Resolver) Resolve(award Award, now time.Time) Phase {
	if r.CeremonyOverride && award.CeremonyDate != nil && now.After(*award.CeremonyDate) {
		return PhaseCompleted
	}

	if award.VotingStart == nil && award.VotingEnd == nil && award.CeremonyDate == nil {
		if status := Phase(award.Status); status.Valid() {
			return status
		}
		return PhaseUpcoming
	}

	if award.VotingStart == nil || award.VotingEnd == nil {
		return PhaseUpcoming
	}

	switch {
	case now.Before(*award.VotingStart):
		return PhaseUpcoming
	case now.After(*award.VotingEnd):
		return PhaseVotingClosed
	default:
		return PhaseVotingOpen
	}
}
