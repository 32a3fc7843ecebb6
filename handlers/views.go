// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/award-vote/cliparse"
	"github.com/danielhkuo/award-vote/models"
	"github.com/danielhkuo/award-vote/voting"
)

func resolverFor(cfg cliparse.Config) voting.Resolver {
	return voting.Resolver{CeremonyOverride: cfg.CeremonyOverride}
}

// resultsVisible reports whether per-nominee vote counts may be shown
func resultsVisible(a voting.Award, phase voting.Phase) bool {
	return a.ShowResults || phase == voting.PhaseCompleted
}

func awardCard(a voting.Award, phase voting.Phase, now time.Time) models.AwardCard {
	return models.AwardCard{
		ID:                a.ID,
		Title:             a.Title,
		Slug:              a.Slug,
		Phase:             phase,
		PhaseDetail:       phaseDetail(a, phase, now),
		CeremonyDate:      voting.FormatTime(a.CeremonyDate),
		VotingStart:       voting.FormatTime(a.VotingStart),
		VotingEnd:         voting.FormatTime(a.VotingEnd),
		ShowResults:       a.ShowResults,
		TotalVotes:        a.TotalVotes,
		TotalVotesDisplay: humanize.Comma(a.TotalVotes),
	}
}

// phaseDetail is the human line under the phase badge,
// e.g. "Voting closes 3 days from now".
func phaseDetail(a voting.Award, phase voting.Phase, now time.Time) string {
	switch phase {
	case voting.PhaseUpcoming:
		if a.VotingStart != nil && now.Before(*a.VotingStart) {
			return "Voting opens " + relative(*a.VotingStart, now)
		}
		return "Voting dates to be announced"
	case voting.PhaseVotingOpen:
		if a.VotingEnd != nil {
			return "Voting closes " + relative(*a.VotingEnd, now)
		}
		return "Voting is open"
	case voting.PhaseVotingClosed:
		if a.VotingEnd != nil {
			return "Voting closed " + relative(*a.VotingEnd, now)
		}
		return "Voting has closed"
	default:
		if a.CeremonyDate != nil && !now.Before(*a.CeremonyDate) {
			return "Ceremony held " + relative(*a.CeremonyDate, now)
		}
		return "Results are final"
	}
}

func relative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

func categoryView(c voting.Category, currency string, showCounts bool) models.CategoryView {
	nominees := make([]models.NomineeView, 0, len(c.Nominees))
	for _, n := range c.Nominees {
		view := models.NomineeView{
			ID:          n.ID,
			Name:        n.Name,
			NomineeCode: n.NomineeCode,
			ImageURL:    n.ImageURL,
		}
		if showCounts {
			count := n.VoteCount
			view.VoteCount = &count
		}
		nominees = append(nominees, view)
	}

	return models.CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CostPerVote: c.CostPerVote,
		UnitPrice:   c.UnitPrice(),
		Currency:    currency,
		Nominees:    nominees,
	}
}

func awardDetail(a voting.Award, phase voting.Phase, now time.Time, currency string, showCounts bool) models.AwardDetail {
	categories := make([]models.CategoryView, 0, len(a.Categories))
	for _, c := range a.Categories {
		categories = append(categories, categoryView(c, currency, showCounts))
	}
	return models.AwardDetail{
		Award:      awardCard(a, phase, now),
		Categories: categories,
	}
}

func orderResponse(o voting.VoteOrder, currency string) models.VoteOrderResponse {
	return models.VoteOrderResponse{
		AwardID:    o.AwardID,
		CategoryID: o.CategoryID,
		NomineeID:  o.NomineeID,
		Quantity:   o.Quantity,
		UnitPrice:  o.UnitPrice,
		Total:      o.Total,
		Currency:   currency,
	}
}
