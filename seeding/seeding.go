// Package seeding orders tournament entrants by a composite of self-declared
// skill and Elo rating, weighted by how many games the player has on record.
package seeding

import (
	"sort"

	"github.com/cueclub/tournament-system/models"
)

const (
	// eloFloor / eloRange map ratings onto an approximate 0-1 scale.
	// 1200 is the default rating, so the scale is centered around it.
	eloFloor = 800
	eloRange = 800.0

	// Each recorded game shifts 9% of the weight from self-rating to Elo,
	// capping at 10 games (10% self, 90% Elo).
	weightPerGame = 0.09
	minSelfWeight = 0.1
	maxEloWeight  = 0.9
)

// Score returns the composite seeding score for one entrant. Higher is
// better. New players are ranked almost entirely by their self-rating;
// experienced players almost entirely by Elo.
func Score(selfRating, eloRating, gamesPlayed int) float64 {
	selfNorm := float64(selfRating) / 10.0

	eloNorm := (float64(eloRating) - eloFloor) / eloRange
	if eloNorm < 0 {
		eloNorm = 0
	}
	if eloNorm > 1 {
		eloNorm = 1
	}

	var selfWeight, eloWeight float64
	switch {
	case gamesPlayed == 0:
		selfWeight, eloWeight = 1.0, 0.0
	case gamesPlayed < 10:
		selfWeight = 1.0 - float64(gamesPlayed)*weightPerGame
		eloWeight = float64(gamesPlayed) * weightPerGame
	default:
		selfWeight, eloWeight = minSelfWeight, maxEloWeight
	}

	return selfNorm*selfWeight + eloNorm*eloWeight
}

// Seed sorts participants by descending composite score, breaking ties by
// signup order (ascending participant ID), and assigns dense seeds 1..N.
// Each participant must have its Player loaded. The input slice is not
// modified; the returned slice is the seeded ordering.
func Seed(participants []*models.Participant) []*models.Participant {
	seeded := make([]*models.Participant, len(participants))
	copy(seeded, participants)

	sort.SliceStable(seeded, func(i, j int) bool {
		si := Score(seeded[i].SelfRating, seeded[i].Player.EloRating, seeded[i].Player.GamesPlayed)
		sj := Score(seeded[j].SelfRating, seeded[j].Player.EloRating, seeded[j].Player.GamesPlayed)
		if si != sj {
			return si > sj
		}
		return seeded[i].ID < seeded[j].ID
	})

	for i, p := range seeded {
		seed := i + 1
		p.Seed = &seed
	}
	return seeded
}
