package controller

import (
	"fmt"
	"hash/fnv"
	"math"
	"slices"

	"github.com/cole-dav/sleeper-draft-tool/model"
)

// calculateTeamNeeds derives a 0-100 need score per tracked position
// for every roster. Higher score = weaker position relative to the
// league. Scores are floats internally and rounded only at the end.
//
// Two strategies exist and are chosen per roster:
//   - realStrengthStrategy when the player directory is loaded and the
//     roster has a player list: need is derived from summed market
//     values versus the league average.
//   - placeholderHashStrategy otherwise: a deterministic stand-in
//     derived from the roster's identity and record, stable across
//     reads so the UI doesn't jitter while real data is missing.
func calculateTeamNeeds(rosters []model.Roster, players map[string]model.Player, values map[string]float64) map[int][]model.TeamNeed {
	real := realStrengthStrategy{players: players, values: values}
	placeholder := placeholderHashStrategy{}

	// League averages come from every roster's strength, including the
	// ones that end up placeholder-scored (they contribute zero).
	strengths := make(map[int]map[model.Position]float64, len(rosters))
	averages := make(map[model.Position]float64, len(model.TrackedPositions))
	for i := range rosters {
		s := real.strengths(&rosters[i])
		strengths[rosters[i].RosterID] = s
		for pos, v := range s {
			averages[pos] += v
		}
	}
	divisor := float64(len(rosters))
	if divisor < 1 {
		divisor = 1
	}
	for pos := range averages {
		averages[pos] /= divisor
	}

	result := make(map[int][]model.TeamNeed, len(rosters))
	for i := range rosters {
		r := &rosters[i]

		var needs []model.TeamNeed
		if len(players) == 0 || r.Players == nil {
			needs = placeholder.needs(r)
		} else {
			needs = real.needs(strengths[r.RosterID], averages)
		}

		// Highest need first; ties keep QB/RB/WR/TE insertion order.
		slices.SortStableFunc(needs, func(a, b model.TeamNeed) int {
			return b.Score - a.Score
		})
		result[r.RosterID] = needs
	}

	return result
}

// realStrengthStrategy scores positional need from actual roster
// composition and market values.
type realStrengthStrategy struct {
	players map[string]model.Player
	values  map[string]float64
}

// strengths sums the market value of the roster's players per tracked
// position. Players missing from the directory or outside the tracked
// set are ignored; with no value table every player counts as 1, which
// degrades the score to a depth count.
func (s realStrengthStrategy) strengths(r *model.Roster) map[model.Position]float64 {
	result := make(map[model.Position]float64, len(model.TrackedPositions))
	for _, pos := range model.TrackedPositions {
		result[pos] = 0
	}

	for _, id := range r.Players {
		p, found := s.players[id]
		if !found {
			continue
		}
		if _, tracked := result[p.Position]; !tracked {
			continue
		}

		// No value table, or a player the table doesn't know, counts
		// as a uniform 1.
		value := 1.0
		if v, found := s.values[id]; found {
			value = v
		}
		result[p.Position] += value
	}

	return result
}

func (s realStrengthStrategy) needs(strengths, averages map[model.Position]float64) []model.TeamNeed {
	needs := make([]model.TeamNeed, 0, len(model.TrackedPositions))
	for _, pos := range model.TrackedPositions {
		needs = append(needs, model.TeamNeed{
			Position: pos,
			Score:    int(math.Round(needScore(strengths[pos], averages[pos]))),
		})
	}
	return needs
}

// needScore maps strength S against league average A onto [0,100]:
// average strength scores 50, zero strength 100, 2x average or more 0.
func needScore(strength, average float64) float64 {
	if average < 1 {
		average = 1
	}
	score := 50 + (1-strength/average)*50
	return math.Max(0, math.Min(100, score))
}

// placeholderHashStrategy is the explicit stand-in used when roster
// composition is unknown. The score is a stable hash of the roster's
// identity and record, not a strength computation.
type placeholderHashStrategy struct{}

func (placeholderHashStrategy) needs(r *model.Roster) []model.TeamNeed {
	record := model.ResolveRecord(r.Settings)

	needs := make([]model.TeamNeed, 0, len(model.TrackedPositions))
	for _, pos := range model.TrackedPositions {
		h := fnv.New64a()
		fmt.Fprintf(h, "%d|%s|%s", r.RosterID, record.String(), pos)
		needs = append(needs, model.TeamNeed{
			Position: pos,
			Score:    int(h.Sum64() % 101),
		})
	}
	return needs
}
