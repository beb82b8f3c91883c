package league

import (
	"sort"
	"strings"
)

// Points awarded per game outcome.
const (
	pointsWin  = 3
	pointsDraw = 1
)

// Compute aggregates game results into the final standings. Appearing in a
// game is enough to enter the table, so a team that only ever loses is still
// listed with 0 points. Tied teams share a rank and are ordered by name
// ignoring case; the team following a tie group of size N resumes N ranks
// later.
func Compute(games []Game) []Standing {
	points := make(map[string]int)
	for _, game := range games {
		for _, team := range []TeamScore{game.Team1, game.Team2} {
			if _, ok := points[team.Name]; !ok {
				points[team.Name] = 0
			}
		}
		switch {
		case game.Team1.Score > game.Team2.Score:
			points[game.Team1.Name] += pointsWin
		case game.Team1.Score < game.Team2.Score:
			points[game.Team2.Name] += pointsWin
		default:
			points[game.Team1.Name] += pointsDraw
			points[game.Team2.Name] += pointsDraw
		}
	}

	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if points[names[i]] != points[names[j]] {
			return points[names[i]] > points[names[j]]
		}
		ni, nj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if ni != nj {
			return ni < nj
		}
		// names differing only in case need a deterministic total order
		return names[i] < names[j]
	})

	standings := make([]Standing, len(names))
	rank := 1
	for i, name := range names {
		if i > 0 && points[name] != points[names[i-1]] {
			rank = i + 1
		}
		standings[i] = Standing{Rank: rank, Team: name, Points: points[name]}
	}
	return standings
}
