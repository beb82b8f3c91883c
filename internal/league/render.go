package league

import (
	"fmt"
	"io"
)

// WriteStandings renders one line per standing in rank order:
//
//	1. Tarantulas, 6 pts
//	2. Lions, 5 pts
//	3. Snakes, 1 pt
//
// The unit is "pt" exactly when the team has a single point.
func WriteStandings(w io.Writer, standings []Standing) error {
	for _, standing := range standings {
		unit := "pts"
		if standing.Points == 1 {
			unit = "pt"
		}
		_, err := fmt.Fprintf(
			w, "%d. %s, %d %s\n",
			standing.Rank,
			standing.Team,
			standing.Points,
			unit,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
