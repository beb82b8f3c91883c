package league

// TeamScore pairs a team's name with the goals it scored in one game.
type TeamScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Game is a single parsed result row between two distinct teams.
type Game struct {
	Team1 TeamScore `json:"team1"`
	Team2 TeamScore `json:"team2"`
}

// Standing holds one team's final position in the ranked report. Ranks start
// at 1 and are not necessarily contiguous.
type Standing struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Points int    `json:"points"`
}
