package nrlfantasy

const providerName = "nrlfantasy"

type playerResponse struct {
	ID        int                 `json:"id"`
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	SquadID   int                 `json:"squad_id"`
	Cost      int                 `json:"cost"`
	Status    string              `json:"status"`
	Positions []int               `json:"positions"`
	Stats     playerStatsResponse `json:"stats"`
}

// Round keys in the feed are JSON object keys, hence strings.
type playerStatsResponse struct {
	Prices      map[string]int                `json:"prices"`
	Scores      map[string]float64            `json:"scores"`
	RoundStats  map[string]map[string]float64 `json:"round_stats"`
	AvgPoints   float64                       `json:"avg_points"`
	TotalPoints float64                       `json:"total_points"`
	GamesPlayed int                           `json:"games_played"`
}

type squadResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	FullName  string `json:"full_name"`
	ShortName string `json:"short_name"`
}

type roundResponse struct {
	ID     int            `json:"id"`
	Status string         `json:"status"`
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Games  []gameResponse `json:"games"`
}

type gameResponse struct {
	ID          int    `json:"id"`
	HomeSquadID int    `json:"home_squad_id"`
	AwaySquadID int    `json:"away_squad_id"`
	Date        string `json:"date"`
	VenueName   string `json:"venue_name"`
	Status      string `json:"status"`
	HomeScore   int    `json:"home_score"`
	AwayScore   int    `json:"away_score"`
}

type ladderResponse struct {
	SquadID       int `json:"squad_id"`
	Position      int `json:"position"`
	Points        int `json:"points"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Draws         int `json:"draws"`
	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`
}
