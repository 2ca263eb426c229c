package models

// StandingsResponse is the ESPN site API standings payload. Each child is a
// conference whose entries list every team with its season stats.
type StandingsResponse struct {
	Children []StandingsGroup `json:"children"`
}

type StandingsGroup struct {
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Standings    Standings `json:"standings"`
}

type Standings struct {
	Entries []StandingsEntry `json:"entries"`
}

type StandingsEntry struct {
	Team  ESPNTeam    `json:"team"`
	Stats []StatValue `json:"stats"`
}

type ESPNTeam struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type StatValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Stat returns the named stat value, or 0 when absent.
func (e StandingsEntry) Stat(name string) float64 {
	for _, s := range e.Stats {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}

type ScoreboardResponse struct {
	Week   *ScoreboardWeek `json:"week"`
	Events []Event         `json:"events"`
}

type ScoreboardWeek struct {
	Number int `json:"number"`
}

type Event struct {
	ID           string        `json:"id"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	Competitors []Competitor      `json:"competitors"`
	Status      CompetitionStatus `json:"status"`
}

type Competitor struct {
	HomeAway string   `json:"homeAway"`
	Score    string   `json:"score"`
	Team     ESPNTeam `json:"team"`
}

type CompetitionStatus struct {
	Type struct {
		Completed bool `json:"completed"`
	} `json:"type"`
}

// PlayerCardResponse is the fantasy API kona_player_info payload.
type PlayerCardResponse struct {
	Players []PlayerPoolEntry `json:"players"`
}

type PlayerPoolEntry struct {
	ID       int        `json:"id"`
	OnTeamID int        `json:"onTeamId"`
	Player   ESPNPlayer `json:"player"`
}

type ESPNPlayer struct {
	ID                  int       `json:"id"`
	FullName            string    `json:"fullName"`
	DefaultPositionID   int       `json:"defaultPositionId"`
	ProTeamID           int       `json:"proTeamId"`
	ProTeamAbbreviation string    `json:"proTeamAbbreviation"`
	Ownership           Ownership `json:"ownership"`
	Stats               []Stat    `json:"stats"`
	InjuryStatus        string    `json:"injuryStatus"`
}

type Ownership struct {
	PercentOwned float64 `json:"percentOwned"`
}

type Stat struct {
	StatSourceID    int                `json:"statSourceId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	AppliedStats    map[string]float64 `json:"appliedStats"`
}
