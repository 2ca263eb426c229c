package models

type Position string

const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	K   Position = "K"
	DEF Position = "DEF"
)

type PlayerStats struct {
	PassingYards   int `json:"passingYards,omitempty"`
	PassingTDs     int `json:"passingTDs,omitempty"`
	Interceptions  int `json:"interceptions,omitempty"`
	RushingYards   int `json:"rushingYards,omitempty"`
	RushingTDs     int `json:"rushingTDs,omitempty"`
	Receptions     int `json:"receptions,omitempty"`
	ReceivingYards int `json:"receivingYards,omitempty"`
	ReceivingTDs   int `json:"receivingTDs,omitempty"`
	Targets        int `json:"targets,omitempty"`
}

type Player struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Position        Position    `json:"position"`
	Team            string      `json:"team"`
	FantasyPoints   float64     `json:"fantasyPoints"`
	ProjectedPoints float64     `json:"projectedPoints"`
	Stats           PlayerStats `json:"stats"`
}

type FantasyTeam struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Owner       string   `json:"owner"`
	Roster      []Player `json:"roster"`
	Record      Record   `json:"record"`
	TotalPoints float64  `json:"totalPoints"`
	SkillRating float64  `json:"skillRating"`
}

// WithRoster returns a copy of the team holding the given roster. The receiver
// is left untouched.
func (t FantasyTeam) WithRoster(roster []Player) FantasyTeam {
	t.Roster = append([]Player(nil), roster...)
	return t
}

// HasPlayer reports whether a player with the given id is on the roster.
func (t FantasyTeam) HasPlayer(id string) bool {
	for _, p := range t.Roster {
		if p.ID == id {
			return true
		}
	}
	return false
}

type TeamRating struct {
	Overall    float64 `json:"overall"`
	QBStrength float64 `json:"qbStrength"`
	RBStrength float64 `json:"rbStrength"`
	WRStrength float64 `json:"wrStrength"`
	TEStrength float64 `json:"teStrength"`
	Depth      float64 `json:"depth"`
	Upside     float64 `json:"upside"`
}

// Sub returns the field-by-field difference r - other.
func (r TeamRating) Sub(other TeamRating) TeamRating {
	return TeamRating{
		Overall:    r.Overall - other.Overall,
		QBStrength: r.QBStrength - other.QBStrength,
		RBStrength: r.RBStrength - other.RBStrength,
		WRStrength: r.WRStrength - other.WRStrength,
		TEStrength: r.TEStrength - other.TEStrength,
		Depth:      r.Depth - other.Depth,
		Upside:     r.Upside - other.Upside,
	}
}

type TradeWinner string

const (
	WinnerTeam1 TradeWinner = "team1"
	WinnerTeam2 TradeWinner = "team2"
	WinnerFair  TradeWinner = "fair"
)

type TradeProposal struct {
	Team1      string   `json:"team1"`
	Team2      string   `json:"team2"`
	Team1Gives []Player `json:"team1Gives"`
	Team2Gives []Player `json:"team2Gives"`
}

type TradeAnalysis struct {
	Team1Value     float64     `json:"team1Value"`
	Team2Value     float64     `json:"team2Value"`
	Winner         TradeWinner `json:"winner"`
	Differential   float64     `json:"differential"`
	Recommendation string      `json:"recommendation"`
	ImpactOnTeam1  TeamRating  `json:"impactOnTeam1"`
	ImpactOnTeam2  TeamRating  `json:"impactOnTeam2"`
}
