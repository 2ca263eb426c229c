package models

import (
	"strings"
	"time"
)

type Conference string

const (
	AFC Conference = "AFC"
	NFC Conference = "NFC"
)

type Division string

const (
	AFCEast  Division = "AFC East"
	AFCNorth Division = "AFC North"
	AFCSouth Division = "AFC South"
	AFCWest  Division = "AFC West"
	NFCEast  Division = "NFC East"
	NFCNorth Division = "NFC North"
	NFCSouth Division = "NFC South"
	NFCWest  Division = "NFC West"
)

// Divisions lists the eight divisions in display order.
var Divisions = []Division{
	AFCEast, AFCNorth, AFCSouth, AFCWest,
	NFCEast, NFCNorth, NFCSouth, NFCWest,
}

func (d Division) Conference() Conference {
	conf, _, _ := strings.Cut(string(d), " ")
	return Conference(conf)
}

var divisionByAbbreviation = map[string]Division{
	"BUF": AFCEast, "MIA": AFCEast, "NYJ": AFCEast, "NE": AFCEast,
	"BAL": AFCNorth, "PIT": AFCNorth, "CLE": AFCNorth, "CIN": AFCNorth,
	"HOU": AFCSouth, "JAX": AFCSouth, "IND": AFCSouth, "TEN": AFCSouth,
	"KC": AFCWest, "LAC": AFCWest, "DEN": AFCWest, "LV": AFCWest,
	"PHI": NFCEast, "DAL": NFCEast, "WAS": NFCEast, "WSH": NFCEast, "NYG": NFCEast,
	"DET": NFCNorth, "MIN": NFCNorth, "GB": NFCNorth, "CHI": NFCNorth,
	"TB": NFCSouth, "ATL": NFCSouth, "NO": NFCSouth, "CAR": NFCSouth,
	"SF": NFCWest, "SEA": NFCWest, "LAR": NFCWest, "ARI": NFCWest,
}

// DivisionFor returns the fixed division of a team abbreviation.
func DivisionFor(abbr string) (Division, bool) {
	d, ok := divisionByAbbreviation[strings.ToUpper(abbr)]
	return d, ok
}

// Record holds wins, losses and ties. Projected records carry Monte Carlo
// averages, so the counts are fractional.
type Record struct {
	Wins   float64 `json:"wins"`
	Losses float64 `json:"losses"`
	Ties   float64 `json:"ties"`
}

func (r Record) Games() float64 {
	return r.Wins + r.Losses + r.Ties
}

// WinPct counts ties as half a win. A record with no games returns 0.
func (r Record) WinPct() float64 {
	games := r.Games()
	if games == 0 {
		return 0
	}
	return (r.Wins + r.Ties*0.5) / games
}

type NFLTeam struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Abbreviation  string   `json:"abbreviation"`
	Division      Division `json:"division"`
	Record        Record   `json:"record"`
	PointsFor     float64  `json:"pointsFor"`
	PointsAgainst float64  `json:"pointsAgainst"`
	Strength      float64  `json:"strength"`
}

func (t NFLTeam) PointDiff() float64 {
	return t.PointsFor - t.PointsAgainst
}

func (t NFLTeam) WithRecord(r Record) NFLTeam {
	t.Record = r
	return t
}

type WinProbability struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

type Game struct {
	ID                 string          `json:"id"`
	Week               int             `json:"week"`
	HomeTeam           string          `json:"homeTeam"`
	AwayTeam           string          `json:"awayTeam"`
	HomeScore          *int            `json:"homeScore,omitempty"`
	AwayScore          *int            `json:"awayScore,omitempty"`
	Played             bool            `json:"played"`
	PredictedHomeScore *int            `json:"predictedHomeScore,omitempty"`
	PredictedAwayScore *int            `json:"predictedAwayScore,omitempty"`
	WinProbability     *WinProbability `json:"winProbability,omitempty"`
}

// ProjectedRecords maps a team abbreviation to its projected season record.
type ProjectedRecords map[string]Record

type DivisionStandings map[Division][]NFLTeam

type PlayoffRound string

const (
	RoundWildCard     PlayoffRound = "Wild Card"
	RoundDivisional   PlayoffRound = "Divisional"
	RoundChampionship PlayoffRound = "Championship"
	RoundSuperBowl    PlayoffRound = "Super Bowl"
)

type PlayoffGame struct {
	ID              string       `json:"id"`
	Round           PlayoffRound `json:"round"`
	HomeTeam        string       `json:"homeTeam"`
	AwayTeam        string       `json:"awayTeam"`
	PredictedWinner string       `json:"predictedWinner"`
	HomeScore       int          `json:"homeScore"`
	AwayScore       int          `json:"awayScore"`
}

// Loser returns the participant that is not the predicted winner.
func (g PlayoffGame) Loser() string {
	if g.PredictedWinner == g.HomeTeam {
		return g.AwayTeam
	}
	return g.HomeTeam
}

type PlayoffBracket struct {
	WildCard     []PlayoffGame `json:"wildCard"`
	Divisional   []PlayoffGame `json:"divisional"`
	Championship []PlayoffGame `json:"championship"`
	SuperBowl    PlayoffGame   `json:"superBowl"`
}

type PlayoffOdds struct {
	ChampionshipPct float64 `json:"championshipPct"`
	AppearancePct   float64 `json:"appearancePct"`
}

type TeamOdds struct {
	Team string  `json:"team"`
	Odds float64 `json:"odds"`
}

type SeasonPrediction struct {
	Standings         DivisionStandings `json:"standings"`
	PlayoffBracket    PlayoffBracket    `json:"playoffBracket"`
	SuperBowlChampion string            `json:"superBowlChampion"`
}

// Snapshot is one consistent view of the league data the engines run on.
type Snapshot struct {
	Teams        []NFLTeam
	Games        []Game
	CurrentWeek  int
	Players      []Player
	FantasyTeams []FantasyTeam
	Live         bool
	LastUpdated  time.Time
}
