package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/gridiron/internal/models"
)

const (
	teamMatchThreshold   = 0.6
	playerMatchThreshold = 0.7
)

func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := float64(max(len(a), len(b)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(fuzzy.LevenshteinDistance(a, b))/maxLen
}

// bestMatch returns the index of the candidate closest to query. An exact
// case-insensitive match wins, then the highest Levenshtein similarity above
// threshold. Failing both, the closest candidate containing the query's
// letters in order is used, so "mahomes" finds "Patrick Mahomes".
func bestMatch(query string, candidates []string, threshold float64) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1, false
	}

	best, bestScore := -1, threshold
	for i, c := range candidates {
		if strings.EqualFold(c, query) {
			return i, true
		}
		if sim := similarity(query, c); sim > bestScore {
			best, bestScore = i, sim
		}
	}
	if best >= 0 {
		return best, true
	}

	ranks := fuzzy.RankFindFold(query, candidates)
	if len(ranks) == 0 {
		return -1, false
	}
	sort.Sort(ranks)
	return ranks[0].OriginalIndex, true
}

func findTeamByName(snap *models.Snapshot, name string) (models.FantasyTeam, error) {
	names := make([]string, len(snap.FantasyTeams))
	for i, team := range snap.FantasyTeams {
		names[i] = team.Name
	}

	i, ok := bestMatch(name, names, teamMatchThreshold)
	if !ok {
		return models.FantasyTeam{}, fmt.Errorf("%w: %s", ErrTeamNotFound, name)
	}
	return snap.FantasyTeams[i], nil
}

type rosteredPlayer struct {
	player models.Player
	team   models.FantasyTeam
}

// findRosteredPlayer resolves a player name against every fantasy roster.
func findRosteredPlayer(snap *models.Snapshot, name string) (rosteredPlayer, error) {
	var (
		entries []rosteredPlayer
		names   []string
	)
	for _, team := range snap.FantasyTeams {
		for _, p := range team.Roster {
			entries = append(entries, rosteredPlayer{player: p, team: team})
			names = append(names, p.Name)
		}
	}

	i, ok := bestMatch(name, names, playerMatchThreshold)
	if !ok {
		return rosteredPlayer{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
	}
	return entries[i], nil
}

// parseTradeArgs splits "<players> for <players>" into two comma separated
// name lists.
func parseTradeArgs(args string) (give, get []string, err error) {
	lower := strings.ToLower(args)
	idx := strings.Index(lower, " for ")
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: expected \"<players> for <players>\"", ErrInvalidPlayers)
	}

	give = splitNames(args[:idx])
	get = splitNames(args[idx+len(" for "):])
	if len(give) == 0 || len(get) == 0 {
		return nil, nil, fmt.Errorf("%w: both sides need at least one player", ErrInvalidPlayers)
	}
	return give, get, nil
}

// parseCompareArgs splits "<team> vs <team>".
func parseCompareArgs(args string) (string, string, error) {
	lower := strings.ToLower(args)
	idx := strings.Index(lower, " vs ")
	if idx < 0 {
		return "", "", fmt.Errorf("%w: expected \"<team> vs <team>\"", ErrTeamNotFound)
	}

	team1 := strings.TrimSpace(args[:idx])
	team2 := strings.TrimSpace(args[idx+len(" vs "):])
	if team1 == "" || team2 == "" {
		return "", "", fmt.Errorf("%w: both teams are required", ErrTeamNotFound)
	}
	return team1, team2, nil
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
