// Package fuzzy resolves sloppy player and team names ("lebron" ->
// "LeBron James"): exact case-insensitive match first, then the closest
// candidate by similarity ratio above a cutoff.
package fuzzy

import (
	"strings"

	"fantasy-nba-mcp/internal/espn"
)

// Cutoff below which a best match is rejected.
const Cutoff = 0.6

// Ratio measures string similarity as twice the longest common subsequence
// over the combined length, case-insensitive. 1 means identical, 0 means
// nothing shared.
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	lcs := lcsLength(a, b)
	return 2 * float64(lcs) / float64(len(a)+len(b))
}

func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// bestMatch returns the index of the closest name, or -1 when nothing
// clears the cutoff.
func bestMatch(query string, names []string) int {
	for i, name := range names {
		if strings.EqualFold(name, query) {
			return i
		}
	}
	best := -1
	bestRatio := Cutoff
	for i, name := range names {
		if r := Ratio(query, name); r > bestRatio {
			best = i
			bestRatio = r
		}
	}
	return best
}

// FindPlayer locates a player by approximate name, or nil.
func FindPlayer(name string, players []*espn.Player) *espn.Player {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	i := bestMatch(name, names)
	if i < 0 {
		return nil
	}
	return players[i]
}

// FindTeam locates a fantasy team by approximate name, or nil.
func FindTeam(name string, teams []*espn.Team) *espn.Team {
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}
	i := bestMatch(name, names)
	if i < 0 {
		return nil
	}
	return teams[i]
}
