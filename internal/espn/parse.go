package espn

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// statNames maps ESPN's numeric stat ids to category names. Only the stats
// the analysis uses are mapped; everything else in averageStats is dropped.
var statNames = map[string]string{
	"0":  "PTS",
	"1":  "BLK",
	"2":  "STL",
	"3":  "AST",
	"6":  "REB",
	"11": "TO",
	"13": "FGM",
	"14": "FGA",
	"15": "FTM",
	"16": "FTA",
	"17": "3PM",
	"19": "FG%",
	"20": "FT%",
	"21": "3P%",
	"40": "MIN",
	"42": "GP",
}

// slotNames maps ESPN lineup slot ids to slot labels.
var slotNames = map[int]string{
	0: "PG", 1: "SG", 2: "SF", 3: "PF", 4: "C",
	5: "G", 6: "F", 7: "SG/SF", 8: "G/F", 9: "PF/C", 10: "F/C",
	11: "UTIL", 12: "BE", 13: "IR",
}

// basePositionSlots are the slot ids that count as true positions when
// deriving a player's eligibility set.
var basePositionSlots = []int{0, 1, 2, 3, 4}

// proTeamAbbrevs maps ESPN pro team ids to NBA abbreviations.
var proTeamAbbrevs = map[int]string{
	0: "FA", 1: "ATL", 2: "BOS", 3: "NO", 4: "CHI", 5: "CLE",
	6: "DAL", 7: "DEN", 8: "DET", 9: "GS", 10: "HOU", 11: "IND",
	12: "LAC", 13: "LAL", 14: "MIA", 15: "MIL", 16: "MIN", 17: "BKN",
	18: "NY", 19: "ORL", 20: "PHL", 21: "PHO", 22: "POR", 23: "SAC",
	24: "SA", 25: "OKC", 26: "UTA", 27: "WSH", 28: "TOR", 29: "MEM",
	30: "CHA",
}

type rawPlayer struct {
	ID                int                `json:"id"`
	FullName          string             `json:"fullName"`
	DefaultPositionID int                `json:"defaultPositionId"`
	EligibleSlots     []int              `json:"eligibleSlots"`
	ProTeamID         int                `json:"proTeamId"`
	Injured           bool               `json:"injured"`
	InjuryStatus      string             `json:"injuryStatus"`
	Stats             []rawPlayerStats   `json:"stats"`
}

type rawPlayerStats struct {
	SeasonID        int                `json:"seasonId"`
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	AverageStats    map[string]float64 `json:"averageStats"`
}

type rawRosterEntry struct {
	LineupSlotID    int `json:"lineupSlotId"`
	PlayerPoolEntry struct {
		Player rawPlayer `json:"player"`
	} `json:"playerPoolEntry"`
}

type rawTeam struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Nickname string `json:"nickname"`
	Roster   struct {
		Entries []rawRosterEntry `json:"entries"`
	} `json:"roster"`
}

type rawLeague struct {
	Teams    []rawTeam `json:"teams"`
	Schedule []struct {
		MatchupPeriodID int `json:"matchupPeriodId"`
		Home            struct {
			TeamID int `json:"teamId"`
		} `json:"home"`
		Away struct {
			TeamID int `json:"teamId"`
		} `json:"away"`
	} `json:"schedule"`
}

type rawFreeAgents struct {
	Players []struct {
		Player rawPlayer `json:"player"`
	} `json:"players"`
}

type rawProSchedule struct {
	Settings struct {
		ProTeams []struct {
			ID                      int                 `json:"id"`
			Abbrev                  string              `json:"abbrev"`
			ProGamesByScoringPeriod map[string][]struct {
				Date          int64 `json:"date"`
				HomeProTeamID int   `json:"homeProTeamId"`
				AwayProTeamID int   `json:"awayProTeamId"`
			} `json:"proGamesByScoringPeriod"`
		} `json:"proTeams"`
	} `json:"settings"`
}

// statKey builds the full period key for one stats entry, mirroring how the
// periods are labelled league-wide: source 0 is actuals (split 0 total,
// 1/2/3 the rolling windows), source 1 split 0 is the preseason projection.
func statKey(s rawPlayerStats) string {
	year := strconv.Itoa(s.SeasonID)
	switch {
	case s.StatSourceID == 0 && s.StatSplitTypeID == 0:
		return year + "_total"
	case s.StatSourceID == 0 && s.StatSplitTypeID == 1:
		return year + "_last_7"
	case s.StatSourceID == 0 && s.StatSplitTypeID == 2:
		return year + "_last_15"
	case s.StatSourceID == 0 && s.StatSplitTypeID == 3:
		return year + "_last_30"
	case s.StatSourceID == 1 && s.StatSplitTypeID == 0:
		return year + "_projected"
	}
	return ""
}

func convertPlayer(raw rawPlayer, lineupSlotID int) *Player {
	p := &Player{
		ID:           raw.ID,
		Name:         raw.FullName,
		ProTeam:      proTeamAbbrevs[raw.ProTeamID],
		ProTeamID:    raw.ProTeamID,
		LineupSlot:   slotNames[lineupSlotID],
		InjuryStatus: raw.InjuryStatus,
		Injured:      raw.Injured,
		Stats:        make(map[string]StatLine, len(raw.Stats)),
	}

	eligible := make(map[int]bool, len(raw.EligibleSlots))
	for _, s := range raw.EligibleSlots {
		eligible[s] = true
	}
	for _, s := range basePositionSlots {
		if eligible[s] {
			p.Positions = append(p.Positions, slotNames[s])
		}
	}

	for _, s := range raw.Stats {
		key := statKey(s)
		if key == "" || s.AverageStats == nil {
			continue
		}
		avg := make(map[string]float64, len(s.AverageStats))
		for id, v := range s.AverageStats {
			name, ok := statNames[id]
			if !ok {
				continue
			}
			avg[name] = v
		}
		line := StatLine{Avg: avg, GamesPlayed: avg["GP"]}
		p.Stats[key] = line
	}

	return p
}

func parseLeague(body []byte, leagueID int, year int) (*League, error) {
	var raw rawLeague
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse league: %w", err)
	}

	lg := &League{ID: leagueID, Year: year}
	for _, rt := range raw.Teams {
		name := rt.Name
		if name == "" {
			name = rt.Location + " " + rt.Nickname
		}
		team := &Team{ID: rt.ID, Name: name}
		for _, entry := range rt.Roster.Entries {
			team.Roster = append(team.Roster, convertPlayer(entry.PlayerPoolEntry.Player, entry.LineupSlotID))
		}
		lg.Teams = append(lg.Teams, team)
	}
	for _, s := range raw.Schedule {
		lg.Matchups = append(lg.Matchups, Matchup{
			PeriodID: s.MatchupPeriodID,
			HomeID:   s.Home.TeamID,
			AwayID:   s.Away.TeamID,
		})
	}
	return lg, nil
}

func parseFreeAgents(body []byte) ([]*Player, error) {
	var raw rawFreeAgents
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse free agents: %w", err)
	}
	out := make([]*Player, 0, len(raw.Players))
	for _, e := range raw.Players {
		out = append(out, convertPlayer(e.Player, -1))
	}
	return out, nil
}

func parseProSchedule(body []byte) (map[int]map[int][]ProGame, error) {
	var raw rawProSchedule
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse pro schedule: %w", err)
	}
	out := make(map[int]map[int][]ProGame, len(raw.Settings.ProTeams))
	for _, team := range raw.Settings.ProTeams {
		byPeriod := make(map[int][]ProGame, len(team.ProGamesByScoringPeriod))
		for periodStr, games := range team.ProGamesByScoringPeriod {
			period, err := strconv.Atoi(periodStr)
			if err != nil {
				continue
			}
			for _, g := range games {
				byPeriod[period] = append(byPeriod[period], ProGame{
					Date:   time.UnixMilli(g.Date).UTC(),
					HomeID: g.HomeProTeamID,
					AwayID: g.AwayProTeamID,
				})
			}
		}
		out[team.ID] = byPeriod
	}
	return out, nil
}

// ProTeamAbbrev returns the NBA abbreviation for a pro team id, or "Unknown".
func ProTeamAbbrev(id int) string {
	if abbrev, ok := proTeamAbbrevs[id]; ok {
		return abbrev
	}
	return "Unknown"
}
