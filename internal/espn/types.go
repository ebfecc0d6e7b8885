package espn

import "time"

// StatLine is one time-period slice of a player's stats: per-game averages
// keyed by category name ("PTS", "REB", ...) plus games played.
type StatLine struct {
	Avg         map[string]float64
	GamesPlayed float64
}

// Player is one league player, rostered or free agent.
type Player struct {
	ID           int
	Name         string
	ProTeam      string // NBA team abbreviation, e.g. "LAL"
	ProTeamID    int
	Positions    []string // eligible base positions out of PG/SG/SF/PF/C
	LineupSlot   string   // current fantasy slot, "IR" when stashed
	InjuryStatus string   // "OUT", "DAY_TO_DAY", ... or empty
	Injured      bool
	Stats        map[string]StatLine // keyed by full stat key, e.g. "2026_total"
}

// IsOut reports whether the player should be excluded from daily lineups.
// ESPN sets the boolean flag and the status string independently, so either
// one marks the player out.
func (p *Player) IsOut() bool {
	return p.Injured || p.InjuryStatus == "OUT"
}

// Line returns the stat line for key, or false when the player has no data
// for that period.
func (p *Player) Line(key string) (StatLine, bool) {
	line, ok := p.Stats[key]
	if !ok || line.Avg == nil {
		return StatLine{}, false
	}
	return line, true
}

// OnIR reports whether the player currently occupies an injured-reserve slot.
func (p *Player) OnIR() bool {
	return p.LineupSlot == "IR"
}

// Team is a fantasy team and its roster.
type Team struct {
	ID     int
	Name   string
	Roster []*Player
}

// ProGame is one NBA game from the pro schedule.
type ProGame struct {
	Date   time.Time
	HomeID int
	AwayID int
}

// Matchup is one head-to-head pairing from the league schedule.
type Matchup struct {
	PeriodID int
	HomeID   int
	AwayID   int
}

// League is the fetched snapshot of a fantasy league: teams with rosters,
// the top free agents, the NBA pro schedule keyed by pro team id then
// scoring period, and the fantasy matchup pairings.
type League struct {
	ID          int
	Year        int
	Teams       []*Team
	FreeAgents  []*Player
	ProSchedule map[int]map[int][]ProGame
	Matchups    []Matchup
}

// AllPlayers returns every rostered player followed by the free agents.
func (l *League) AllPlayers() []*Player {
	out := make([]*Player, 0, len(l.FreeAgents)+len(l.Teams)*13)
	for _, t := range l.Teams {
		out = append(out, t.Roster...)
	}
	out = append(out, l.FreeAgents...)
	return out
}

// TeamByID returns the team with the given id, or nil.
func (l *League) TeamByID(id int) *Team {
	for _, t := range l.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Pairings returns the head-to-head pairings for a matchup period. When the
// league schedule has no entries for the period (preseason fetch), teams are
// paired off in roster order so projections still have something to chew on.
func (l *League) Pairings(periodID int) [][2]*Team {
	out := make([][2]*Team, 0, len(l.Teams)/2)
	for _, m := range l.Matchups {
		if m.PeriodID != periodID {
			continue
		}
		home := l.TeamByID(m.HomeID)
		away := l.TeamByID(m.AwayID)
		if home == nil || away == nil {
			continue
		}
		out = append(out, [2]*Team{home, away})
	}
	if len(out) > 0 {
		return out
	}
	for i := 0; i+1 < len(l.Teams); i += 2 {
		out = append(out, [2]*Team{l.Teams[i], l.Teams[i+1]})
	}
	return out
}

// GamesOn returns the pro games for a pro team in one scoring period.
func (l *League) GamesOn(proTeamID int, scoringPeriodID int) []ProGame {
	byPeriod, ok := l.ProSchedule[proTeamID]
	if !ok {
		return nil
	}
	return byPeriod[scoringPeriodID]
}
