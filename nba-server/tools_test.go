package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/lineup"
	"fantasy-nba-mcp/internal/stats"
)

func fixturePlayer(name string, positions []string, proTeamID int, pts float64) *espn.Player {
	return &espn.Player{
		ID:        int(pts * 100),
		Name:      name,
		ProTeam:   espn.ProTeamAbbrev(proTeamID),
		ProTeamID: proTeamID,
		Positions: positions,
		Stats: map[string]espn.StatLine{
			"2026_total": {
				Avg: map[string]float64{
					"PTS": pts, "REB": pts / 3, "AST": pts / 4, "BLK": 1, "STL": 1,
					"3PM": 2, "FT%": 0.8, "FTM": 3, "FTA": 4, "GP": 50,
				},
				GamesPlayed: 50,
			},
			"2026_projected": {
				Avg:         map[string]float64{"PTS": pts * 0.9, "GP": 82},
				GamesPlayed: 82,
			},
		},
	}
}

// fixtureLeague has two fantasy teams paired in matchup 1 and two free
// agents. Pro teams 10 and 2 play on both days of the matchup.
func fixtureLeague() *espn.League {
	alphas := &espn.Team{ID: 1, Name: "Alphas", Roster: []*espn.Player{
		fixturePlayer("Star Guard", []string{"PG", "SG"}, 10, 25),
		fixturePlayer("Big Center", []string{"C"}, 10, 18),
		{ID: 9999, Name: "Benchman", ProTeamID: 3, Positions: []string{"SF"}},
	}}
	betas := &espn.Team{ID: 2, Name: "Betas", Roster: []*espn.Player{
		fixturePlayer("Rival Forward", []string{"SF", "PF"}, 2, 15),
	}}

	sched := func(proTeamID, oppID int) map[int][]espn.ProGame {
		out := make(map[int][]espn.ProGame)
		for _, period := range []int{1, 2} {
			out[period] = []espn.ProGame{{
				Date:   time.Date(2025, 10, 20+period, 0, 0, 0, 0, time.UTC),
				HomeID: proTeamID,
				AwayID: oppID,
			}}
		}
		return out
	}

	return &espn.League{
		ID:    42,
		Year:  2026,
		Teams: []*espn.Team{alphas, betas},
		FreeAgents: []*espn.Player{
			fixturePlayer("Waiver One", []string{"PG"}, 10, 30),
			fixturePlayer("Waiver Two", []string{"C"}, 2, 5),
		},
		Matchups: []espn.Matchup{{PeriodID: 1, HomeID: 1, AwayID: 2}},
		ProSchedule: map[int]map[int][]espn.ProGame{
			10: sched(10, 2),
			2:  sched(2, 10),
		},
	}
}

func testDeps(lg *espn.League) *toolDeps {
	engine := stats.NewEngine()
	return &toolDeps{
		cfg:       &config.Settings{LeagueID: 42, Year: 2026},
		cal:       config.Calendar{SeasonStart: time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC), Matchups: map[int][]int{1: {1, 2}}},
		engine:    engine,
		projector: lineup.NewProjector(engine),
		logger:    zerolog.Nop(),
		fetchLeague: func(ctx context.Context) (*espn.League, error) {
			return lg, nil
		},
	}
}

func intp(v int) *int { return &v }

func TestPlayerStats(t *testing.T) {
	d := testDeps(fixtureLeague())
	out, err := buildPlayerStats(context.Background(), d, PlayerStatsArgs{PlayerName: "star guard"})
	if err != nil {
		t.Fatalf("buildPlayerStats: %v", err)
	}
	if out.PlayerName != "Star Guard" {
		t.Errorf("fuzzy match resolved to %q, want Star Guard", out.PlayerName)
	}
	if out.Team != "HOU" {
		t.Errorf("team = %q, want HOU", out.Team)
	}
	if out.Stats["PTS"] != 25 {
		t.Errorf("PTS = %v, want 25", out.Stats["PTS"])
	}
	if out.FullStatKey != "2026_total" || out.StatPeriod != "total" {
		t.Errorf("stat key = %q/%q, want total/2026_total", out.StatPeriod, out.FullStatKey)
	}
	if len(out.ZScores) == 0 {
		t.Error("no z-scores in output")
	}
}

func TestPlayerStats_RequiresName(t *testing.T) {
	d := testDeps(fixtureLeague())
	if _, err := buildPlayerStats(context.Background(), d, PlayerStatsArgs{}); err == nil {
		t.Error("empty player_name accepted")
	}
}

func TestPlayerStats_NotFound(t *testing.T) {
	d := testDeps(fixtureLeague())
	_, err := buildPlayerStats(context.Background(), d, PlayerStatsArgs{PlayerName: "zzzz"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, want a not-found error", err)
	}
}

func TestPlayerStats_InvalidStatKey(t *testing.T) {
	d := testDeps(fixtureLeague())
	_, err := buildPlayerStats(context.Background(), d, PlayerStatsArgs{PlayerName: "Star Guard", StatKey: "weekly"})
	if err == nil {
		t.Error("invalid stat_key accepted")
	}
}

func TestPlayerStats_FetchFailurePropagates(t *testing.T) {
	d := testDeps(nil)
	d.fetchLeague = func(ctx context.Context) (*espn.League, error) {
		return nil, errors.New("espn is down")
	}
	if _, err := buildPlayerStats(context.Background(), d, PlayerStatsArgs{PlayerName: "Star Guard"}); err == nil {
		t.Error("fetch failure swallowed")
	}
}

func TestTopFreeAgents_RankedAndLimited(t *testing.T) {
	d := testDeps(fixtureLeague())
	out, err := buildTopFreeAgents(context.Background(), d, TopFreeAgentsArgs{MatchupID: intp(1), Limit: 1})
	if err != nil {
		t.Fatalf("buildTopFreeAgents: %v", err)
	}
	if out.Count != 1 || len(out.FreeAgents) != 1 {
		t.Fatalf("count = %d, want 1", out.Count)
	}
	if out.FreeAgents[0].PlayerName != "Waiver One" {
		t.Errorf("top free agent = %q, want Waiver One", out.FreeAgents[0].PlayerName)
	}
}

func TestTopFreeAgents_GameDates(t *testing.T) {
	d := testDeps(fixtureLeague())
	out, err := buildTopFreeAgents(context.Background(), d, TopFreeAgentsArgs{MatchupID: intp(1)})
	if err != nil {
		t.Fatalf("buildTopFreeAgents: %v", err)
	}
	fa := out.FreeAgents[0]
	if len(fa.GameDates) != 2 || fa.GameDates[0] != "2025-10-21" || fa.GameDates[1] != "2025-10-22" {
		t.Errorf("game dates = %v, want both matchup days", fa.GameDates)
	}
}

func TestTopFreeAgents_InvalidMatchup(t *testing.T) {
	d := testDeps(fixtureLeague())
	if _, err := buildTopFreeAgents(context.Background(), d, TopFreeAgentsArgs{MatchupID: intp(99)}); err == nil {
		t.Error("invalid matchup_id accepted")
	}
}

func TestTeamProjection(t *testing.T) {
	d := testDeps(fixtureLeague())
	out, err := buildTeamProjection(context.Background(), d, TeamProjectionArgs{TeamName: "alphas", MatchupID: intp(1), StatKey: "total"})
	if err != nil {
		t.Fatalf("buildTeamProjection: %v", err)
	}
	if out.TeamName != "Alphas" {
		t.Errorf("team = %q, want Alphas", out.TeamName)
	}
	// Two scored players, two game days.
	if out.GamesPlayed != 4 {
		t.Errorf("GamesPlayed = %d, want 4", out.GamesPlayed)
	}
	for _, cat := range d.engine.Categories {
		if _, ok := out.ProjectedStats[cat]; !ok {
			t.Errorf("projected stats missing category %s", cat)
		}
	}
	if got := out.ProjectedStats["PTS"]; got != (25+18)*2 {
		t.Errorf("projected PTS = %v, want 86", got)
	}
}

func TestTeamProjection_NotFoundListsTeams(t *testing.T) {
	d := testDeps(fixtureLeague())
	_, err := buildTeamProjection(context.Background(), d, TeamProjectionArgs{TeamName: "xxxx"})
	if err == nil || !strings.Contains(err.Error(), "Alphas") {
		t.Errorf("err = %v, want available team names listed", err)
	}
}

func TestMatchupProjections(t *testing.T) {
	d := testDeps(fixtureLeague())
	out, err := buildMatchupProjections(context.Background(), d, MatchupProjectionsArgs{MatchupID: intp(1), StatKey: "total"})
	if err != nil {
		t.Fatalf("buildMatchupProjections: %v", err)
	}
	if len(out.Matchups) != 1 {
		t.Fatalf("got %d matchups, want 1", len(out.Matchups))
	}
	m := out.Matchups[0]
	if m.TeamA != "Alphas" || m.TeamB != "Betas" {
		t.Errorf("pairing = %s vs %s, want Alphas vs Betas", m.TeamA, m.TeamB)
	}
	if len(m.CategoryWinners) != len(d.engine.Categories) {
		t.Errorf("got %d category winners, want %d", len(m.CategoryWinners), len(d.engine.Categories))
	}
	ties := len(d.engine.Categories) - m.TeamAWins - m.TeamBWins
	if ties < 0 {
		t.Errorf("wins %d+%d exceed category count", m.TeamAWins, m.TeamBWins)
	}
}

func TestTeamRoster(t *testing.T) {
	d := testDeps(fixtureLeague())
	out, err := buildTeamRoster(context.Background(), d, TeamRosterArgs{Team: "Alphas", MatchupID: intp(1)})
	if err != nil {
		t.Fatalf("buildTeamRoster: %v", err)
	}
	if out.RosterCount != 3 {
		t.Fatalf("roster count = %d, want 3", out.RosterCount)
	}
	for i := 1; i < len(out.Roster); i++ {
		if out.Roster[i].PerGamePower > out.Roster[i-1].PerGamePower {
			t.Error("roster not sorted by descending power")
		}
	}
	last := out.Roster[len(out.Roster)-1]
	if last.PlayerName != "Benchman" || last.PerGamePower != 0 {
		t.Errorf("unscored player = %+v, want Benchman with zero power at the bottom", last)
	}
	if last.ZScores == nil {
		t.Error("unscored player has nil z-scores, want empty map")
	}
}

func TestResolveMatchupID_DefaultsToCurrent(t *testing.T) {
	d := testDeps(fixtureLeague())
	id, err := d.resolveMatchupID(nil)
	if err != nil {
		t.Fatalf("resolveMatchupID(nil): %v", err)
	}
	if _, ok := d.cal.Matchups[id]; !ok {
		t.Errorf("defaulted matchup id %d not in calendar", id)
	}
}

func TestResolveStatKey_Default(t *testing.T) {
	d := testDeps(fixtureLeague())
	key, err := d.resolveStatKey("", "projected")
	if err != nil {
		t.Fatalf("resolveStatKey: %v", err)
	}
	if key != "2026_projected" {
		t.Errorf("key = %q, want 2026_projected", key)
	}
}

func TestToolError(t *testing.T) {
	res := toolError(errors.New("boom"))
	if !res.IsError {
		t.Error("toolError result not flagged as error")
	}
}

func TestToolJSON(t *testing.T) {
	res, _, err := toolJSON(map[string]int{"wins": 3})
	if err != nil {
		t.Fatalf("toolJSON: %v", err)
	}
	if res.IsError {
		t.Error("toolJSON flagged success as error")
	}
}
