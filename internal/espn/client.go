package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"fantasy-nba-mcp/internal/config"
)

const defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"

// freeAgentLimit is how many free agents to pull, ranked by percent owned.
const freeAgentLimit = 60

// Client fetches fantasy league data from the ESPN v3 API. Private leagues
// need the espn_s2/SWID cookie pair; public leagues work without either.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	LeagueID  int
	Year      int
	ESPNS2    string
	SWID      string
	Logger    zerolog.Logger
}

func NewClient(cfg *config.Settings, logger zerolog.Logger) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 20 * time.Second},
		BaseURL:   defaultBaseURL,
		UserAgent: "fantasy-nba-mcp/1.0",
		LeagueID:  cfg.LeagueID,
		Year:      cfg.Year,
		ESPNS2:    cfg.ESPNS2,
		SWID:      cfg.SWID,
		Logger:    logger,
	}
}

func (c *Client) get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.ESPNS2 != "" && c.SWID != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.ESPNS2})
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.SWID})
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", url, resp.StatusCode, string(body))
	}
	return body, nil
}

func (c *Client) leagueURL(views string) string {
	return fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d?%s", c.BaseURL, c.Year, c.LeagueID, views)
}

// RawLeague fetches the unparsed league payload for the given view
// parameters ("view=mTeam&view=mRoster"). Meant for schema inspection and
// snapshot dumps, not the normal fetch path.
func (c *Client) RawLeague(ctx context.Context, views string) ([]byte, error) {
	return c.get(ctx, c.leagueURL(views), nil)
}

// RawProSchedule fetches the unparsed season-level pro schedule payload.
func (c *Client) RawProSchedule(ctx context.Context) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("%s/seasons/%d?view=proTeamSchedules_wl", c.BaseURL, c.Year), nil)
}

// FetchLeague pulls teams, rosters, the league schedule, the top free
// agents, and the NBA pro schedule, and assembles them into one League
// snapshot. Any failed request propagates immediately.
func (c *Client) FetchLeague(ctx context.Context) (*League, error) {
	start := time.Now()

	body, err := c.get(ctx, c.leagueURL("view=mTeam&view=mRoster&view=mMatchup&view=mSettings"), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch league: %w", err)
	}
	lg, err := parseLeague(body, c.LeagueID, c.Year)
	if err != nil {
		return nil, err
	}

	faHeader := http.Header{}
	faHeader.Set("X-Fantasy-Filter", fmt.Sprintf(
		`{"players":{"filterStatus":{"value":["FREEAGENT","WAIVERS"]},"limit":%d,"sortPercOwned":{"sortAsc":false,"sortPriority":1}}}`,
		freeAgentLimit))
	body, err = c.get(ctx, c.leagueURL("view=kona_player_info"), faHeader)
	if err != nil {
		return nil, fmt.Errorf("fetch free agents: %w", err)
	}
	if lg.FreeAgents, err = parseFreeAgents(body); err != nil {
		return nil, err
	}

	body, err = c.get(ctx, fmt.Sprintf("%s/seasons/%d?view=proTeamSchedules_wl", c.BaseURL, c.Year), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch pro schedule: %w", err)
	}
	if lg.ProSchedule, err = parseProSchedule(body); err != nil {
		return nil, err
	}

	rostered := 0
	for _, t := range lg.Teams {
		rostered += len(t.Roster)
	}
	c.Logger.Info().
		Int("teams", len(lg.Teams)).
		Int("rostered", rostered).
		Int("free_agents", len(lg.FreeAgents)).
		Dur("elapsed", time.Since(start)).
		Msg("league snapshot fetched")

	return lg, nil
}
