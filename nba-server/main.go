package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"fantasy-nba-mcp/internal/config"
)

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via NBA_MCP_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "nba-server").Logger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	deps := newToolDeps(cfg, logger)

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fantasy-nba-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_player_stats",
		Description: "Raw per-game stats, per-category z-scores, injury/IR status, and power score for a player (fuzzy name match)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerStatsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerStats(ctx, deps, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_top_free_agents",
		Description: "Top available free agents ranked by power score, with game schedules for a matchup period",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TopFreeAgentsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTopFreeAgents(ctx, deps, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_matchup_projections",
		Description: "Projected head-to-head category results for every pairing in a matchup period",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args MatchupProjectionsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMatchupProjections(ctx, deps, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_team_projection",
		Description: "Projected cumulative category totals for one fantasy team across a matchup period",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamProjectionArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamProjection(ctx, deps, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_team_roster",
		Description: "Roster breakdown with per-player power score, z-scores, and game schedule, sorted best first",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamRosterArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamRoster(ctx, deps, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(cfg.APIKey)
	if *requireAuth && apiKey == "" {
		logger.Fatal().Msg("NBA_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		}
	}

	withRequestID := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", id)
			logger.Debug().Str("request_id", id).Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
			next.ServeHTTP(w, r)
		})
	}

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/tools", withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	})))
	mux.Handle(*mcpPath, withRequestID(corsWrapper.Handler(withAuth(handler))))

	logger.Info().Str("addr", *addr).Str("path", *mcpPath).Msg("MCP HTTP server listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}
