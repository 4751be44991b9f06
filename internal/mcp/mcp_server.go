// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/repogem/repogem/internal/contract"
)

// NewMCPServer initializes and configures the repogem MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.HistoryStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Repogem Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: rank_repositories ---
	s.AddTool(mcp.NewTool("rank_repositories",
		mcp.WithDescription("Rank pre-classified repositories by a derived score."),
		mcp.WithString("input", mcp.Description("Path to the classified records JSON file (defaults to the configured input).")),
		mcp.WithString("metric", mcp.Description("Ranking metric (value, quality, overrated, stars). Defaults to 'value'."), mcp.Enum("value", "quality", "overrated", "stars")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleRankRepositories)

	// --- 2. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Compute aggregate statistics and domain frequencies over the collection."),
		mcp.WithString("input", mcp.Description("Path to the classified records JSON file.")),
	), h.handleGetSummary)

	// --- 3. Tool: find_potentially_overrated ---
	s.AddTool(mcp.NewTool("find_potentially_overrated",
		mcp.WithDescription("Find repositories with stars above a high percentile and quality below a low percentile."),
		mcp.WithString("input", mcp.Description("Path to the classified records JSON file.")),
		mcp.WithNumber("star_percentile", mcp.Description("Star count percentile cutoff in (0, 1). Defaults to 0.8.")),
		mcp.WithNumber("quality_percentile", mcp.Description("Quality percentile cutoff in (0, 1). Defaults to 0.4.")),
	), h.handleFindPotentiallyOverrated)

	return s
}

// StartMCPServer starts the repogem MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.HistoryStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
