package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/repogem/repogem/core"
	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.HistoryStore
}

func (h *toolHandler) handleRankRepositories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input", ""); p != "" {
		cfg.InputFile = p
	}
	if m := request.GetString("metric", ""); m != "" {
		metric := schema.RankMetric(m)
		if _, ok := schema.ValidRankMetrics[metric]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid metric: %s", m)), nil
		}
		cfg.Metric = metric
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, err := core.GetRankedResults(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input", ""); p != "" {
		cfg.InputFile = p
	}

	summary, domains, err := core.GetSummaryResults(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	payload := struct {
		Summary schema.Summary       `json:"summary"`
		Domains []schema.DomainCount `json:"domains"`
	}{Summary: summary, Domains: domains}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFindPotentiallyOverrated(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input", ""); p != "" {
		cfg.InputFile = p
	}
	if sp := request.GetFloat("star_percentile", 0); sp != 0 {
		cfg.StarPercentile = sp
	}
	if qp := request.GetFloat("quality_percentile", 0); qp != 0 {
		cfg.QualityPercentile = qp
	}
	if cfg.StarPercentile <= 0 || cfg.StarPercentile >= 1 || cfg.QualityPercentile <= 0 || cfg.QualityPercentile >= 1 {
		return mcp.NewToolResultError("percentiles must be in (0, 1)"), nil
	}

	flagged, err := core.GetOverratedResults(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("filter failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(flagged, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
