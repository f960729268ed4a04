package testutil

import (
	"encoding/json"
	"fmt"
)

// TeamHeaders is a trimmed leaguedashteamstats header row.
var TeamHeaders = []string{"TEAM_ID", "TEAM_NAME", "GP", "W", "L", "W_PCT"}

// TeamRows returns two synthetic team rows whose ids and names are derived from year.
func TeamRows(year int) [][]any {
	return [][]any{
		{1610612737 + year, fmt.Sprintf("Team A %d", year), 82, 50, 32, 0.61},
		{1610612738 + year, fmt.Sprintf("Team B %d", year), 82, 30, 52, 0.366},
	}
}

// StatsPayload renders a stats.nba.com style body with one result set.
func StatsPayload(name string, headers []string, rows [][]any) string {
	payload := map[string]any{
		"resource":   name,
		"parameters": map[string]any{},
		"resultSets": []map[string]any{
			{
				"name":    name,
				"headers": headers,
				"rowSet":  rows,
			},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// TeamPayload is StatsPayload with the team headers and TeamRows(year).
func TeamPayload(year int) string {
	return StatsPayload("LeagueDashTeamStats", TeamHeaders, TeamRows(year))
}
