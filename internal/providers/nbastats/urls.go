package nbastats

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
	"github.com/preston-bernstein/nba-season-stats/internal/season"
)

// Endpoint paths and their fixed query strings; every filter is left at its default.
// %s receives the season parameter, e.g. 2020-21.
const (
	playerStatsTemplate = "/leaguedashplayerstats?College=&Conference=&Country=&DateFrom=&DateTo=&Division=&DraftPick=&DraftYear=&GameScope=&GameSegment=&Height=&LastNGames=0&LeagueID=00&Location=&MeasureType=Base&Month=0&OpponentTeamID=0&Outcome=&PORound=0&PaceAdjust=N&PerMode=Totals&Period=0&PlayerExperience=&PlayerPosition=&PlusMinus=N&Rank=N&Season=%s&SeasonSegment=&SeasonType=Regular%%20Season&ShotClockRange=&StarterBench=&TeamID=0&VsConference=&VsDivision=&Weight="
	teamStatsTemplate   = "/leaguedashteamstats?Conference=&DateFrom=&DateTo=&Division=&GameScope=&GameSegment=&Height=&LastNGames=0&LeagueID=00&Location=&MeasureType=Base&Month=0&OpponentTeamID=0&Outcome=&PORound=0&PaceAdjust=N&PerMode=Totals&Period=0&PlayerExperience=&PlayerPosition=&PlusMinus=N&Rank=N&Season=%s&SeasonSegment=&SeasonType=Regular%%20Season&ShotClockRange=&StarterBench=&TeamID=0&TwoWay=0&VsConference=&VsDivision="
)

var urlTemplates = map[stats.Kind]string{
	stats.KindPlayers: playerStatsTemplate,
	stats.KindTeams:   teamStatsTemplate,
}

// SeasonParam renders the Season query value for a start year, e.g. 2020 -> "2020-21".
func SeasonParam(year int) string {
	return season.Label(year)
}

// BuildURL returns the stats.nba.com request URL for kind and season start year.
// The year is not validated.
func BuildURL(kind stats.Kind, year int) (string, error) {
	return buildURL(DefaultBaseURL, kind, year)
}

func buildURL(baseURL string, kind stats.Kind, year int) (string, error) {
	tmpl, ok := urlTemplates[kind]
	if !ok {
		return "", fmt.Errorf("%s: %w: %q", providerName, stats.ErrUnknownKind, kind)
	}
	return normalizeBaseURL(baseURL) + fmt.Sprintf(tmpl, SeasonParam(year)), nil
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = DefaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
