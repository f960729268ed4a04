package nbastats

import "time"

const (
	providerName       = "nbastats"
	DefaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 60 * time.Second
	errorBodyLimit     = 512
)
