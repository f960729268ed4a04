package nbastats

import "net/http"

// BrowserHeaders returns the header set stats.nba.com expects from a browser.
// Each call returns a fresh copy. Host is taken from the request URL.
func BrowserHeaders() http.Header {
	h := make(http.Header, 10)
	h.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:72.0) Gecko/20100101 Firefox/72.0")
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-US,en;q=0.5")
	h.Set("Accept-Encoding", "gzip, deflate, br")
	h.Set("x-nba-stats-origin", "stats")
	h.Set("x-nba-stats-token", "true")
	h.Set("Connection", "keep-alive")
	h.Set("Referer", "https://stats.nba.com/")
	h.Set("Pragma", "no-cache")
	h.Set("Cache-Control", "no-cache")
	return h
}
