package nbastats

import "testing"

func TestBrowserHeadersCarryVendorTokens(t *testing.T) {
	h := BrowserHeaders()
	expected := map[string]string{
		"x-nba-stats-origin": "stats",
		"x-nba-stats-token":  "true",
		"Referer":            "https://stats.nba.com/",
		"Accept-Encoding":    "gzip, deflate, br",
		"Cache-Control":      "no-cache",
		"Pragma":             "no-cache",
	}
	for k, v := range expected {
		if got := h.Get(k); got != v {
			t.Fatalf("header %s: expected %q, got %q", k, v, got)
		}
	}
	if h.Get("User-Agent") == "" || h.Get("Accept-Language") == "" || h.Get("Connection") == "" {
		t.Fatalf("expected browser headers to be populated, got %v", h)
	}
}

func TestBrowserHeadersReturnsFreshCopy(t *testing.T) {
	a := BrowserHeaders()
	a.Set("Referer", "https://evil.example")
	if got := BrowserHeaders().Get("Referer"); got != "https://stats.nba.com/" {
		t.Fatalf("expected mutations not to leak, got %q", got)
	}
}
