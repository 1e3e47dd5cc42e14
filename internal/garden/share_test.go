package garden

import (
	"net/url"
	"strings"
	"testing"
)

func TestShareText(t *testing.T) {
	tests := []struct {
		format   string
		score    int
		expected string
	}{
		{"J'ai pollinisé %d fleurs dans Pixel Bee Garden 🐝🌼 !", 40, "J'ai pollinisé 40 fleurs dans Pixel Bee Garden 🐝🌼 !"},
		{"Score: %d", 0, "Score: 0"},
		{"I scored", 70, "I scored 70"},
	}

	for _, tt := range tests {
		if got := ShareText(tt.format, tt.score); got != tt.expected {
			t.Errorf("ShareText(%q, %d) = %q, expected %q", tt.format, tt.score, got, tt.expected)
		}
	}
}

func TestShareURL(t *testing.T) {
	text := "J'ai pollinisé 40 fleurs dans Pixel Bee Garden 🐝🌼 !"
	raw := ShareURL(text, "https://example.com/garden?x=1")

	if !strings.HasPrefix(raw, "https://twitter.com/intent/tweet?") {
		t.Fatalf("Unexpected endpoint: %s", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("ShareURL produced an invalid URL: %v", err)
	}
	q := u.Query()
	if q.Get("text") != text {
		t.Errorf("text = %q, expected %q", q.Get("text"), text)
	}
	if q.Get("url") != "https://example.com/garden?x=1" {
		t.Errorf("url = %q", q.Get("url"))
	}
}

func TestShareURLWithoutPage(t *testing.T) {
	u, err := url.Parse(ShareURL("hi", ""))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := u.Query()["url"]; ok {
		t.Error("Empty page URL should be omitted")
	}
}

func TestParseBest(t *testing.T) {
	tests := map[string]int{
		"0": 0, "10": 10, " 250 ": 250, "": 0, "abc": 0, "-1": 0, "1e3": 0,
	}
	for raw, want := range tests {
		if got := ParseBest(raw); got != want {
			t.Errorf("ParseBest(%q) = %d, expected %d", raw, got, want)
		}
	}
}
