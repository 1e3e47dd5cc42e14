package garden

import (
	"fmt"
	"net/url"
	"strings"
)

// tweetIntentURL is the endpoint share links are built on.
const tweetIntentURL = "https://twitter.com/intent/tweet"

// ShareText formats the share message for score. The format should hold a
// single %d; a format without one gets the score appended.
func ShareText(format string, score int) string {
	if !strings.Contains(format, "%d") {
		return strings.TrimSpace(fmt.Sprintf("%s %d", format, score))
	}
	return fmt.Sprintf(format, score)
}

// ShareURL builds a tweet-intent link carrying text and the page URL.
func ShareURL(text, pageURL string) string {
	q := url.Values{}
	q.Set("text", text)
	if pageURL != "" {
		q.Set("url", pageURL)
	}
	return tweetIntentURL + "?" + q.Encode()
}
