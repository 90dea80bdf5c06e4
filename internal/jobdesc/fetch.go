// Package jobdesc fetches job descriptions from posting URLs and reduces the
// page to plain text suitable for prompt embedding.
package jobdesc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const fetchTimeout = 30 * time.Second

var blankLines = regexp.MustCompile(`\n{3,}`)

// Fetch retrieves the page at rawURL and extracts its visible text.
// Only http and https URLs are accepted.
func Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid job posting URL: %s", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "resume-tailor/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("job posting fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read job posting body: %w", err)
	}

	text := ExtractText(strings.NewReader(string(body)))
	if text == "" {
		return "", fmt.Errorf("job posting page contained no text")
	}
	return text, nil
}

// ExtractText reduces an HTML document to its visible text, dropping script,
// style, and navigation chrome. Falls back to the raw input on parse failure.
func ExtractText(r io.Reader) string {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fragment without a body element.
		text = doc.Text()
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
