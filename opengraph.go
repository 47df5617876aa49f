package brandmark

import (
	"context"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var ogImageRe = regexp.MustCompile(
	`(?i)<meta\s+[^>]*property=["']og:image["'][^>]*content=["']([^"']+)["']|` +
		`<meta\s+[^>]*content=["']([^"']+)["'][^>]*property=["']og:image["']`,
)

// ExtractOGImageURL pulls the og:image URL from raw HTML.
// Returns empty string if not found.
func ExtractOGImageURL(pageHTML string) string {
	m := ogImageRe.FindStringSubmatch(pageHTML)
	if m == nil {
		return ""
	}
	img := m[1]
	if img == "" {
		img = m[2]
	}
	if img == "" {
		return ""
	}
	return html.UnescapeString(img)
}

// ogMaxBytes bounds how much of a page is read looking for og:image;
// the tag lives in <head>.
const ogMaxBytes = 256 * 1024

// fetchOpenGraphImage fetches the website's page and extracts its
// og:image URL, resolved against the page address. Every failure
// returns ""; the OG candidate is strictly best-effort.
func (cfg *Config) fetchOpenGraphImage(ctx context.Context, website string) string {
	if !IsValid(website) {
		return ""
	}
	pageURL := Normalize(website)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, ogMaxBytes))
	if err != nil {
		return ""
	}

	img := ExtractOGImageURL(string(body))
	if img == "" {
		return ""
	}
	return resolveAgainst(pageURL, img)
}

// resolveAgainst resolves a possibly-relative image reference against the
// page it was found on.
func resolveAgainst(pageURL, ref string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}
