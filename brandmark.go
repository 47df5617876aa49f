// Package brandmark resolves display imagery for product cards: an ordered
// fallback chain of logo candidates, a website-screenshot quality gate, and
// deterministic placeholder rendering (monogram or category visual) when
// everything else fails. The package never returns errors to the caller;
// every failure mode degrades to a valid render target.
package brandmark

import (
	"context"
	"net/http"
)

// DefaultLogoServiceTemplate derives a hostname-keyed logo URL. Any
// equivalent keyed-by-hostname image service can be substituted.
const DefaultLogoServiceTemplate = "https://logo.clearbit.com/%s"

// DefaultScreenshotTemplate renders a website screenshot from a normalized,
// URL-encoded website address.
const DefaultScreenshotTemplate = "https://s0.wp.com/mshots/v1/%s?w=1280"

// Cache abstracts key-value caching (Redis, sync.Map, etc.)
type Cache interface {
	Key(prefix, value string) string
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
}

// ProbeEvent describes the outcome of a single logo-candidate probe,
// for metrics/audit logging.
type ProbeEvent struct {
	Key     string       // resolution key the probe belongs to
	URL     string       // candidate URL probed
	Outcome ProbeOutcome // what the probe observed
}

// Config holds all dependencies injected by the consumer.
// The zero value is usable; defaults() fills the gaps.
type Config struct {
	Cache         Cache        // optional: memoizes screenshot verdicts (nil = recompute)
	StealthClient *http.Client // optional: TLS-fingerprinted client, tried first for downloads
	HTTPClient    *http.Client // optional: default http client (nil = http.DefaultClient)
	UserAgent     string       // default: "Mozilla/5.0 (compatible; go-brandmark/1.0)"

	// LogoServiceTemplate is a printf template taking a hostname.
	// Default: DefaultLogoServiceTemplate.
	LogoServiceTemplate string

	// ScreenshotTemplate is a printf template taking a URL-encoded
	// normalized website address. Default: DefaultScreenshotTemplate.
	ScreenshotTemplate string

	// Thresholds tunes the low-information heuristic. Zero-value fields
	// fall back to DefaultThresholds(), so overriding one knob keeps the
	// tuned values for the rest. The constants are empirically tuned;
	// override individual knobs rather than re-deriving them.
	Thresholds QualityThresholds

	// FetchOpenGraph appends the website's og:image as a final logo
	// candidate. Off by default: it costs an extra page fetch per resolve.
	FetchOpenGraph bool

	// Optional callbacks for metrics/logging.
	OnProbe func(ProbeEvent)
	OnPanic func(tag string, r any)

	placeholders placeholderFilter // fingerprints of known generic logo-host placeholders
}

// defaults fills zero-value fields with sensible defaults.
func (cfg *Config) defaults() {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (compatible; go-brandmark/1.0)"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.LogoServiceTemplate == "" {
		cfg.LogoServiceTemplate = DefaultLogoServiceTemplate
	}
	if cfg.ScreenshotTemplate == "" {
		cfg.ScreenshotTemplate = DefaultScreenshotTemplate
	}
	cfg.Thresholds = cfg.Thresholds.withDefaults()
}

// Product is the caller-supplied record a card is rendered from.
// All fields except Name are optional.
type Product struct {
	Name             string
	LogoURL          string
	SecondaryLogoURL string
	Website          string
	SourceURL        string
	Category         string
	Categories       []string
	IsHardware       bool
}
