package brandmark

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"net/url"
)

// GateMode is the render target chosen by the screenshot quality gate.
type GateMode int

const (
	ModeScreenshot GateMode = iota // screenshot passed the heuristic
	ModeCategory                   // screenshot loaded but is low-information
	ModeLogo                       // screenshot unavailable; fall back to the logo chain
)

func (m GateMode) String() string {
	switch m {
	case ModeScreenshot:
		return "screenshot"
	case ModeCategory:
		return "category"
	default:
		return "logo"
	}
}

// GateResult is what a product card should render. ScreenshotURL is set
// for ModeScreenshot, Category for ModeCategory, Logo for ModeLogo.
type GateResult struct {
	Mode          GateMode
	ScreenshotURL string
	Category      CategoryVisual
	Logo          LogoResult
}

// ScreenshotURL derives the screenshot-service URL for a website.
// Deterministic: the same website always yields the same URL. Returns ""
// when the website does not normalize to something fetchable.
func (cfg *Config) ScreenshotURL(website string) string {
	cfg.defaults()
	if !IsValid(website) {
		return ""
	}
	return fmt.Sprintf(cfg.ScreenshotTemplate, url.QueryEscape(Normalize(website)))
}

// EvaluatePreview picks the preview render for a product card:
//
//	no usable website          → logo chain, no screenshot fetch
//	screenshot fetch fails     → logo chain
//	screenshot decodes blank   → category placeholder
//	screenshot has content     → the screenshot itself
//
// The verdict is memoized per screenshot URL through cfg.Cache so
// re-renders skip the fetch and the pixel pass; memoization never changes
// the answer, only avoids recomputing it.
func (cfg *Config) EvaluatePreview(ctx context.Context, p Product) GateResult {
	cfg.defaults()

	shotURL := cfg.ScreenshotURL(p.Website)
	if shotURL == "" {
		return cfg.logoFallback(ctx, p)
	}

	if cfg.Cache != nil {
		key := cfg.Cache.Key("shot_mode", shotURL)
		var cached string
		if cfg.Cache.Get(ctx, key, &cached) {
			return cfg.gateResult(ctx, p, shotURL, cached)
		}
		mode := cfg.judgeScreenshot(ctx, shotURL)
		cfg.Cache.Set(ctx, key, mode)
		return cfg.gateResult(ctx, p, shotURL, mode)
	}

	return cfg.gateResult(ctx, p, shotURL, cfg.judgeScreenshot(ctx, shotURL))
}

// judgeScreenshot fetches and scores one screenshot, returning the gate
// mode as a string (the cacheable form).
func (cfg *Config) judgeScreenshot(ctx context.Context, shotURL string) string {
	result, err := cfg.Download(ctx, shotURL, DownloadOpts{MaxBytes: screenshotMaxBytes})
	if err != nil || result == nil {
		return ModeLogo.String()
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		return ModeLogo.String()
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ModeLogo.String()
	}

	if cfg.AnalyzeQuality(img) == RejectLowInfo {
		slog.Debug("brandmark: screenshot rejected as low-information", "url", shotURL)
		return ModeCategory.String()
	}
	return ModeScreenshot.String()
}

// gateResult projects a judged mode onto the full render target.
func (cfg *Config) gateResult(ctx context.Context, p Product, shotURL, mode string) GateResult {
	switch mode {
	case ModeScreenshot.String():
		return GateResult{Mode: ModeScreenshot, ScreenshotURL: shotURL}
	case ModeCategory.String():
		token := ResolveCategory(p.Category, p.Categories, p.IsHardware)
		return GateResult{Mode: ModeCategory, Category: token.Visual()}
	default:
		return cfg.logoFallback(ctx, p)
	}
}

func (cfg *Config) logoFallback(ctx context.Context, p Product) GateResult {
	logo := cfg.ResolveLogo(ctx, p.Name, LogoInput{
		PrimaryURL:   p.LogoURL,
		SecondaryURL: p.SecondaryLogoURL,
		WebsiteURL:   p.Website,
		SourceURL:    p.SourceURL,
	})
	return GateResult{Mode: ModeLogo, Logo: logo}
}
