package brandmark

import (
	"context"
	"fmt"
)

// LogoInput holds the image-bearing fields of a record. All optional.
type LogoInput struct {
	PrimaryURL   string // declared logo URL
	SecondaryURL string // alternate logo URL
	WebsiteURL   string // product website
	SourceURL    string // page the record was imported from
}

// LogoCandidates builds the ordered fallback list for a record:
// declared logo, alternate logo, logo-service URL keyed by the website
// host, logo-service URL keyed by the source host. Each step contributes
// only when it yields a new, well-formed URL; steps that can't derive a
// valid host are skipped. Insertion order is priority order and no
// candidate repeats.
func (cfg *Config) LogoCandidates(in LogoInput) []string {
	cfg.defaults()

	seen := make(map[string]bool, 4)
	var list []string
	add := func(u string) {
		if !IsValid(u) {
			return
		}
		n := Normalize(u)
		if seen[n] {
			return
		}
		seen[n] = true
		list = append(list, n)
	}

	add(in.PrimaryURL)
	add(in.SecondaryURL)
	if host := hostOf(in.WebsiteURL); host != "" {
		add(fmt.Sprintf(cfg.LogoServiceTemplate, host))
	}
	if host := hostOf(in.SourceURL); host != "" {
		add(fmt.Sprintf(cfg.LogoServiceTemplate, host))
	}
	return list
}

// candidatesWithOpenGraph extends LogoCandidates with the website's
// og:image when FetchOpenGraph is enabled. Fetch failures are silent.
func (cfg *Config) candidatesWithOpenGraph(ctx context.Context, in LogoInput) []string {
	list := cfg.LogoCandidates(in)
	if !cfg.FetchOpenGraph {
		return list
	}
	og := cfg.fetchOpenGraphImage(ctx, in.WebsiteURL)
	if og == "" || !IsValid(og) {
		return list
	}
	og = Normalize(og)
	for _, u := range list {
		if u == og {
			return list
		}
	}
	return append(list, og)
}
