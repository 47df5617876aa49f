package brandmark

import (
	"context"
	"log/slog"
)

// ProbeOutcome is what a single candidate probe observed.
type ProbeOutcome int

const (
	ProbeOK         ProbeOutcome = iota // candidate loaded with real dimensions
	ProbeFailed                         // fetch failed (network, non-200, non-image)
	ProbeDegenerate                     // loaded but zero/undecodable dimensions or a known generic placeholder
)

func (o ProbeOutcome) String() string {
	switch o {
	case ProbeOK:
		return "ok"
	case ProbeDegenerate:
		return "degenerate"
	default:
		return "failed"
	}
}

// LogoState is the explicit resolution state machine for one candidate
// list: Showing(index) until a probe succeeds, Exhausted after every
// candidate has failed. The index only moves forward. Observations are
// tagged with the key the probe was started under; a key that no longer
// matches (the record changed underneath a pending probe) is discarded
// without touching state.
type LogoState struct {
	key        string
	candidates []string
	index      int
	exhausted  bool
}

// NewLogoState builds the state machine for a candidate list.
// An empty list starts exhausted.
func NewLogoState(key string, candidates []string) *LogoState {
	return &LogoState{
		key:        key,
		candidates: candidates,
		exhausted:  len(candidates) == 0,
	}
}

// Key returns the identity token observations must carry.
func (s *LogoState) Key() string { return s.key }

// Exhausted reports whether every candidate has failed.
func (s *LogoState) Exhausted() bool { return s.exhausted }

// Current returns the candidate being shown, or ("", false) once exhausted.
func (s *LogoState) Current() (string, bool) {
	if s.exhausted {
		return "", false
	}
	return s.candidates[s.index], true
}

// Observe feeds a probe outcome into the machine. Failure and degenerate
// outcomes advance to the next candidate, flipping to Exhausted past the
// last one; ProbeOK is terminal for display and changes nothing. Returns
// false when the observation was discarded (stale key or already exhausted).
func (s *LogoState) Observe(key string, outcome ProbeOutcome) bool {
	if key != s.key || s.exhausted {
		return false
	}
	if outcome == ProbeOK {
		return true
	}
	s.index++
	if s.index >= len(s.candidates) {
		s.exhausted = true
	}
	return true
}

// LogoKind tags what a resolution produced.
type LogoKind int

const (
	LogoImage    LogoKind = iota // a candidate URL loaded
	LogoMonogram                 // every candidate failed; render initials
)

// LogoResult is the terminal render target of a logo resolution.
// Exactly one of URL/Monogram is meaningful, per Kind.
type LogoResult struct {
	Kind        LogoKind
	URL         string            // candidate that loaded (Kind == LogoImage)
	Monogram    string            // initials placeholder (Kind == LogoMonogram)
	Attribution *ImageAttribution // creator/copyright from the loaded image, if any
}

// ResolveLogo walks the candidate list for a record, probing each URL in
// priority order, and returns the first candidate that loads as a real
// image, or the monogram once the list is exhausted. An empty candidate
// list short-circuits to the monogram with no network traffic. Never
// returns an error: every failure mode is a transition, not a fault.
func (cfg *Config) ResolveLogo(ctx context.Context, name string, in LogoInput) LogoResult {
	cfg.defaults()

	state := NewLogoState(name, cfg.candidatesWithOpenGraph(ctx, in))
	for {
		candidate, ok := state.Current()
		if !ok {
			break
		}
		outcome, attr := cfg.probeCandidate(ctx, candidate)
		if cfg.OnProbe != nil {
			cfg.OnProbe(ProbeEvent{Key: state.Key(), URL: candidate, Outcome: outcome})
		}
		state.Observe(state.Key(), outcome)
		if outcome == ProbeOK {
			return LogoResult{Kind: LogoImage, URL: candidate, Attribution: attr}
		}
		slog.Debug("brandmark: logo candidate rejected", "url", candidate, "outcome", outcome.String())
	}
	return LogoResult{Kind: LogoMonogram, Monogram: Monogram(name)}
}
