package brandmark

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func rgba(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// makePNG returns a PNG of the given dimensions filled with fill.
func makePNG(w, h int, fill color.RGBA) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic("makePNG: " + err.Error())
	}
	return buf.Bytes()
}

func newImageServer(t *testing.T, contentType string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// failTransport fails every request and counts the attempts, for tests
// that assert no network traffic happens.
type failTransport struct{ calls int }

func (ft *failTransport) RoundTrip(*http.Request) (*http.Response, error) {
	ft.calls++
	return nil, errors.New("unexpected network call")
}

func TestLogoState_FailuresExhaustExactly(t *testing.T) {
	t.Parallel()

	candidates := []string{"https://a.com/1.png", "https://a.com/2.png", "https://a.com/3.png"}
	s := NewLogoState("acme", candidates)

	for i := range candidates {
		if s.Exhausted() {
			t.Fatalf("exhausted after %d failures, want %d", i, len(candidates))
		}
		cur, ok := s.Current()
		if !ok || cur != candidates[i] {
			t.Fatalf("Current() = %q, %v; want %q", cur, ok, candidates[i])
		}
		s.Observe("acme", ProbeFailed)
	}

	if !s.Exhausted() {
		t.Error("expected Exhausted after all candidates failed")
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() should report no candidate once exhausted")
	}
	// Observation past exhaustion is discarded, never an index overrun.
	if s.Observe("acme", ProbeFailed) {
		t.Error("Observe after exhaustion should be discarded")
	}
}

func TestLogoState_StaleKeyDiscarded(t *testing.T) {
	t.Parallel()

	s := NewLogoState("acme", []string{"https://a.com/1.png"})
	if s.Observe("other-product", ProbeFailed) {
		t.Error("observation with stale key should be discarded")
	}
	if s.Exhausted() {
		t.Error("stale observation must not advance state")
	}
}

func TestLogoState_DegenerateAdvancesLikeFailure(t *testing.T) {
	t.Parallel()

	s := NewLogoState("acme", []string{"https://a.com/1.png", "https://a.com/2.png"})
	s.Observe("acme", ProbeDegenerate)
	cur, ok := s.Current()
	if !ok || cur != "https://a.com/2.png" {
		t.Errorf("Current() after degenerate = %q, %v; want second candidate", cur, ok)
	}
}

func TestLogoState_OKIsTerminalForDisplay(t *testing.T) {
	t.Parallel()

	s := NewLogoState("acme", []string{"https://a.com/1.png", "https://a.com/2.png"})
	s.Observe("acme", ProbeOK)
	cur, _ := s.Current()
	if cur != "https://a.com/1.png" {
		t.Errorf("ProbeOK must not advance; Current() = %q", cur)
	}
}

func TestLogoState_EmptyListStartsExhausted(t *testing.T) {
	t.Parallel()

	s := NewLogoState("acme", nil)
	if !s.Exhausted() {
		t.Error("empty candidate list should start exhausted")
	}
}

func TestResolveLogo_FirstWorkingCandidateWins(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer bad.Close()
	good := newImageServer(t, "image/png", makePNG(64, 64, color.RGBA{R: 40, G: 90, B: 200, A: 255}))

	cfg := &Config{HTTPClient: good.Client()}
	res := cfg.ResolveLogo(context.Background(), "Acme", LogoInput{
		PrimaryURL:   bad.URL + "/logo.png",
		SecondaryURL: good.URL + "/logo.png",
	})

	if res.Kind != LogoImage {
		t.Fatalf("Kind = %v, want LogoImage", res.Kind)
	}
	if res.URL != good.URL+"/logo.png" {
		t.Errorf("URL = %q, want second candidate", res.URL)
	}
}

func TestResolveLogo_UndecodableBodyAdvances(t *testing.T) {
	// 200 + image/* but garbage bytes: the degenerate-image case.
	degenerate := newImageServer(t, "image/png", []byte("not really an image"))
	good := newImageServer(t, "image/png", makePNG(64, 64, color.RGBA{R: 200, G: 30, B: 30, A: 255}))

	cfg := &Config{HTTPClient: good.Client()}
	res := cfg.ResolveLogo(context.Background(), "Acme", LogoInput{
		PrimaryURL:   degenerate.URL + "/logo.png",
		SecondaryURL: good.URL + "/logo.png",
	})

	if res.Kind != LogoImage || res.URL != good.URL+"/logo.png" {
		t.Errorf("got %+v, want the decodable second candidate", res)
	}
}

func TestResolveLogo_ExhaustionRendersMonogram(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer bad.Close()

	cfg := &Config{HTTPClient: bad.Client()}
	res := cfg.ResolveLogo(context.Background(), "Acme Tools", LogoInput{
		PrimaryURL:   bad.URL + "/1.png",
		SecondaryURL: bad.URL + "/2.png",
	})

	if res.Kind != LogoMonogram {
		t.Fatalf("Kind = %v, want LogoMonogram", res.Kind)
	}
	if res.Monogram != "AT" {
		t.Errorf("Monogram = %q, want AT", res.Monogram)
	}
}

func TestResolveLogo_EmptyInputsSkipNetworkEntirely(t *testing.T) {
	t.Parallel()

	ft := &failTransport{}
	cfg := &Config{HTTPClient: &http.Client{Transport: ft}}

	res := cfg.ResolveLogo(context.Background(), "Acme", LogoInput{WebsiteURL: "unknown"})

	if res.Kind != LogoMonogram || res.Monogram != "A" {
		t.Errorf("got %+v, want immediate monogram A", res)
	}
	if ft.calls != 0 {
		t.Errorf("network calls = %d, want 0", ft.calls)
	}
}

func TestResolveLogo_RegisteredPlaceholderRejected(t *testing.T) {
	placeholder := makePNG(64, 64, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	srv := newImageServer(t, "image/png", placeholder)

	cfg := &Config{HTTPClient: srv.Client()}
	img, _, err := image.Decode(bytes.NewReader(placeholder))
	if err != nil {
		t.Fatalf("decode placeholder: %v", err)
	}
	cfg.RegisterPlaceholder(img)

	res := cfg.ResolveLogo(context.Background(), "Acme", LogoInput{
		PrimaryURL: srv.URL + "/logo.png",
	})

	if res.Kind != LogoMonogram {
		t.Errorf("Kind = %v, want LogoMonogram (placeholder fingerprint should reject)", res.Kind)
	}
}

func TestResolveLogo_ProbeEventsEmitted(t *testing.T) {
	good := newImageServer(t, "image/png", makePNG(48, 48, color.RGBA{R: 10, G: 200, B: 80, A: 255}))

	var events []ProbeEvent
	cfg := &Config{
		HTTPClient: good.Client(),
		OnProbe:    func(e ProbeEvent) { events = append(events, e) },
	}
	cfg.ResolveLogo(context.Background(), "Acme", LogoInput{PrimaryURL: good.URL + "/logo.png"})

	if len(events) != 1 {
		t.Fatalf("probe events = %d, want 1", len(events))
	}
	if events[0].Outcome != ProbeOK || events[0].Key != "Acme" {
		t.Errorf("unexpected event %+v", events[0])
	}
}
