package brandmark

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Verdict is the outcome of the low-information heuristic.
type Verdict int

const (
	Accept        Verdict = iota // real page content; show the screenshot
	RejectLowInfo                // blank/near-solid render; substitute a placeholder
)

func (v Verdict) String() string {
	if v == Accept {
		return "accept"
	}
	return "reject_low_info"
}

// QualityThresholds are the tuned knobs of the low-information heuristic.
// The values were tuned empirically against real screenshot-service output;
// override individual fields rather than re-deriving them.
type QualityThresholds struct {
	MinWidth  int // reject below this natural width
	MinHeight int // reject below this natural height

	ThumbWidth     int // downsample target width
	MinThumbHeight int // floor for the aspect-scaled thumbnail height

	AlphaFloor uint8 // pixels with alpha below this are ignored

	MinValidPixels  int     // reject near-fully-transparent renders
	DominantRatio   float64 // largest-bucket share that pairs with DominantStdDev
	DominantStdDev  float64 // luminance stddev ceiling paired with DominantRatio
	MinDistinct     int     // reject below this many occupied color buckets
	MinStdDev       float64 // reject below this luminance stddev outright
	HistogramLevels int     // quantization levels per color channel
}

// withDefaults fills zero-value knobs with the tuned constants, so a
// caller overriding one field keeps the defaults for the rest.
func (t QualityThresholds) withDefaults() QualityThresholds {
	d := DefaultThresholds()
	if t.MinWidth <= 0 {
		t.MinWidth = d.MinWidth
	}
	if t.MinHeight <= 0 {
		t.MinHeight = d.MinHeight
	}
	if t.ThumbWidth <= 0 {
		t.ThumbWidth = d.ThumbWidth
	}
	if t.MinThumbHeight <= 0 {
		t.MinThumbHeight = d.MinThumbHeight
	}
	if t.AlphaFloor == 0 {
		t.AlphaFloor = d.AlphaFloor
	}
	if t.MinValidPixels <= 0 {
		t.MinValidPixels = d.MinValidPixels
	}
	if t.DominantRatio <= 0 {
		t.DominantRatio = d.DominantRatio
	}
	if t.DominantStdDev <= 0 {
		t.DominantStdDev = d.DominantStdDev
	}
	if t.MinDistinct <= 0 {
		t.MinDistinct = d.MinDistinct
	}
	if t.MinStdDev <= 0 {
		t.MinStdDev = d.MinStdDev
	}
	if t.HistogramLevels <= 0 {
		t.HistogramLevels = d.HistogramLevels
	}
	return t
}

// DefaultThresholds returns the tuned heuristic constants.
func DefaultThresholds() QualityThresholds {
	return QualityThresholds{
		MinWidth:        580,
		MinHeight:       300,
		ThumbWidth:      64,
		MinThumbHeight:  36,
		AlphaFloor:      32,
		MinValidPixels:  240,
		DominantRatio:   0.58,
		DominantStdDev:  36,
		MinDistinct:     42,
		MinStdDev:       20,
		HistogramLevels: 10,
	}
}

// AnalyzeQuality decides whether a rendered screenshot carries enough
// visual information to display. Degenerate dimensions reject outright;
// otherwise the image is downsampled to a small thumbnail and judged on
// luminance spread and color diversity: a failed render is a near-solid
// block, a real page is not. Pure and deterministic for a given image.
// A panic anywhere in sampling fails open to Accept: a screenshot we
// could not judge is better shown than hidden.
func (cfg *Config) AnalyzeQuality(img image.Image) (verdict Verdict) {
	cfg.defaults()
	t := cfg.Thresholds

	defer func() {
		if r := recover(); r != nil {
			if cfg.OnPanic != nil {
				cfg.OnPanic("qualitySampling", r)
			}
			slog.Warn("brandmark: quality sampling panicked, accepting image", "panic", r)
			verdict = Accept
		}
	}()

	b := img.Bounds()
	if b.Dx() < t.MinWidth || b.Dy() < t.MinHeight {
		return RejectLowInfo
	}

	thumb := downsample(img, t.ThumbWidth, t.MinThumbHeight)
	stats := sampleThumbnail(thumb, t)

	if stats.valid < t.MinValidPixels {
		return RejectLowInfo
	}
	dominant := float64(stats.largestBucket) / float64(stats.valid)
	switch {
	case dominant > t.DominantRatio && stats.stdDev < t.DominantStdDev:
		return RejectLowInfo
	case stats.distinctBuckets < t.MinDistinct:
		return RejectLowInfo
	case stats.stdDev < t.MinStdDev:
		return RejectLowInfo
	}
	return Accept
}

// downsample scales img to width w, preserving aspect ratio with a floor
// of minH on the height.
func downsample(img image.Image, w, minH int) *image.RGBA {
	b := img.Bounds()
	h := b.Dy() * w / b.Dx()
	if h < minH {
		h = minH
	}
	thumb := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, b, draw.Src, nil)
	return thumb
}

// pixelStats aggregates per-thumbnail sampling results.
type pixelStats struct {
	valid           int     // pixels above the alpha floor
	stdDev          float64 // luminance standard deviation over valid pixels
	distinctBuckets int     // occupied quantized color buckets
	largestBucket   int     // size of the single biggest bucket
}

// sampleThumbnail walks every thumbnail pixel, skipping near-transparent
// ones, and accumulates luminance statistics plus a quantized color
// histogram (HistogramLevels buckets per channel).
func sampleThumbnail(thumb *image.RGBA, t QualityThresholds) pixelStats {
	levels := t.HistogramLevels
	histogram := make(map[int]int)

	var sum, sumSq float64
	valid := 0

	for i := 0; i < len(thumb.Pix); i += 4 {
		r, g, b, a := thumb.Pix[i], thumb.Pix[i+1], thumb.Pix[i+2], thumb.Pix[i+3]
		if a < t.AlphaFloor {
			continue
		}
		valid++

		// Rec. 709 luma weights.
		lum := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
		sum += lum
		sumSq += lum * lum

		bucket := (int(r)*levels/256)*levels*levels +
			(int(g)*levels/256)*levels +
			int(b)*levels/256
		histogram[bucket]++
	}

	stats := pixelStats{valid: valid, distinctBuckets: len(histogram)}
	for _, n := range histogram {
		if n > stats.largestBucket {
			stats.largestBucket = n
		}
	}
	if valid > 0 {
		mean := sum / float64(valid)
		variance := sumSq/float64(valid) - mean*mean
		if variance > 0 {
			stats.stdDev = math.Sqrt(variance)
		}
	}
	return stats
}
