package brandmark

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// probeCandidate checks whether a logo candidate is worth displaying:
// it must download as an image, decode to non-zero dimensions, and not
// match a registered generic-placeholder fingerprint. Logo hosts answer
// 200 with an empty or stand-in image for unknown domains, so a
// successful fetch alone proves nothing.
func (cfg *Config) probeCandidate(ctx context.Context, rawURL string) (ProbeOutcome, *ImageAttribution) {
	result, err := cfg.Download(ctx, rawURL, DownloadOpts{MaxBytes: logoMaxBytes})
	if err != nil || result == nil {
		return ProbeFailed, nil
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		return ProbeDegenerate, nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ProbeDegenerate, nil
	}
	if cfg.placeholders.matches(img) {
		return ProbeDegenerate, nil
	}

	return ProbeOK, ExtractAttribution(result.Data)
}
