package brandmark

import (
	"image"
	"sync"

	"github.com/corona10/goimagehash"
)

// fingerprintThreshold is the maximum Hamming distance between two dHash
// values below which an image counts as a registered placeholder.
const fingerprintThreshold = 10

// placeholderFilter recognizes the generic stand-in images (globes, grey
// initials, "no logo" tiles) that hostname-keyed logo services return
// with a 200 for unknown domains. Matching is perceptual, so recompressed
// or rescaled variants of a registered placeholder still match.
// Safe for concurrent use.
type placeholderFilter struct {
	mu     sync.Mutex
	hashes []*goimagehash.ImageHash
}

// RegisterPlaceholder fingerprints img so future probes reject
// perceptually identical responses as degenerate. Images that cannot be
// hashed are ignored.
func (cfg *Config) RegisterPlaceholder(img image.Image) {
	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return
	}
	cfg.placeholders.mu.Lock()
	cfg.placeholders.hashes = append(cfg.placeholders.hashes, hash)
	cfg.placeholders.mu.Unlock()
}

// matches reports whether img is perceptually identical to a registered
// placeholder. Hashing failures fail open: the image is accepted.
func (f *placeholderFilter) matches(img image.Image) bool {
	f.mu.Lock()
	known := f.hashes
	f.mu.Unlock()
	if len(known) == 0 {
		return false
	}

	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return false
	}
	for _, h := range known {
		dist, err := hash.Distance(h)
		if err == nil && dist < fingerprintThreshold {
			return true
		}
	}
	return false
}
