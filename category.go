package brandmark

import "strings"

// CategoryToken is the closed set of placeholder themes. Resolution is
// deterministic: first matching keyword group in fixed priority order wins.
type CategoryToken int

const (
	CategoryHardware CategoryToken = iota
	CategoryCoding
	CategoryImage
	CategoryVideo
	CategoryVoice
	CategoryWriting
	CategoryEducation
	CategoryHealthcare
	CategoryFinance
	CategoryAgent
	CategoryOther
)

func (c CategoryToken) String() string {
	switch c {
	case CategoryHardware:
		return "hardware"
	case CategoryCoding:
		return "coding"
	case CategoryImage:
		return "image"
	case CategoryVideo:
		return "video"
	case CategoryVoice:
		return "voice"
	case CategoryWriting:
		return "writing"
	case CategoryEducation:
		return "education"
	case CategoryHealthcare:
		return "healthcare"
	case CategoryFinance:
		return "finance"
	case CategoryAgent:
		return "agent"
	default:
		return "other"
	}
}

// categoryKeywords maps tokens to the substrings that select them.
// Slice order is the match priority order; CategoryOther is the fallback.
var categoryKeywords = []struct {
	token    CategoryToken
	keywords []string
}{
	{CategoryHardware, []string{"hardware", "robot", "device", "chip", "wearable", "drone", "sensor"}},
	{CategoryCoding, []string{"coding", "code", "developer", "programming", "devtool", "software", "engineering"}},
	{CategoryImage, []string{"image", "photo", "design", "art", "avatar", "picture", "graphic"}},
	{CategoryVideo, []string{"video", "film", "animation", "movie"}},
	{CategoryVoice, []string{"voice", "audio", "speech", "music", "sound", "podcast"}},
	{CategoryWriting, []string{"writing", "writer", "copywriting", "text", "content", "blog", "translation"}},
	{CategoryEducation, []string{"education", "learning", "tutor", "course", "teaching", "study"}},
	{CategoryHealthcare, []string{"health", "medical", "fitness", "wellness", "therapy"}},
	{CategoryFinance, []string{"finance", "financial", "invest", "trading", "banking", "accounting", "crypto"}},
	{CategoryAgent, []string{"agent", "assistant", "automation", "workflow", "chatbot"}},
}

// ResolveCategory maps a record's category text onto a CategoryToken.
// The hardware flag wins unconditionally; otherwise the primary category
// and the secondary category list are scanned together, lowercased, and
// the first keyword group with a hit decides. No hit means CategoryOther.
func ResolveCategory(category string, categories []string, hardware bool) CategoryToken {
	if hardware {
		return CategoryHardware
	}
	text := strings.ToLower(category + " " + strings.Join(categories, " "))
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.token
			}
		}
	}
	return CategoryOther
}

// CategoryVisual is the fixed themed placeholder for a token: an icon
// name, a display label, and a two-stop background gradient.
type CategoryVisual struct {
	Icon         string
	Label        string
	GradientFrom string
	GradientTo   string
}

// Visual returns the placeholder theme for the token. The mapping is a
// total function over the closed token set.
func (c CategoryToken) Visual() CategoryVisual {
	switch c {
	case CategoryHardware:
		return CategoryVisual{Icon: "cpu", Label: "Hardware", GradientFrom: "#334155", GradientTo: "#0f172a"}
	case CategoryCoding:
		return CategoryVisual{Icon: "terminal", Label: "Coding", GradientFrom: "#1e3a5f", GradientTo: "#0b1120"}
	case CategoryImage:
		return CategoryVisual{Icon: "image", Label: "Image", GradientFrom: "#7c3aed", GradientTo: "#312e81"}
	case CategoryVideo:
		return CategoryVisual{Icon: "clapperboard", Label: "Video", GradientFrom: "#be185d", GradientTo: "#4c0519"}
	case CategoryVoice:
		return CategoryVisual{Icon: "mic", Label: "Voice", GradientFrom: "#0e7490", GradientTo: "#083344"}
	case CategoryWriting:
		return CategoryVisual{Icon: "pen-line", Label: "Writing", GradientFrom: "#b45309", GradientTo: "#451a03"}
	case CategoryEducation:
		return CategoryVisual{Icon: "graduation-cap", Label: "Education", GradientFrom: "#15803d", GradientTo: "#052e16"}
	case CategoryHealthcare:
		return CategoryVisual{Icon: "heart-pulse", Label: "Healthcare", GradientFrom: "#dc2626", GradientTo: "#450a0a"}
	case CategoryFinance:
		return CategoryVisual{Icon: "coins", Label: "Finance", GradientFrom: "#a16207", GradientTo: "#422006"}
	case CategoryAgent:
		return CategoryVisual{Icon: "bot", Label: "Agent", GradientFrom: "#4338ca", GradientTo: "#1e1b4b"}
	default:
		return CategoryVisual{Icon: "sparkles", Label: "AI Tool", GradientFrom: "#475569", GradientTo: "#1e293b"}
	}
}
