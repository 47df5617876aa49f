package brandmark

import (
	"bytes"

	"github.com/bep/imagemeta"
)

// ImageAttribution holds the creator/copyright fields embedded in a logo
// image, when present. Aggregator cards credit logo sources from these.
type ImageAttribution struct {
	Creator      string // EXIF Artist or XMP dc:creator
	Copyright    string // EXIF Copyright or XMP dc:rights
	WebStatement string // XMP rights URL, if declared
}

// attributionTags maps (source, tag-name) → true for the fields we keep.
var attributionTags = map[imagemeta.Source]map[string]bool{
	imagemeta.EXIF: {
		"Artist":    true,
		"Copyright": true,
	},
	imagemeta.XMP: {
		"Creator":      true,
		"Rights":       true,
		"WebStatement": true,
	},
}

// ExtractAttribution parses EXIF/XMP attribution fields from raw image
// bytes. Returns nil when the data is empty, unparseable, or carries no
// attribution. Graceful degradation: never returns an error.
func ExtractAttribution(data []byte) *ImageAttribution {
	if len(data) == 0 {
		return nil
	}

	attr := &ImageAttribution{}
	found := false

	_, err := imagemeta.Decode(imagemeta.Options{
		R:       bytes.NewReader(data),
		Sources: imagemeta.EXIF | imagemeta.XMP,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			if tags, ok := attributionTags[ti.Source]; ok {
				return tags[ti.Tag]
			}
			return false
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			s := tagValueString(ti.Value)
			if s == "" {
				return nil
			}
			switch ti.Tag {
			case "Artist", "Creator":
				attr.Creator = s
			case "Copyright", "Rights":
				attr.Copyright = s
			case "WebStatement":
				attr.WebStatement = s
			default:
				return nil
			}
			found = true
			return nil
		},
	})

	if err != nil || !found {
		return nil
	}
	return attr
}

// tagValueString extracts a string from a tag value.
// XMP values may be string or []string (from altList/seqList).
func tagValueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
		return ""
	case []any:
		if len(val) > 0 {
			if s, ok := val[0].(string); ok {
				return s
			}
		}
		return ""
	default:
		return ""
	}
}
