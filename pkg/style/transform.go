package style

import (
	"strconv"
	"strings"
)

// Transform is the decoded form of a transform property value.
type Transform struct {
	TranslateY float64 // vertical offset in pixels
	Scale      float64
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{Scale: 1}
}

// ParseTransform decodes comma-separated translateY(Npx) and scale(F)
// terms. Unrecognized or malformed terms are skipped so a bad keyframe
// degrades to identity rather than failing the mount.
func ParseTransform(s string) Transform {
	out := Identity()
	for _, term := range strings.Split(s, ",") {
		term = strings.TrimSpace(term)
		open := strings.IndexByte(term, '(')
		if open < 0 || !strings.HasSuffix(term, ")") {
			continue
		}
		name := strings.TrimSpace(term[:open])
		arg := strings.TrimSpace(term[open+1 : len(term)-1])
		switch name {
		case "translateY":
			arg = strings.TrimSpace(strings.TrimSuffix(arg, "px"))
			if v, err := strconv.ParseFloat(arg, 64); err == nil {
				out.TranslateY = v
			}
		case "scale":
			if v, err := strconv.ParseFloat(arg, 64); err == nil && v >= 0 {
				out.Scale = v
			}
		}
	}
	return out
}

// ParseOpacity decodes an opacity value clamped to [0, 1]. Malformed
// input reads as fully opaque.
func ParseOpacity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
