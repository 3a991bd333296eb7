// Package style models the small slice of CSS that animated mounting
// needs: inline property bags, the transition shorthand, and parsers
// for the transform, opacity, and color values that keyframes carry.
package style

// Canonical property keys with animation semantics. Bags may carry any
// additional keys a host understands.
const (
	PropOpacity   = "opacity"
	PropTransform = "transform"
)

// Props is an inline style bag keyed by CSS property name.
type Props map[string]string

// Clone returns an independent copy of the bag. A nil bag clones to nil.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a new bag with every entry of other laid over p. Neither
// receiver nor argument is modified.
func (p Props) Merge(other Props) Props {
	out := make(Props, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Equal reports whether both bags hold exactly the same entries.
func (p Props) Equal(other Props) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
