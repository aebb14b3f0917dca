package sitegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alnah/go-sitegen/internal/yamlutil"
)

// DefaultColorPath is the theme token used for the preview image background.
const DefaultColorPath = "primary.200"

var hexDigits = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// Theme is a design-system color configuration.
//
// Colors maps a family to shades, nested to any depth, with hex strings at
// the leaves. Aliases redirect a family name to another family, for example
// "primary" to "forest-green". Only the first path segment is aliased.
type Theme struct {
	Colors  map[string]any    `yaml:"colors"`
	Aliases map[string]string `yaml:"aliases"`
}

// ParseTheme decodes a theme from YAML. Unknown top-level keys are rejected.
func ParseTheme(data []byte) (Theme, error) {
	var t Theme
	if err := yamlutil.UnmarshalStrict(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	if len(t.Colors) == 0 {
		return Theme{}, fmt.Errorf("parsing theme: no colors defined")
	}
	return t, nil
}

// ResolveColor looks up colorPath in the theme and converts the hex string
// found there to RGB.
//
// Paths are dotted, indexed, or both: "primary.200", "primary[200]",
// "brand.light[100]". Any failure is a *ConfigLookupError naming the path and
// the failing segment.
func ResolveColor(theme Theme, colorPath string) (RGBColor, error) {
	segments, err := splitColorPath(colorPath)
	if err != nil {
		return RGBColor{}, &ConfigLookupError{Path: colorPath, Err: err}
	}

	// Errors name segments as written, not as aliased.
	keys := append([]string(nil), segments...)
	if target, ok := theme.Aliases[keys[0]]; ok {
		keys[0] = target
	}

	var cur any = theme.Colors
	for i, key := range keys {
		m, ok := asMapping(cur)
		if !ok {
			return RGBColor{}, &ConfigLookupError{
				Path:    colorPath,
				Segment: segments[i],
				Err:     fmt.Errorf("%w: parent is %T, not a mapping", ErrMissingSegment, cur),
			}
		}
		next, ok := m[key]
		if !ok {
			return RGBColor{}, &ConfigLookupError{Path: colorPath, Segment: segments[i], Err: ErrMissingSegment}
		}
		cur = next
	}

	last := segments[len(segments)-1]
	hex, ok := cur.(string)
	if !ok {
		return RGBColor{}, &ConfigLookupError{
			Path:    colorPath,
			Segment: last,
			Err:     fmt.Errorf("%w: got %T", ErrNotAString, cur),
		}
	}

	rgb, err := ParseHexColor(hex)
	if err != nil {
		return RGBColor{}, &ConfigLookupError{Path: colorPath, Segment: last, Err: err}
	}
	return rgb, nil
}

// ParseHexColor converts "#rrggbb" to RGB. The leading '#' is optional.
// 8-digit values carry alpha, which is ignored; 3- and 4-digit shorthand
// expands each digit ("#abc" is "#aabbcc").
func ParseHexColor(s string) (RGBColor, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexDigits.MatchString(digits) {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}

	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits[:3] {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6:
	case 8:
		digits = digits[:6]
	default:
		return RGBColor{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidHexColor, s, len(digits))
	}

	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: %q: %v", ErrInvalidHexColor, s, err)
	}
	r, g, b := c.RGB255()
	return RGBColor{Red: r, Green: g, Blue: b}, nil
}

// splitColorPath splits "a.b[c]" or `a["b"]` into segments.
func splitColorPath(p string) ([]string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidColorPath)
	}

	var (
		segments []string
		cur      strings.Builder
	)
	flush := func() error {
		if cur.Len() == 0 {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidColorPath, p)
		}
		segments = append(segments, cur.String())
		cur.Reset()
		return nil
	}

	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '.':
			if err := flush(); err != nil {
				return nil, err
			}
		case '[':
			end := strings.IndexByte(p[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed '[' in %q", ErrInvalidColorPath, p)
			}
			if cur.Len() > 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			cur.WriteString(strings.Trim(p[i+1:i+end], `"'`))
			if err := flush(); err != nil {
				return nil, err
			}
			i += end
			// Accept "a[1].b" as well as "a[1][2]".
			if i+1 < len(p) && p[i+1] == '.' {
				i++
			}
		case ']':
			return nil, fmt.Errorf("%w: unexpected ']' in %q", ErrInvalidColorPath, p)
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 || len(segments) == 0 || p[len(p)-1] == '.' {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return segments, nil
}

// asMapping returns v as a string-keyed mapping. YAML decoders produce
// either map[string]any or map[any]any for nested mappings.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
