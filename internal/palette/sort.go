package palette

import (
	"cmp"
	"slices"
	"strings"

	"github.com/handiism/wikiart-palette/internal/model"
)

// SortMode determines the order in which colors are laid out.
type SortMode int

const (
	// ModeBasic keeps the catalog order.
	ModeBasic SortMode = iota

	// ModeShade sorts by ascending hue, then ascending saturation.
	ModeShade

	// ModeLuminance sorts by ascending perceptual luminance.
	ModeLuminance
)

// ParseSortMode converts user input to a SortMode.
// Unrecognized values fall back to ModeBasic.
func ParseSortMode(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shade":
		return ModeShade
	case "luminance":
		return ModeLuminance
	default:
		return ModeBasic
	}
}

// String returns the mode name.
func (m SortMode) String() string {
	switch m {
	case ModeShade:
		return "shade"
	case ModeLuminance:
		return "luminance"
	default:
		return "basic"
	}
}

// FileBase returns the base name (without extension) of the palette SVG.
//
// Returns:
//   - "palette_basic" for ModeBasic
//   - "palette_shade" for ModeShade
//   - "palette_luminance" for ModeLuminance
func (m SortMode) FileBase() string {
	return "palette_" + m.String()
}

// Sort returns a sorted copy of hex colors.
//
// The sort is stable: colors with equal keys keep their relative order.
// Invalid hex strings are treated as black.
func Sort(hexes []string, mode SortMode) []string {
	sorted := slices.Clone(hexes)

	switch mode {
	case ModeShade:
		slices.SortStableFunc(sorted, func(a, b string) int {
			ha, sa, _ := parse(a).HSL()
			hb, sb, _ := parse(b).HSL()
			return cmp.Or(cmp.Compare(ha, hb), cmp.Compare(sa, sb))
		})
	case ModeLuminance:
		slices.SortStableFunc(sorted, func(a, b string) int {
			return cmp.Compare(parse(a).Luminance(), parse(b).Luminance())
		})
	}

	return sorted
}

func parse(hex string) model.RGB {
	rgb, _ := model.ParseHex(hex)
	return rgb
}
