// Package palette orders sampled colors and renders them as a tiled SVG.
//
// # Sorting
//
//	mode := palette.ParseSortMode("shade") // basic, shade or luminance
//	sorted := palette.Sort(hexes, mode)
//
// Supported modes:
//   - basic: catalog order
//   - shade: ascending hue, ties broken by ascending saturation
//   - luminance: ascending 0.2126*R + 0.7152*G + 0.0722*B
//
// # Rendering
//
// Colors fill a square grid of 100x100 tiles row by row. The grid side
// is the ceiling of the square root of the color count:
//
//	r := palette.NewRenderer(afero.NewOsFs())
//	out, err := r.Write(dir, mode.FileBase(), sorted)
package palette
