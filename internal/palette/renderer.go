package palette

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	ioutils "github.com/handiism/wikiart-palette/internal/io"
	"github.com/spf13/afero"
)

// HexCodesFileBase is the base name of the plain-text hex code list.
const HexCodesFileBase = "hex_codes_list"

// Renderer draws palettes as SVG documents and writes them to disk.
//
// Example:
//
//	r := NewRenderer(afero.NewOsFs())
//	out, err := r.Write("/palettes", ModeShade.FileBase(), Sort(hexes, ModeShade))
//	fmt.Println(out.SVGPath) // "/palettes/palette_shade.svg"
//
// The SVG has one rect per color:
//
//	<svg width="200" height="200" ...>
//	<rect x="0" y="0" width="100" height="100" fill="#ff0000" />
//	<rect x="100" y="0" width="100" height="100" fill="#00ff00" />
//	</svg>
type Renderer struct {
	fs afero.Fs
}

// NewRenderer creates a Renderer writing to fs.
func NewRenderer(fs afero.Fs) *Renderer {
	return &Renderer{fs: fs}
}

// Output holds the paths written by Renderer.Write.
type Output struct {
	SVGPath      string
	HexCodesPath string
}

// RenderSVG writes the palette grid for hexes, in the given order, to w.
func (r *Renderer) RenderSVG(w io.Writer, hexes []string) {
	size := CanvasSize(len(hexes))

	canvas := svg.New(w)
	canvas.Start(size, size)
	for _, cell := range Layout(hexes) {
		canvas.Rect(cell.X, cell.Y, TileSize, TileSize, fmt.Sprintf(`fill="%s"`, cell.Fill))
	}
	canvas.End()
}

// Write renders hexes to "<base>.svg" and lists them, one per line, in
// "hex_codes_list.txt". Both names avoid overwriting existing files.
func (r *Renderer) Write(dir, base string, hexes []string) (*Output, error) {
	var buf bytes.Buffer
	r.RenderSVG(&buf, hexes)

	svgPath, err := ioutils.UniqueFileName(r.fs, dir, base, ".svg")
	if err != nil {
		return nil, err
	}
	if err := ioutils.WriteFile(r.fs, svgPath, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write palette: %w", err)
	}

	hexPath, err := ioutils.UniqueFileName(r.fs, dir, HexCodesFileBase, ".txt")
	if err != nil {
		return nil, err
	}
	if err := ioutils.WriteLines(r.fs, hexPath, hexes); err != nil {
		return nil, fmt.Errorf("failed to write hex codes: %w", err)
	}

	return &Output{SVGPath: svgPath, HexCodesPath: hexPath}, nil
}
