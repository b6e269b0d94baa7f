package ioutils

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"github.com/handiism/wikiart-palette/internal/model"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// boxKernel weighs every source pixel equally. When scaling down, the
// kernel support is stretched by the scale factor, so a 1x1 destination
// averages the whole source image.
var boxKernel = &draw.Kernel{
	Support: 0.5,
	At:      func(t float64) float64 { return 1 },
}

// ImageService provides image processing operations for artwork images.
//
// ImageService is used to:
//   - Sample the representative color of an artwork
//   - Resize downloaded images to fit maximum dimensions
//   - Convert downloaded images to JPEG format
//
// Example usage:
//
//	svc := NewImageService()
//
//	imageData, _ := client.DownloadBytes(ctx, imageURL)
//	rgb, _ := svc.AverageColor(imageData)
//	fmt.Println(rgb.Hex())
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// AverageColor decodes an image and reduces it to a single pixel.
//
// The image is first flattened to opaque RGB (alpha is dropped, not
// blended), then box-filtered down to 1x1, so the result is the mean
// color over the whole image rather than any single original pixel.
//
// Supported formats: JPEG, PNG, GIF, WebP, BMP and TIFF.
func (s *ImageService) AverageColor(data []byte) (model.RGB, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return model.RGB{}, err
	}

	src := toOpaqueRGB(img)
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	boxKernel.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	c := dst.RGBAAt(0, 0)
	return model.RGB{R: c.R, G: c.G, B: c.B}, nil
}

// toOpaqueRGB copies the color channels of img into an opaque RGBA image.
func toOpaqueRGB(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return out
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. Images already within the limits keep
// their size but are still re-encoded.
//
// Returns the resized image as JPEG-encoded bytes.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// A 1500x1000 image becomes 1000x666
//	resized, err := svc.ResizeImage(imageData, 1000, 1000)
func (s *ImageService) ResizeImage(data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ConvertToJPEG converts an image to JPEG format with 90% quality.
//
// Downloaded files are always named image_<n>.jpg; this makes the content
// match the extension when the site serves PNG or WebP.
func (s *ImageService) ConvertToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
