package model

import (
	"math"
	"testing"
)

func TestRGB_Hex(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want string
	}{
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{255, 0, 0}, "#ff0000"},
		{RGB{1, 2, 3}, "#010203"},
		{RGB{171, 205, 239}, "#abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHex_RoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 85 {
				rgb := RGB{uint8(r), uint8(g), uint8(b)}
				got, err := ParseHex(rgb.Hex())
				if err != nil {
					t.Fatalf("ParseHex(%q) failed: %v", rgb.Hex(), err)
				}
				if got != rgb {
					t.Errorf("ParseHex(%q) = %v, want %v", rgb.Hex(), got, rgb)
				}
			}
		}
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, s := range []string{"", "ff0000", "#ff00", "#gggggg"} {
		if _, err := ParseHex(s); err == nil {
			t.Errorf("ParseHex(%q) expected error", s)
		}
	}
}

// referenceHSL is the min/max conversion computed directly on channel values.
func referenceHSL(c RGB) (float64, float64, float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2
	if maxC == minC {
		return 0, 0, l
	}
	var s float64
	if l < 0.5 {
		s = (maxC - minC) / (maxC + minC)
	} else {
		s = (maxC - minC) / (2 - maxC - minC)
	}
	var h float64
	switch maxC {
	case r:
		h = (g - b) / (maxC - minC)
	case g:
		h = 2 + (b-r)/(maxC-minC)
	default:
		h = 4 + (r-g)/(maxC-minC)
	}
	h = math.Mod(h*60+360, 360)
	return h, s, l
}

func TestRGB_HSL(t *testing.T) {
	tests := []struct {
		rgb     RGB
		h, s, l float64
	}{
		{RGB{0, 0, 0}, 0, 0, 0},
		{RGB{255, 255, 255}, 0, 0, 1},
		{RGB{128, 128, 128}, 0, 0, 128.0 / 255},
		{RGB{255, 0, 0}, 0, 1, 0.5},
		{RGB{0, 255, 0}, 120, 1, 0.5},
		{RGB{0, 0, 255}, 240, 1, 0.5},
		{RGB{255, 0, 255}, 300, 1, 0.5},
	}

	const eps = 1e-9
	for _, tt := range tests {
		t.Run(tt.rgb.Hex(), func(t *testing.T) {
			h, s, l := tt.rgb.HSL()
			if math.Abs(h-tt.h) > eps || math.Abs(s-tt.s) > eps || math.Abs(l-tt.l) > eps {
				t.Errorf("HSL() = (%v, %v, %v), want (%v, %v, %v)", h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestRGB_HSLFromHexMatchesDirect(t *testing.T) {
	const eps = 1e-9
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				orig := RGB{uint8(r), uint8(g), uint8(b)}
				parsed, err := ParseHex(orig.Hex())
				if err != nil {
					t.Fatalf("ParseHex failed: %v", err)
				}
				h, s, l := parsed.HSL()
				wh, ws, wl := referenceHSL(orig)
				if math.Abs(h-wh) > eps || math.Abs(s-ws) > eps || math.Abs(l-wl) > eps {
					t.Fatalf("HSL(%s) = (%v, %v, %v), want (%v, %v, %v)", orig.Hex(), h, s, l, wh, ws, wl)
				}
				if h < 0 || h >= 360 {
					t.Fatalf("hue %v out of range for %s", h, orig.Hex())
				}
			}
		}
	}
}

func TestRGB_Luminance(t *testing.T) {
	white := RGB{255, 255, 255}.Luminance()
	black := RGB{0, 0, 0}.Luminance()
	if white <= black {
		t.Errorf("luminance(white) = %v should exceed luminance(black) = %v", white, black)
	}
	if black != 0 {
		t.Errorf("luminance(black) = %v, want 0", black)
	}

	// Linearity: L(a) + L(b) == L(a+b) for non-overflowing channels.
	a := RGB{10, 20, 30}
	b := RGB{40, 50, 60}
	sum := RGB{50, 70, 90}
	if math.Abs(a.Luminance()+b.Luminance()-sum.Luminance()) > 1e-9 {
		t.Errorf("luminance is not linear: %v + %v != %v", a.Luminance(), b.Luminance(), sum.Luminance())
	}

	if got, want := (RGB{255, 0, 0}).Luminance(), 0.2126*255; math.Abs(got-want) > 1e-9 {
		t.Errorf("luminance(red) = %v, want %v", got, want)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"english", English},
		{"English", English},
		{"en", English},
		{"français", French},
		{"Français", French},
		{"francais", French},
		{"fr", French},
		{"", English},
		{"deutsch", English},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLanguage(tt.input); got != tt.want {
				t.Errorf("ParseLanguage(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLanguage_PathAndSuffix(t *testing.T) {
	if English.Path() != "en" || English.Suffix() != "_en" {
		t.Errorf("English = (%q, %q)", English.Path(), English.Suffix())
	}
	if French.Path() != "fr" || French.Suffix() != "_fr" {
		t.Errorf("French = (%q, %q)", French.Path(), French.Suffix())
	}
}

func TestArtwork_ImageFileName(t *testing.T) {
	art := NewArtwork(0, "First", "/en/artist/first")
	if got := art.ImageFileName(); got != "image_1.jpg" {
		t.Errorf("ImageFileName() = %q, want %q", got, "image_1.jpg")
	}
	if got := ImageFileName(9); got != "image_10.jpg" {
		t.Errorf("ImageFileName(9) = %q, want %q", got, "image_10.jpg")
	}
}

func TestSampledColors_SkipsUnsampled(t *testing.T) {
	artworks := []*Artwork{
		NewArtwork(0, "a", "/a"),
		NewArtwork(1, "b", "/b"),
		NewArtwork(2, "c", "/c"),
	}
	artworks[0].Color = &RGB{255, 0, 0}
	artworks[2].Color = &RGB{0, 0, 255}

	got := SampledColors(artworks)
	want := []string{"#ff0000", "#0000ff"}
	if len(got) != len(want) {
		t.Fatalf("SampledColors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SampledColors()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if artworks[1].HasColor() {
		t.Error("HasColor() should be false for unsampled artwork")
	}
}

func TestTitlesAndHrefs(t *testing.T) {
	artworks := []*Artwork{
		NewArtwork(0, "One", "/en/x/one"),
		NewArtwork(1, "Two", "/en/x/two"),
	}
	titles := Titles(artworks)
	hrefs := Hrefs(artworks)
	if titles[0] != "One" || titles[1] != "Two" {
		t.Errorf("Titles() = %v", titles)
	}
	if hrefs[0] != "/en/x/one" || hrefs[1] != "/en/x/two" {
		t.Errorf("Hrefs() = %v", hrefs)
	}
}
