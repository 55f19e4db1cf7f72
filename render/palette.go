package render

import (
	"gridmap/core"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours used to paint a map.
type Palette struct {
	Background color.Color
	Open       color.Color
	Wall       color.Color
	// Weighted cells are interpolated from WeightLow (cost 2) to
	// WeightHigh (cost 9).
	WeightLow  color.Color
	WeightHigh color.Color
	Visited    color.Color // translucent tint
	Path       color.Color
	Start      color.Color
	Goal       color.Color
}

// Predefined palettes
var (
	// DefaultPalette matches the light editor canvas
	DefaultPalette = Palette{
		Background: color.White,
		Open:       color.RGBA{255, 255, 255, 255},
		Wall:       color.RGBA{80, 80, 80, 255},
		WeightLow:  color.RGBA{194, 163, 155, 255},
		WeightHigh: color.RGBA{212, 71, 55, 255},
		Visited:    color.NRGBA{196, 166, 60, 80},
		Path:       color.RGBA{200, 200, 200, 255},
		Start:      color.RGBA{130, 151, 199, 255},
		Goal:       color.RGBA{100, 252, 80, 255},
	}

	// DarkPalette suits dark terminal themes
	DarkPalette = Palette{
		Background: color.RGBA{24, 24, 24, 255},
		Open:       color.RGBA{48, 48, 48, 255},
		Wall:       color.RGBA{10, 10, 10, 255},
		WeightLow:  color.RGBA{90, 60, 50, 255},
		WeightHigh: color.RGBA{200, 40, 20, 255},
		Visited:    color.NRGBA{196, 166, 60, 110},
		Path:       color.RGBA{220, 220, 220, 255},
		Start:      color.RGBA{130, 151, 199, 255},
		Goal:       color.RGBA{100, 252, 80, 255},
	}
)

// PaletteByName returns a predefined palette ("light" or "dark").
func PaletteByName(name string) (Palette, bool) {
	switch name {
	case "", "light", "default":
		return DefaultPalette, true
	case "dark":
		return DarkPalette, true
	default:
		return Palette{}, false
	}
}

// CellColor returns the base fill of a cell. Start and Goal get the open
// fill here; their highlight is drawn on top.
func (p Palette) CellColor(c core.Cell) color.Color {
	switch c.Kind {
	case core.Wall:
		return p.Wall
	case core.Weighted:
		return p.WeightColor(c.Cost())
	default:
		return p.Open
	}
}

// WeightColor interpolates between WeightLow and WeightHigh by cost.
func (p Palette) WeightColor(cost int) color.Color {
	lo, _ := colorful.MakeColor(p.WeightLow)
	hi, _ := colorful.MakeColor(p.WeightHigh)

	t := float64(cost-core.MinWeightedCost) / float64(core.MaxWeightedCost-core.MinWeightedCost)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return lo.BlendRgb(hi, t).Clamped()
}

// Composite returns src painted over an opaque dst.
func Composite(dst, src color.Color) color.Color {
	a := color.NRGBAModel.Convert(src).(color.NRGBA).A
	if a == 0xff {
		return src
	}
	d, _ := colorful.MakeColor(dst)
	if a == 0 {
		return d
	}
	s := nrgbToColorful(src)
	return d.BlendRgb(s, float64(a)/0xff).Clamped()
}

// RGB255 returns the 8-bit channels of c, ignoring alpha.
func RGB255(c color.Color) (r, g, b uint8) {
	return nrgbToColorful(c).RGB255()
}

// nrgbToColorful converts ignoring alpha (MakeColor rejects fully
// transparent colours and works on premultiplied values).
func nrgbToColorful(c color.Color) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
}
