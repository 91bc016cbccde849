package catalog

import "math"

// Color is an RGB color with 8-bit channels, used for harmony calculations.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSV converts the color to hue/saturation/value. Hue is in degrees [0, 360),
// saturation and value in [0, 1]. Achromatic colors (delta == 0) report hue 0.
func (c Color) HSV() (h, s, v float64) {
	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	switch {
	case delta == 0:
		h = 0
	case maxC == rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case maxC == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	if maxC > 0 {
		s = delta / maxC
	}

	return h, s, maxC
}

// Hue returns only the hue component.
func (c Color) Hue() float64 {
	h, _, _ := c.HSV()
	return h
}

// Saturation returns only the saturation component.
func (c Color) Saturation() float64 {
	_, s, _ := c.HSV()
	return s
}
