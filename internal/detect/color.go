package detect

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Signature defines the HSV window that counts as "the target color".
//
// Hue is in degrees (0-360, where 240 is pure blue); saturation and value
// are fractions in [0,1]. A pixel matches when its hue lies in
// [HueMin, HueMax] and both saturation and value meet their minimums.
// Wrap-around hue ranges (HueMin > HueMax) are not supported; the signature
// is meant for a single color family like a button blue.
type Signature struct {
	HueMin float64 `json:"hue_min"` // Lower hue bound in degrees
	HueMax float64 `json:"hue_max"` // Upper hue bound in degrees
	SatMin float64 `json:"sat_min"` // Minimum saturation (0-1)
	ValMin float64 `json:"val_min"` // Minimum value/brightness (0-1)
}

// DefaultSignature returns the window for a chat client's blue action
// button: hue 200-260 degrees with at least 35% saturation and brightness.
func DefaultSignature() Signature {
	return Signature{HueMin: 200, HueMax: 260, SatMin: 0.35, ValMin: 0.35}
}

// Match reports whether c falls inside the signature's HSV window.
func (s Signature) Match(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	h, sat, val := colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hsv()

	return h >= s.HueMin && h <= s.HueMax && sat >= s.SatMin && val >= s.ValMin
}
