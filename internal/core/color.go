package core

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// randomPastel picks a pastel color: any hue, low saturation, high lightness.
func randomPastel() string {
	hue := rand.IntN(360)
	saturation := 25 + rand.IntN(21)
	lightness := 75 + rand.IntN(16)
	return pastelHex(hue, saturation, lightness)
}

// pastelHex converts HSL (hue in degrees, saturation and lightness in
// percent) to a lowercase #rrggbb string via the standard piecewise formula.
func pastelHex(hue, saturation, lightness int) string {
	s := float64(saturation) / 100
	l := float64(lightness) / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(float64(hue)/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x", int((r+m)*255), int((g+m)*255), int((b+m)*255))
}
