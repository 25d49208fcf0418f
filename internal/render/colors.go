package render

import (
	"fmt"
	"strconv"
)

// densityRamp is the five-stop red ramp used by the choropleth, from very
// low to very high density.
var densityRamp = [5]string{"#fee5d9", "#fcae91", "#fb6a4a", "#de2d26", "#a50f15"}

// densityColor maps a density value onto the ramp, linearly interpolating
// between adjacent stops over the observed [min, max] range. A degenerate
// range (max <= min) maps everything to the lowest stop.
func densityColor(d, min, max float64) string {
	if max <= min {
		return densityRamp[0]
	}

	t := (d - min) / (max - min)
	if t <= 0 {
		return densityRamp[0]
	}
	if t >= 1 {
		return densityRamp[len(densityRamp)-1]
	}

	// Position within the ramp's segments.
	pos := t * float64(len(densityRamp)-1)
	i := int(pos)
	frac := pos - float64(i)

	r0, g0, b0 := hexRGB(densityRamp[i])
	r1, g1, b1 := hexRGB(densityRamp[i+1])

	lerp := func(a, b int) int { return a + int(frac*float64(b-a)) }
	return fmt.Sprintf("#%02x%02x%02x", lerp(r0, r1), lerp(g0, g1), lerp(b0, b1))
}

func hexRGB(hex string) (r, g, b int) {
	parse := func(s string) int {
		v, _ := strconv.ParseInt(s, 16, 32)
		return int(v)
	}
	return parse(hex[1:3]), parse(hex[3:5]), parse(hex[5:7])
}
