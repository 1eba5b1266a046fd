package placement

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Snap quantizes p onto a horizontal grid of cell size g and drops it to y=0.
// The remainder follows math.Mod (sign of the dividend), so negative
// coordinates snap toward zero: -10 -> 0 and -40 -> -30 for g=30.
// g <= 0 returns p unchanged.
func Snap(p rl.Vector3, g float32) rl.Vector3 {
	if g <= 0 {
		return p
	}
	return rl.Vector3{
		X: snapAxis(p.X, g),
		Y: 0,
		Z: snapAxis(p.Z, g),
	}
}

func snapAxis(v, g float32) float32 {
	x := float64(v)
	r := x - math.Mod(x, float64(g))
	if r == 0 {
		// Avoid -0 leaking into positions.
		return 0
	}
	return float32(r)
}
