package physics

import (
	"math"

	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	m := engine.RotationMatrix(rotation)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: m.M0, Y: m.M1, Z: m.M2}),
		rl.Vector3Normalize(rl.Vector3{X: m.M4, Y: m.M5, Z: m.M6}),
		rl.Vector3Normalize(rl.Vector3{X: m.M8, Y: m.M9, Z: m.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes:     axes,
	}
}

// NewOBBFromBox creates an OBB from center, size, rotation, and scale
func NewOBBFromBox(center, size, rotation, scale rl.Vector3) OBB {
	scaledSize := rl.Vector3{
		X: size.X * scale.X,
		Y: size.Y * scale.Y,
		Z: size.Z * scale.Z,
	}
	return NewOBB(center, scaledSize, rotation)
}

// IntersectsOBB tests if two OBBs intersect using the Separating Axis Theorem.
// Touching faces count as intersecting.
func (a OBB) IntersectsOBB(b OBB) bool {
	t := rl.Vector3Subtract(b.Center, a.Center)

	// 3 face normals from each box, then the 9 edge cross products.
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, a.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, b.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			// Skip near-zero axes (parallel edges)
			if rl.Vector3Length(axis) > 0.0001 {
				axis = rl.Vector3Normalize(axis)
				if !overlapOnAxis(a, b, axis, t) {
					return false
				}
			}
		}
	}

	return true
}

// projectedRadius is the half-length of o's shadow on axis.
func (o OBB) projectedRadius(axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

func overlapOnAxis(a, b OBB, axis, t rl.Vector3) bool {
	distance := absf(rl.Vector3DotProduct(t, axis))
	return distance <= a.projectedRadius(axis)+b.projectedRadius(axis)
}

// ContainsPoint reports whether p lies inside or on the box.
func (o OBB) ContainsPoint(p rl.Vector3) bool {
	d := rl.Vector3Subtract(p, o.Center)
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}
	for i := 0; i < 3; i++ {
		if absf(rl.Vector3DotProduct(d, o.Axes[i])) > half[i] {
			return false
		}
	}
	return true
}

// IntersectRay runs a slab test in the box's local frame. It returns the
// entry distance along dir (or the exit distance when origin is inside) and
// the world-space normal of the face that was crossed.
func (o OBB) IntersectRay(origin, dir rl.Vector3) (float32, rl.Vector3, bool) {
	d := rl.Vector3Subtract(o.Center, origin)
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	var enterAxis, exitAxis int
	var enterSign, exitSign float32 = -1, 1

	for i := 0; i < 3; i++ {
		e := rl.Vector3DotProduct(o.Axes[i], d)
		f := rl.Vector3DotProduct(o.Axes[i], dir)

		if absf(f) < 1e-7 {
			// Parallel to the slab: miss unless origin is between the planes.
			if -e-half[i] > 0 || -e+half[i] < 0 {
				return 0, rl.Vector3{}, false
			}
			continue
		}

		t1 := (e + half[i]) / f
		t2 := (e - half[i]) / f
		s1, s2 := float32(1), float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s1, s2 = s2, s1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis = i
			enterSign = s1
		}
		if t2 < tmax {
			tmax = t2
			exitAxis = i
			exitSign = s2
		}
		if tmin > tmax || tmax < 0 {
			return 0, rl.Vector3{}, false
		}
	}

	if tmin >= 0 {
		return tmin, rl.Vector3Scale(o.Axes[enterAxis], enterSign), true
	}
	return tmax, rl.Vector3Scale(o.Axes[exitAxis], exitSign), true
}

// Corners returns the eight box vertices in world space.
func (o OBB) Corners() [8]rl.Vector3 {
	var out [8]rl.Vector3
	ex := rl.Vector3Scale(o.Axes[0], o.HalfSize.X)
	ey := rl.Vector3Scale(o.Axes[1], o.HalfSize.Y)
	ez := rl.Vector3Scale(o.Axes[2], o.HalfSize.Z)
	for i := 0; i < 8; i++ {
		p := o.Center
		if i&1 == 0 {
			p = rl.Vector3Subtract(p, ex)
		} else {
			p = rl.Vector3Add(p, ex)
		}
		if i&2 == 0 {
			p = rl.Vector3Subtract(p, ey)
		} else {
			p = rl.Vector3Add(p, ey)
		}
		if i&4 == 0 {
			p = rl.Vector3Subtract(p, ez)
		} else {
			p = rl.Vector3Add(p, ez)
		}
		out[i] = p
	}
	return out
}

// Bounds returns the world-space AABB enclosing the box.
func (o OBB) Bounds() AABB {
	ext := rl.Vector3{
		X: o.projectedRadius(rl.Vector3{X: 1}),
		Y: o.projectedRadius(rl.Vector3{Y: 1}),
		Z: o.projectedRadius(rl.Vector3{Z: 1}),
	}
	return AABB{
		Min: rl.Vector3Subtract(o.Center, ext),
		Max: rl.Vector3Add(o.Center, ext),
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
