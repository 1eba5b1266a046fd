package world

import (
	"math"

	"github.com/Develoder/BuilderEX/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the frustum planes from the camera basis. Normals
// point inward. Fovy is the vertical angle in degrees for perspective cameras
// and the view height for orthographic ones, as in raylib.
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	pos := camera.Position
	fwd := rl.Vector3Normalize(rl.Vector3Subtract(camera.Target, pos))
	right := rl.Vector3CrossProduct(fwd, camera.Up)
	if rl.Vector3LengthSqr(right) == 0 {
		right = rl.Vector3{X: 1}
	}
	right = rl.Vector3Normalize(right)
	up := rl.Vector3CrossProduct(right, fwd)

	through := func(n, p rl.Vector3) Plane {
		return normalizePlane(Plane{normal: n, distance: -rl.Vector3DotProduct(n, p)})
	}

	var f Frustum
	if camera.Projection == rl.CameraPerspective {
		tanV := float32(math.Tan(float64(camera.Fovy*rl.Deg2rad) / 2))
		tanH := tanV * aspect
		f.planes[0] = through(rl.Vector3Add(right, rl.Vector3Scale(fwd, tanH)), pos)
		f.planes[1] = through(rl.Vector3Add(rl.Vector3Negate(right), rl.Vector3Scale(fwd, tanH)), pos)
		f.planes[2] = through(rl.Vector3Add(up, rl.Vector3Scale(fwd, tanV)), pos)
		f.planes[3] = through(rl.Vector3Add(rl.Vector3Negate(up), rl.Vector3Scale(fwd, tanV)), pos)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		f.planes[0] = through(right, rl.Vector3Subtract(pos, rl.Vector3Scale(right, halfW)))
		f.planes[1] = through(rl.Vector3Negate(right), rl.Vector3Add(pos, rl.Vector3Scale(right, halfW)))
		f.planes[2] = through(up, rl.Vector3Subtract(pos, rl.Vector3Scale(up, halfH)))
		f.planes[3] = through(rl.Vector3Negate(up), rl.Vector3Add(pos, rl.Vector3Scale(up, halfH)))
	}
	f.planes[4] = through(fwd, rl.Vector3Add(pos, rl.Vector3Scale(fwd, near)))
	f.planes[5] = through(rl.Vector3Negate(fwd), rl.Vector3Add(pos, rl.Vector3Scale(fwd, far)))
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB reports whether any part of box may be visible. It tests the
// box corner furthest along each plane normal, so it can report false
// positives near frustum corners but never culls a visible box.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	for i := 0; i < 6; i++ {
		n := f.planes[i].normal
		p := box.Min
		if n.X >= 0 {
			p.X = box.Max.X
		}
		if n.Y >= 0 {
			p.Y = box.Max.Y
		}
		if n.Z >= 0 {
			p.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(n, p)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}
