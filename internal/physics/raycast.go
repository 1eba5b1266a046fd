package physics

import (
	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest hit against active colliders on mask within
// maxDistance.
func (p *PhysicsWorld) Raycast(ray rl.Ray, mask engine.LayerMask, maxDistance float32) (RaycastHit, bool) {
	if rl.Vector3LengthSqr(ray.Direction) == 0 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	direction := rl.Vector3Normalize(ray.Direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range p.Statics {
		if !queryable(obj, mask) {
			continue
		}
		col := engine.GetComponent[Collider](obj)
		if col == nil {
			continue
		}
		t, normal, ok := col.OBB().IntersectRay(ray.Position, direction)
		if !ok || t > closestHit.Distance {
			continue
		}
		// Ties go to the earlier registration.
		if hit && t == closestHit.Distance {
			continue
		}
		closestHit = RaycastHit{
			GameObject: obj,
			Point:      rl.Vector3Add(ray.Position, rl.Vector3Scale(direction, t)),
			Normal:     normal,
			Distance:   t,
		}
		hit = true
	}

	return closestHit, hit
}
