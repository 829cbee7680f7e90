package factory

import (
	"math"

	"github.com/automoto/bullethell/archetypes"
	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the broadphase grid. It spans the arena plus a margin on every side so
// circles straddling the edge still land in cells.
func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	margin := cfg.World.SpaceMargin
	width := int(math.Ceil(cfg.World.ArenaWidth)) + 2*margin
	height := int(math.Ceil(cfg.World.ArenaHeight)) + 2*margin
	spaceData := resolv.NewSpace(width, height, cfg.World.CellSize, cfg.World.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

// ObjectBounds converts a circle in arena coordinates into a box in space coordinates.
// The box is padded by a pixel on every side: resolv treats the far edge as exclusive.
func ObjectBounds(c gamemath.Circle) (x, y, w, h float64) {
	r := math.Max(c.Radius, 0) + 1
	ox := cfg.World.ArenaWidth/2 + float64(cfg.World.SpaceMargin)
	oy := cfg.World.ArenaHeight/2 + float64(cfg.World.SpaceMargin)
	return c.Center.X - r + ox, c.Center.Y - r + oy, 2 * r, 2 * r
}

// PlaceObject moves obj over c and refreshes its cells.
func PlaceObject(obj *resolv.Object, c gamemath.Circle) {
	obj.X, obj.Y, obj.W, obj.H = ObjectBounds(c)
	obj.Update()
}

func addObject(w donburi.World, e *donburi.Entry, c gamemath.Circle, tag string) {
	x, y, ow, oh := ObjectBounds(c)
	obj := resolv.NewObject(x, y, ow, oh, tag)
	obj.Data = e // Linked for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// Destroy removes an entity and its broadphase object.
func Destroy(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(w); ok {
			obj := components.Object.Get(e)
			if obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	w.Remove(e.Entity())
}
