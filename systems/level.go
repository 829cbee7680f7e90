package systems

import (
	"log"

	"github.com/automoto/bullethell/components"
	"github.com/automoto/bullethell/systems/factory"
	"github.com/automoto/bullethell/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy))

// UpdateLevel advances scene progression. It only acts once the arena holds no enemies:
// an exhausted level is won, otherwise every bullet is cleared and the next scene spawns.
func UpdateLevel(w donburi.World) {
	if enemyQuery.Count(w) > 0 {
		return
	}

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if level.Exhausted() {
		finishRound(w, components.Win)
		return
	}

	ClearBullets(w)

	scene := level.Level.Scenes[level.Cursor]
	for _, tmpl := range scene.Enemies {
		factory.CreateEnemy(w, tmpl)
	}
	log.Printf("level %s: scene %d/%d spawned %d enemies",
		level.Level.Name, level.Cursor+1, len(level.Level.Scenes), len(scene.Enemies))
	level.Cursor++
}

// ClearBullets removes every bullet and its broadphase object.
func ClearBullets(w donburi.World) {
	removeAll(w, tags.Bullet)
}

// ClearEnemies removes every enemy and its broadphase object.
func ClearEnemies(w donburi.World) {
	removeAll(w, tags.Enemy)
}

func removeAll(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) {
	var doomed []*donburi.Entry
	tag.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		factory.Destroy(w, e)
	}
}
