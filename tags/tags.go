package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Bullet = donburi.NewTag().SetName("Bullet")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer      = "player"
	ResolvEnemy       = "enemy"
	ResolvPrecision   = "precision"
	ResolvHeavy       = "heavy"
	ResolvEnemyBullet = "enemybullet"
)
