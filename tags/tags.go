package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Lantern      = donburi.NewTag().SetName("Lantern")
	FloatingText = donburi.NewTag().SetName("FloatingText")
	Cloud        = donburi.NewTag().SetName("Cloud")
)

// Resolv tags for collision bodies
const (
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvLantern = "Lantern"
)
