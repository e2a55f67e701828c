package tags

import "github.com/yohamta/donburi"

var (
	Hitbox = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags carried by hitbox bodies
const (
	ResolvHitbox = "hitbox"
)
