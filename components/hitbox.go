package components

import (
	"github.com/automoto/hitbox/hitbox"
	"github.com/yohamta/donburi"
)

// HitboxData is the authoritative geometry and active flag of a hitbox entity.
type HitboxData struct {
	hitbox.Box
}

var Hitbox = donburi.NewComponentType[HitboxData]()
