package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the resolv body of a hitbox. Its X/Y is the box's min corner,
// so it can be dropped into a caller's resolv.Space as-is.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
