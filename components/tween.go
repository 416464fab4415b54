package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives time-based presentation values (overlay fades and the like).
var Tween = donburi.NewComponentType[gween.Sequence]()
