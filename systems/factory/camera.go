package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/archetypes"
)

func CreateCamera(e *ecs.ECS) *donburi.Entry {
	return archetypes.Camera.Spawn(e)
}
