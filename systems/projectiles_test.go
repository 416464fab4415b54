package systems

import (
	"testing"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
)

func TestFireProjectileRespectsCooldown(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	player := playerEntry(e)

	if !FireProjectile(e) {
		t.Fatalf("first shot gated")
	}
	firedAt := components.Player.Get(player).LastFireAt

	// Inside the cooldown window nothing fires and the stamp is untouched.
	Session(e).Elapsed += cfg.Projectile.Cooldown / 2
	if FireProjectile(e) {
		t.Fatalf("shot left inside cooldown window")
	}
	if got := components.Player.Get(player).LastFireAt; got != firedAt {
		t.Fatalf("rejected shot moved LastFireAt: %f -> %f", firedAt, got)
	}

	// Exactly at the cooldown boundary still gated; strictly past it fires.
	Session(e).Elapsed = firedAt + cfg.Projectile.Cooldown
	if FireProjectile(e) {
		t.Fatalf("shot left exactly at cooldown boundary")
	}
	Session(e).Elapsed = firedAt + cfg.Projectile.Cooldown + 0.001
	if !FireProjectile(e) {
		t.Fatalf("shot gated past cooldown")
	}
}

func TestProjectileExpiresAfterLifespan(t *testing.T) {
	e := newTestECS(&scriptedSource{})

	FireProjectile(e)
	if projectileCount(e) != 1 {
		t.Fatalf("no projectile spawned")
	}

	// Just short of the lifespan it still flies.
	Session(e).Elapsed += cfg.Projectile.Lifespan - 0.1
	UpdateProjectiles(e)
	if projectileCount(e) != 1 {
		t.Fatalf("projectile expired early")
	}

	Session(e).Elapsed += 0.2
	UpdateProjectiles(e)
	if projectileCount(e) != 0 {
		t.Fatalf("projectile outlived its lifespan")
	}
}

func TestProjectileDestroysBreakableObstacle(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	src := Session(e).Rand.(*scriptedSource)
	src.floats = []float64{0.5}
	src.ints = []int{0}

	playerPos := components.Position.Get(playerEntry(e))
	obstacle := placeTestObstacle(e,
		playerPos.X, 0, playerPos.Z-cfg.Projectile.Speed*testDT,
		components.HeightGround, true)

	FireProjectile(e)
	UpdateProjectiles(e)

	// The obstacle was recycled, not removed.
	if got := ObstacleCount(e); got != 1 {
		t.Fatalf("population changed on destroy: %d", got)
	}
	if z := components.Position.Get(obstacle).Z; z < cfg.Obstacle.FarMin || z > cfg.Obstacle.FarMax {
		t.Fatalf("destroyed obstacle not re-randomized, z = %f", z)
	}
	if projectileCount(e) != 0 {
		t.Fatalf("projectile survived its hit")
	}
}

func TestUnbreakableObstacleAbsorbsProjectile(t *testing.T) {
	e := newTestECS(&scriptedSource{})

	playerPos := components.Position.Get(playerEntry(e))
	z := playerPos.Z - cfg.Projectile.Speed*testDT
	obstacle := placeTestObstacle(e, playerPos.X, 0, z, components.HeightGround, false)

	FireProjectile(e)
	UpdateProjectiles(e)

	if got := components.Position.Get(obstacle).Z; got != z {
		t.Fatalf("unbreakable obstacle moved: %f -> %f", got, z)
	}
	if projectileCount(e) != 0 {
		t.Fatalf("projectile survived an unbreakable hit")
	}
}

func TestProjectileHitsFirstObstacleInOrder(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	src := Session(e).Rand.(*scriptedSource)
	src.floats = []float64{0.5}
	src.ints = []int{0}

	playerPos := components.Position.Get(playerEntry(e))
	z := playerPos.Z - cfg.Projectile.Speed*testDT

	// Two breakables inside the hit radius of the same projectile position;
	// only the earlier entity takes the hit.
	first := placeTestObstacle(e, playerPos.X, 0, z, components.HeightGround, true)
	second := placeTestObstacle(e, playerPos.X, 0, z-0.2, components.HeightGround, true)

	FireProjectile(e)
	UpdateProjectiles(e)

	if got := components.Position.Get(first).Z; got < cfg.Obstacle.FarMin || got > cfg.Obstacle.FarMax {
		t.Fatalf("first obstacle not destroyed, z = %f", got)
	}
	if got := components.Position.Get(second).Z; got != z-0.2 {
		t.Fatalf("second obstacle also hit, z = %f", got)
	}
}

func TestFireInputGoesThroughActionPolling(t *testing.T) {
	e := newTestECS(&scriptedSource{})

	PressAction(e, cfg.ActionFire, true)
	UpdateProjectiles(e)
	if projectileCount(e) != 1 {
		t.Fatalf("JustPressed fire did not spawn a projectile")
	}
}
