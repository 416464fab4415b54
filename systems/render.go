package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/tags"
)

const (
	focalLength  = 300.0 // pixels per unit at depth 1
	cameraHeight = 2.0   // camera y above the ground plane
	nearClip     = 0.5
	farClip      = 260.0
)

type drawableKind int

const (
	drawSegmentSeam drawableKind = iota
	drawObstacle
	drawProjectile
	drawPlayer
)

type drawable struct {
	kind     drawableKind
	z        float64
	pos      components.PositionData
	obstacle components.ObstacleData
	segment  components.SegmentData
}

// Reused between frames to keep the draw path allocation-free.
var drawables []drawable

// DrawWorld renders the corridor with a one-point projection: x spreads with
// depth, the ground plane converges on the horizon, and everything is painted
// far to near.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	cx := width / 2
	horizon := height * 0.42

	camera := components.CameraData{}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera = *components.Camera.Get(cameraEntry)
	}

	fog := false
	if settingsEntry, ok := components.Settings.First(e.World); ok {
		fog = components.Settings.Get(settingsEntry).Fog
	}

	screen.Fill(color.RGBA{R: 16, G: 18, B: 32, A: 255})

	project := func(x, y, z float64) (float32, float32, float64, bool) {
		depth := cfg.Runner.CameraZ - z
		if depth < nearClip || depth > farClip {
			return 0, 0, 0, false
		}
		scale := focalLength / depth
		sx := cx + (x-camera.LeanX)*scale + camera.ShakeX
		sy := horizon + (cameraHeight-y)*scale + camera.ShakeY
		return float32(sx), float32(sy), scale, true
	}

	drawLaneLines(screen, project)

	drawables = drawables[:0]
	tags.Segment.Each(e.World, func(entry *donburi.Entry) {
		drawables = append(drawables, drawable{
			kind:    drawSegmentSeam,
			z:       components.Position.Get(entry).Z,
			pos:     *components.Position.Get(entry),
			segment: *components.Segment.Get(entry),
		})
	})
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		drawables = append(drawables, drawable{
			kind:     drawObstacle,
			z:        components.Position.Get(entry).Z,
			pos:      *components.Position.Get(entry),
			obstacle: *components.Obstacle.Get(entry),
		})
	})
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		drawables = append(drawables, drawable{
			kind: drawProjectile,
			z:    components.Position.Get(entry).Z,
			pos:  *components.Position.Get(entry),
		})
	})
	if playerEntry, ok := tags.Player.First(e.World); ok {
		drawables = append(drawables, drawable{
			kind: drawPlayer,
			z:    components.Position.Get(playerEntry).Z,
			pos:  *components.Position.Get(playerEntry),
		})
	}

	// Far to near: most negative z first.
	sort.Slice(drawables, func(i, j int) bool {
		return drawables[i].z < drawables[j].z
	})

	for _, d := range drawables {
		switch d.kind {
		case drawSegmentSeam:
			drawSeam(screen, d, project, fog)
		case drawObstacle:
			drawObstacleBox(screen, d, project, fog)
		case drawProjectile:
			drawProjectileDot(screen, d, project)
		case drawPlayer:
			drawPlayerBox(screen, d, project)
		}
	}
}

type projectFunc func(x, y, z float64) (float32, float32, float64, bool)

// drawLaneLines strokes the lane boundaries converging on the horizon.
func drawLaneLines(screen *ebiten.Image, project projectFunc) {
	lineColor := color.RGBA{R: 60, G: 64, B: 90, A: 255}
	halfFar := cfg.Runner.CameraZ - farClip + 1

	for lane := 0; lane <= cfg.Runner.LaneCount; lane++ {
		x := cfg.Runner.LaneX(lane) - cfg.Runner.LaneWidth/2
		nx, ny, _, ok := project(x, 0, cfg.Runner.CameraZ-nearClip-0.01)
		if !ok {
			continue
		}
		fx, fy, _, ok := project(x, 0, halfFar)
		if !ok {
			continue
		}
		vector.StrokeLine(screen, nx, ny, fx, fy, 1, lineColor, false)
	}
}

// drawSeam marks a floor segment's leading edge with a stripe across its
// lane, giving the scroll its visible motion.
func drawSeam(screen *ebiten.Image, d drawable, project projectFunc, fog bool) {
	z := d.pos.Z - cfg.Runner.SegmentLength/2
	left := cfg.Runner.LaneX(d.segment.Lane) - cfg.Runner.LaneWidth/2
	right := left + cfg.Runner.LaneWidth

	lx, ly, _, ok := project(left, 0, z)
	if !ok {
		return
	}
	rx, ry, _, ok := project(right, 0, z)
	if !ok {
		return
	}

	seamColor := fade(color.RGBA{R: 44, G: 48, B: 72, A: 255}, cfg.Runner.CameraZ-z, fog)
	vector.StrokeLine(screen, lx, ly, rx, ry, 1, seamColor, false)
}

func drawObstacleBox(screen *ebiten.Image, d drawable, project projectFunc, fog bool) {
	const halfWidth = 0.9
	var base, top float64
	var boxColor color.RGBA

	switch d.obstacle.Class {
	case components.HeightOverhead:
		base = d.pos.Y
		top = d.pos.Y + 0.8
		boxColor = color.RGBA{R: 200, G: 170, B: 60, A: 255}
	default:
		base = d.pos.Y
		top = d.pos.Y + 0.9
		boxColor = color.RGBA{R: 190, G: 70, B: 70, A: 255}
	}
	if d.obstacle.Breakable {
		boxColor = color.RGBA{R: 110, G: 170, B: 220, A: 255}
	}

	x1, y1, _, ok := project(d.pos.X-halfWidth, top, d.pos.Z)
	if !ok {
		return
	}
	x2, y2, _, ok := project(d.pos.X+halfWidth, base, d.pos.Z)
	if !ok {
		return
	}

	c := fade(boxColor, cfg.Runner.CameraZ-d.pos.Z, fog)
	vector.DrawFilledRect(screen, x1, y1, x2-x1, y2-y1, c, false)
}

func drawProjectileDot(screen *ebiten.Image, d drawable, project projectFunc) {
	x, y, scale, ok := project(d.pos.X, d.pos.Y+0.4, d.pos.Z)
	if !ok {
		return
	}
	r := float32(0.12 * scale)
	if r < 1 {
		r = 1
	}
	vector.DrawFilledCircle(screen, x, y, r, cfg.BrightOrange, false)
}

func drawPlayerBox(screen *ebiten.Image, d drawable, project projectFunc) {
	const halfWidth = 0.5
	x1, y1, _, ok := project(d.pos.X-halfWidth, d.pos.Y+1.2, d.pos.Z)
	if !ok {
		return
	}
	x2, y2, _, ok := project(d.pos.X+halfWidth, d.pos.Y, d.pos.Z)
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, x1, y1, x2-x1, y2-y1, cfg.Orange, false)
}

// fade darkens a color with depth when fog is on.
func fade(c color.RGBA, depth float64, fog bool) color.RGBA {
	if !fog {
		return c
	}
	f := 1 - depth/farClip
	if f < 0.15 {
		f = 0.15
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
