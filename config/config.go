package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// RunnerConfig contains corridor geometry and forward-speed tuning.
// Coordinates: x across lanes, y vertical (ground = 0), z along the corridor.
// World objects drift toward the camera in +z; fresh spawns sit at far
// negative z.
type RunnerConfig struct {
	LaneCount       int     `yaml:"lane_count"`
	LaneWidth       float64 `yaml:"lane_width"`
	SegmentLength   float64 `yaml:"segment_length"`
	SegmentsPerLane int     `yaml:"segments_per_lane"`
	CameraZ         float64 `yaml:"camera_z"`
	PlayerZ         float64 `yaml:"player_z"`

	// Forward speed in units/second; ramps monotonically with elapsed time.
	BaseSpeed float64 `yaml:"base_speed"`
	SpeedRamp float64 `yaml:"speed_ramp"` // added per second of run time
	MaxSpeed  float64 `yaml:"max_speed"`
}

// RecycleZ is the forward coordinate past which segments and obstacles are
// behind the camera and get recycled.
func (r RunnerConfig) RecycleZ() float64 {
	return r.CameraZ + r.SegmentLength/2
}

// LaneX returns the world x-offset of a lane index, centered on the middle lane.
func (r RunnerConfig) LaneX(lane int) float64 {
	return (float64(lane) - float64(r.LaneCount-1)/2) * r.LaneWidth
}

// PlayerConfig contains player motion tuning.
type PlayerConfig struct {
	LaneSmoothing float64 `yaml:"lane_smoothing"` // lerp factor per tick toward the target lane
	JumpVelocity  float64 `yaml:"jump_velocity"`  // initial upward velocity per tick
	Gravity       float64 `yaml:"gravity"`        // subtracted from vertical velocity per tick while jumping
	SlideVelocity float64 `yaml:"slide_velocity"` // initial downward velocity per tick (negative)
	StandUpAccel  float64 `yaml:"stand_up_accel"` // added to vertical velocity per tick while sliding
	GroundY       float64 `yaml:"ground_y"`
}

// ObstacleConfig contains obstacle pool tuning.
type ObstacleConfig struct {
	InitialCount  int     `yaml:"initial_count"`
	MaxCount      int     `yaml:"max_count"`
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds between population growth

	BreakableChance float64 `yaml:"breakable_chance"`
	OverheadChance  float64 `yaml:"overhead_chance"`

	GroundY   float64 `yaml:"ground_y"`   // y of ground-class obstacles
	OverheadY float64 `yaml:"overhead_y"` // y of overhead-class obstacles

	// Fresh spawns get z uniformly in [FarMin, FarMax], both negative
	// (ahead of the player).
	FarMin float64 `yaml:"far_min"`
	FarMax float64 `yaml:"far_max"`
}

// ProjectileConfig contains projectile tuning.
type ProjectileConfig struct {
	Speed     float64 `yaml:"speed"`      // units/second along the aim direction
	Lifespan  float64 `yaml:"lifespan"`   // seconds before a miss expires
	Cooldown  float64 `yaml:"cooldown"`   // seconds between shots
	HitRadius float64 `yaml:"hit_radius"` // Euclidean distance that counts as a hit
}

// CollisionConfig contains player-obstacle collision tuning.
// A vertical gap exactly equal to a clearance still collides; the gap must
// be strictly greater to pass.
type CollisionConfig struct {
	HitRadius      float64 `yaml:"hit_radius"`      // horizontal (x,z) distance that triggers the vertical check
	JumpClearance  float64 `yaml:"jump_clearance"`  // required gap while airborne
	SlideClearance float64 `yaml:"slide_clearance"` // required gap while below ground level
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	LeanSmoothing float64 // how fast the camera x drifts after the player (0.0-1.0)
	LeanScale     float64 // fraction of the player's x the camera follows
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	CrashIntensity float64 // pixels
	CrashDuration  int     // frames
}

// HUDConfig contains HUD colors and layout.
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	DimColor  color.RGBA
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	OverlayAlpha float32 // final overlay alpha, reached via tween
	FadeSeconds  float32
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	ScoreY       float64
	HintY        float64
	Title        string
	RestartHint  string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	TuningPath string // Optional YAML tuning override file
	Watch      bool   // Hot-reload the tuning file on change
}

// Global configuration instances
var C *Config
var Runner RunnerConfig
var Player PlayerConfig
var Obstacle ObstacleConfig
var Projectile ProjectileConfig
var Collision CollisionConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	DimGray      = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Runner = RunnerConfig{
		LaneCount:       3,
		LaneWidth:       4.0,
		SegmentLength:   60.0,
		SegmentsPerLane: 2,
		CameraZ:         5.0,
		PlayerZ:         0.0,

		BaseSpeed: 30.0,
		SpeedRamp: 0.6,
		MaxSpeed:  90.0,
	}

	Player = PlayerConfig{
		LaneSmoothing: 0.2,
		JumpVelocity:  0.15,
		Gravity:       0.01,
		SlideVelocity: -0.1,
		// Deliberately its own knob; some tunings share the jump gravity
		// value but the constants stay independent.
		StandUpAccel: 0.008,
		GroundY:      0.0,
	}

	Obstacle = ObstacleConfig{
		InitialCount:  12,
		MaxCount:      36,
		SpawnInterval: 3.0,

		BreakableChance: 0.6,
		OverheadChance:  0.3,

		GroundY:   0.0,
		OverheadY: 0.2,

		FarMin: -220.0,
		FarMax: -60.0,
	}

	Projectile = ProjectileConfig{
		Speed:     60.0,
		Lifespan:  6.0,
		Cooldown:  0.45,
		HitRadius: 1.0,
	}

	Collision = CollisionConfig{
		HitRadius:      1.0,
		JumpClearance:  1.0,
		SlideClearance: 0.5,
	}

	Camera = CameraConfig{
		LeanSmoothing: 0.1,
		LeanScale:     0.35,
	}

	ScreenShake = ScreenShakeConfig{
		CrashIntensity: 6.0,
		CrashDuration:  18,
	}

	HUD = HUDConfig{
		Margin:    10,
		TextColor: White,
		DimColor:  DimGray,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		OverlayAlpha: 180,
		FadeSeconds:  0.5,
		TitleColor:   LightRed,
		TextColor:    White,
		TitleY:       110,
		ScoreY:       160,
		HintY:        230,
		Title:        "WIPED OUT",
		RestartHint:  "ENTER to run again  -  ESC for menu",
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 12, G: 14, B: 28, A: 255},
		TitleColor:      Orange,
		Title:           "CORRIDASH",
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
