package runner

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Player is the runner controlled by the user.
// Y is the top of the body; GroundY in the layout is where it rests.
type Player struct {
	Lane     int
	X, Y     float64
	VY       float64 // Vertical velocity, units per frame (negative = up)
	Width    float64
	Height   float64
	OnGround bool

	jumpStrength float64
}

// NewPlayer places a player on the ground in its start lane.
func NewPlayer(cfg config.PlayerConfig, layout core.Layout) Player {
	p := Player{
		Width:        cfg.Width,
		Height:       cfg.Height,
		jumpStrength: cfg.JumpStrength,
	}
	p.place(cfg.StartLane, layout)
	return p
}

// place puts the player at rest, centered on lane.
func (p *Player) place(lane int, layout core.Layout) {
	p.Lane = core.Clamp(lane, 0, core.Max(layout.Lanes()-1, 0))
	p.X = p.TargetX(layout)
	p.Y = layout.GroundY
	p.VY = 0
	p.OnGround = true
}

// TargetX is the left edge the player converges to in its current lane.
func (p *Player) TargetX(layout core.Layout) float64 {
	return layout.LaneCenter(p.Lane) - p.Width/2
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// ShiftLane moves the lane target by delta lanes, clamped to the track.
// Only the target changes; X catches up during Update.
func (p *Player) ShiftLane(delta, lanes int) {
	p.Lane = core.Clamp(p.Lane+delta, 0, core.Max(lanes-1, 0))
}

// Jump applies the upward impulse when standing on the ground.
// It reports whether the jump happened.
func (p *Player) Jump() bool {
	if !p.OnGround {
		return false
	}
	p.VY = p.jumpStrength
	p.OnGround = false
	return true
}

// Kinematics integrates player motion each frame.
type Kinematics struct {
	Gravity    float64 // Units per second squared, applied to VY
	FollowRate float64 // Lane approach rate per second
}

// NewKinematics creates the integrator from config.
func NewKinematics(cfg config.RunnerConfig) Kinematics {
	return Kinematics{
		Gravity:    cfg.Physics.Gravity,
		FollowRate: cfg.Player.LaneFollowRate,
	}
}

// Update advances the player by dt seconds.
func (k Kinematics) Update(p *Player, layout core.Layout, dt float64) {
	// Exponential approach towards the lane; the factor is capped at 1 so a
	// long frame lands on the target instead of overshooting it.
	target := p.TargetX(layout)
	p.X += (target - p.X) * min(k.FollowRate*dt, 1)

	p.VY += k.Gravity * dt
	p.Y += p.VY
	if p.Y >= layout.GroundY {
		p.Y = layout.GroundY
		p.VY = 0
		p.OnGround = true
	}
}
