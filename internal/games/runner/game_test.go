package runner

import (
	"bytes"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// quietConfig never spawns obstacles, so runs only end when a test says so.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Difficulty.BaseSpawnInterval = 1e9
	cfg.Difficulty.MinSpawnInterval = 1e9
	return cfg
}

// blockPlayer drops an obstacle right on top of the player.
func blockPlayer(g *Game) {
	p := g.player
	o := Obstacle{X: p.X, W: 40, H: 40}
	o.Align(g.layout.GroundY, p.Height)
	g.obstacles = append(g.obstacles, o)
}

func TestGameInitialState(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), rand.NewSource(1))

	if g.State() != StateRunning {
		t.Errorf("State() = %v, expected Running", g.State())
	}
	if g.Score() != 0 || g.SpeedFactor() != 1.0 {
		t.Errorf("score=%v speed=%v, expected 0 and 1.0", g.Score(), g.SpeedFactor())
	}
	p := g.Player()
	if p.Lane != 1 || !p.OnGround || p.Y != 420 {
		t.Errorf("unexpected player %+v", p)
	}
	if p.X != 480-26 {
		t.Errorf("player X = %v, expected lane-centered 454", p.X)
	}
	if len(g.Obstacles()) != 0 {
		t.Error("new game should have no obstacles")
	}
}

func TestGameScoreAccrual(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), rand.NewSource(1))

	res := g.Advance(0.016)
	if math.Abs(res.Snapshot.Score-0.96) > 1e-9 {
		t.Errorf("score after one 16ms frame = %v, expected 0.96", res.Snapshot.Score)
	}
	if res.Snapshot.DisplayScore() != 0 {
		t.Errorf("DisplayScore() = %d, expected 0", res.Snapshot.DisplayScore())
	}
	if res.Snapshot.SpeedText() != "1.00x" {
		t.Errorf("SpeedText() = %q", res.Snapshot.SpeedText())
	}
}

func TestGameClampsFrameStep(t *testing.T) {
	g := New(quietConfig(), rand.NewSource(1))

	g.Advance(5) // A stalled frame counts as 50ms
	if math.Abs(g.Score()-3.0) > 1e-9 {
		t.Errorf("score after stalled frame = %v, expected 3.0", g.Score())
	}

	before := g.Score()
	g.Advance(-1)
	if g.Score() != before {
		t.Error("negative dt should not change score")
	}
}

func TestGameSpeedFactorNonDecreasing(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), rand.NewSource(7))

	prev := g.SpeedFactor()
	for i := 0; i < 5000 && g.Running(); i++ {
		if i%40 == 0 {
			g.Push(core.CommandJump)
		}
		g.Advance(0.05)
		if g.SpeedFactor() < prev {
			t.Fatalf("frame %d: speed factor dropped %v -> %v", i, prev, g.SpeedFactor())
		}
		if g.SpawnInterval() < 0.45 {
			t.Fatalf("frame %d: spawn interval %v below floor", i, g.SpawnInterval())
		}
		prev = g.SpeedFactor()
	}
}

func TestGameLaneStaysInRange(t *testing.T) {
	g := New(quietConfig(), rand.NewSource(1))
	script := rand.New(rand.NewSource(99))
	commands := []core.Command{core.CommandMoveLeft, core.CommandMoveRight, core.CommandJump}

	for i := 0; i < 1000; i++ {
		for n := script.Intn(4); n > 0; n-- {
			g.Push(commands[script.Intn(len(commands))])
		}
		g.Advance(0.016)

		lane := g.Player().Lane
		if lane < 0 || lane > 2 {
			t.Fatalf("frame %d: lane %d out of range", i, lane)
		}
	}
}

func TestGameVerticalInvariant(t *testing.T) {
	g := New(quietConfig(), rand.NewSource(1))
	groundY := g.Layout().GroundY

	for i := 0; i < 600; i++ {
		if i%45 == 0 {
			g.Push(core.CommandJump)
		}
		g.Advance(0.016)

		p := g.Player()
		if p.Y > groundY {
			t.Fatalf("frame %d: player below ground (y=%v)", i, p.Y)
		}
		if (p.Y == groundY) != p.OnGround {
			t.Fatalf("frame %d: y=%v onGround=%v", i, p.Y, p.OnGround)
		}
	}
}

func TestGameLaneChangeIsGradual(t *testing.T) {
	g := New(quietConfig(), rand.NewSource(1))
	startX := g.Player().X

	g.Push(core.CommandMoveRight)
	g.Advance(0.016)

	p := g.Player()
	target := p.TargetX(g.Layout())
	if p.Lane != 2 {
		t.Fatalf("lane = %d, expected 2", p.Lane)
	}
	if p.X <= startX || p.X >= target {
		t.Errorf("x should move part way: start=%v now=%v target=%v", startX, p.X, target)
	}

	// Fraction covered is 12*dt
	want := startX + (target-startX)*12*0.016
	if math.Abs(p.X-want) > 1e-9 {
		t.Errorf("x = %v, expected %v", p.X, want)
	}
}

func TestGameCollisionEndsRun(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	g := New(quietConfig(), rand.NewSource(1), WithLogger(logger))

	g.Advance(0.016)
	blockPlayer(g)

	res := g.Advance(0.016)
	if !res.Ended || !res.Snapshot.GameOver {
		t.Fatalf("expected the run to end, got %+v", res)
	}
	if g.State() != StateGameOver {
		t.Errorf("State() = %v, expected GameOver", g.State())
	}
	if len(g.Obstacles()) != 1 {
		t.Error("obstacles should be frozen, not cleared")
	}
	if !strings.Contains(buf.String(), "run ended") {
		t.Errorf("expected run ended log line, got %q", buf.String())
	}
}

func TestGameFrozenAfterGameOver(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), rand.NewSource(3))
	g.Advance(0.016)
	blockPlayer(g)
	ended := g.Advance(0.016).Snapshot

	for i := 0; i < 10; i++ {
		g.Push(core.CommandJump)
		g.Push(core.CommandMoveLeft)
		res := g.Advance(0.05)
		if res.Ended {
			t.Fatal("Ended should only be reported once")
		}
		if !reflect.DeepEqual(res.Snapshot, ended) {
			t.Fatalf("frame %d after game over changed state", i)
		}
	}
}

func TestGameRestart(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), rand.NewSource(5))
	fresh := g.Snapshot()

	for round := 0; round < 3; round++ {
		for i := 0; i < 30; i++ {
			g.Push(core.CommandMoveLeft)
			g.Advance(0.05)
		}
		blockPlayer(g)
		g.Advance(0.016)
		if g.Running() {
			t.Fatalf("round %d: run should have ended", round)
		}

		g.Push(core.CommandRestart)
		g.Push(core.CommandRestart)
		res := g.Advance(0.016)

		if !g.Running() {
			t.Fatalf("round %d: restart did not resume the run", round)
		}
		if !reflect.DeepEqual(res.Snapshot, fresh) {
			t.Errorf("round %d: restart state differs from initial\n%+v\n%+v", round, res.Snapshot, fresh)
		}
	}
}

func TestGameRestartIgnoredWhileRunning(t *testing.T) {
	g := New(quietConfig(), rand.NewSource(1))
	g.Advance(0.05)
	g.Push(core.CommandRestart)
	g.Advance(0.05)

	if g.Score() <= 3.0 {
		t.Errorf("restart while running should be ignored, score=%v", g.Score())
	}
}

func TestGamePrunesOffscreenObstacles(t *testing.T) {
	g := New(quietConfig(), rand.NewSource(1))
	g.obstacles = append(g.obstacles,
		Obstacle{X: -240, W: 50, H: 40, Speed: 220},
		Obstacle{X: 700, W: 50, H: 40, Speed: 220},
	)

	g.Advance(0.05)

	obs := g.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected 1 obstacle left, got %d", len(obs))
	}
	if math.Abs(obs[0].X-689) > 1e-9 {
		t.Errorf("remaining obstacle X = %v, expected 689", obs[0].X)
	}
}

func TestGameSpawnsFromRightEdge(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), rand.NewSource(11))

	// 1.1s of frames reaches the first spawn interval
	for i := 0; i < 23 && len(g.Obstacles()) == 0; i++ {
		g.Advance(0.05)
	}
	obs := g.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected first obstacle after ~1.1s, got %d", len(obs))
	}
	// Spawned at width+margin and moved once in the same frame
	if obs[0].X >= 1060 || obs[0].X < 1060-0.05*300 {
		t.Errorf("spawn X = %v, expected just left of 1060", obs[0].X)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultRunnerConfig(), rand.NewSource(12345))
		var last Snapshot
		for i := 0; i < 2000; i++ {
			switch i % 37 {
			case 0:
				g.Push(core.CommandJump)
			case 11:
				g.Push(core.CommandMoveLeft)
			case 23:
				g.Push(core.CommandMoveRight)
			}
			last = g.Advance(0.016).Snapshot
			if last.GameOver {
				break
			}
		}
		return last
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different runs:\n%+v\n%+v", a, b)
	}
}

func TestGameSetLayout(t *testing.T) {
	g := New(quietConfig(), rand.NewSource(1))
	g.Push(core.CommandMoveRight)
	g.Advance(0.016)

	narrow := core.NewLayout(400, 520, 420, 40, 2)
	g.SetLayout(narrow)

	p := g.Player()
	if p.Lane != 1 {
		t.Errorf("lane should clamp to 1, got %d", p.Lane)
	}
	if p.X != 360-26 {
		t.Errorf("player should snap to new lane, X=%v", p.X)
	}
	if g.Snapshot().Width != 400 {
		t.Error("snapshot should report the new viewport")
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "Running" || StateGameOver.String() != "GameOver" || State(9).String() != "Unknown" {
		t.Error("State.String() mismatch")
	}
}
