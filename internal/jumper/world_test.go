package jumper

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/pixel-jumper/internal/config"
)

func newTestWorld(seed int64) *World {
	return NewWorld(config.DefaultJumperConfig(), rand.New(rand.NewSource(seed)))
}

func runningWorld(seed int64) *World {
	w := newTestWorld(seed)
	w.Apply(Intents{Start: true})
	return w
}

func TestNewWorldInitialState(t *testing.T) {
	w := newTestWorld(1)

	if w.Phase() != PhaseNotStarted {
		t.Errorf("phase = %v, expected not_started", w.Phase())
	}
	if p := w.Player(); p.X != 384 || p.Y != 300 || p.DY != 0 {
		t.Errorf("player spawned at (%v, %v) dy=%v, expected (384, 300) dy=0", p.X, p.Y, p.DY)
	}
	if n := len(w.Platforms()); n != 11 {
		t.Errorf("platforms = %d, expected 11", n)
	}
	if start := w.Platforms()[0]; start != (Platform{X: 350, Y: 350, Width: 100}) {
		t.Errorf("start platform = %+v, expected {350 350 100}", start)
	}
	if n := len(w.Coins()); n != 5 {
		t.Errorf("coins = %d, expected 5", n)
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, expected 0", w.Score())
	}
}

func TestAdvanceIsNoopUntilStarted(t *testing.T) {
	w := newTestWorld(1)
	before := w.Snapshot()

	for i := 0; i < 10; i++ {
		w.Advance()
	}
	// Movement and jump are ignored before start
	w.Step(Intents{MoveLeft: true, Jump: true})

	if w.Snapshot() != before {
		t.Errorf("world changed before start: %+v -> %+v", before, w.Snapshot())
	}

	w.Apply(Intents{Start: true})
	if w.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, expected running after start", w.Phase())
	}
	if w.Player().MovingLeft {
		t.Error("start tick should not process movement")
	}
}

func TestGravityTick(t *testing.T) {
	w := runningWorld(1)
	w.platforms = []Platform{w.spawn.StartPlatform()}

	w.Advance()

	p := w.Player()
	if p.Y != 301 {
		t.Errorf("y = %v, expected 301", p.Y)
	}
	if p.DY != 1 {
		t.Errorf("dy = %v, expected 1", p.DY)
	}
	if p.OnGround {
		t.Error("player should not be on ground after one tick")
	}

	// Second tick reaches the start platform at y=350
	w.Advance()
	p = w.Player()
	if p.Y != 302 || p.DY != 0 || !p.OnGround {
		t.Errorf("after landing: y=%v dy=%v onGround=%v, expected y=302 dy=0 onGround", p.Y, p.DY, p.OnGround)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	w := runningWorld(1)

	w.Apply(Intents{Jump: true})
	if w.Player().DY != 0 {
		t.Errorf("jump in the air should be ignored, dy = %v", w.Player().DY)
	}

	w.player.OnGround = true
	w.Apply(Intents{Jump: true})

	p := w.Player()
	if p.DY != -15 {
		t.Errorf("dy = %v, expected -15", p.DY)
	}
	if p.OnGround {
		t.Error("jump should clear onGround")
	}
}

func TestLanding(t *testing.T) {
	const platformY = 400

	tests := []struct {
		name  string
		y, dy float64
		lands bool
	}{
		{"just below top edge", platformY - 48, 1, true},
		{"deep in tolerance band", platformY - 48 + 20, 3, true},
		{"at band limit", platformY - 48 + 22, 3, false},
		{"above platform", platformY - 60, 1, false},
		{"rising through", platformY - 40, -5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := runningWorld(1)
			w.platforms = []Platform{{X: 0, Y: platformY, Width: 100}}
			w.coins = nil
			w.player.X = 10
			w.player.Y = tc.y
			w.player.DY = tc.dy

			w.Advance()

			p := w.Player()
			if p.OnGround != tc.lands {
				t.Fatalf("onGround = %v, expected %v (y=%v dy=%v)", p.OnGround, tc.lands, p.Y, p.DY)
			}
			if tc.lands && (p.Y != platformY-48 || p.DY != 0) {
				t.Errorf("landed at y=%v dy=%v, expected y=%d dy=0", p.Y, p.DY, platformY-48)
			}
		})
	}
}

func TestLandingMissesWhenHorizontallyApart(t *testing.T) {
	w := runningWorld(1)
	w.platforms = []Platform{{X: 200, Y: 400, Width: 50}}
	w.coins = nil
	w.player.X = 168 // right edge touches platform left edge
	w.player.Y = 352
	w.player.DY = 1

	w.Advance()

	if w.Player().OnGround {
		t.Error("touching edges should not count as landing")
	}
}

func TestOverlappingPlatformsFirstWins(t *testing.T) {
	w := runningWorld(1)
	w.platforms = []Platform{
		{X: 0, Y: 400, Width: 100},
		{X: 0, Y: 405, Width: 100},
	}
	w.coins = nil
	w.player.X = 10
	w.player.Y = 360
	w.player.DY = 1

	w.Advance()

	if p := w.Player(); p.Y != 352 {
		t.Errorf("y = %v, expected 352 (first platform in order)", p.Y)
	}
}

func TestFallOut(t *testing.T) {
	w := runningWorld(1)
	w.player.Y = 601
	w.player.OnGround = true
	platforms := w.Platforms()
	coins := w.Coins()

	w.Advance()

	if w.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected game_over", w.Phase())
	}
	if !w.Player().OnGround {
		t.Error("ground check must not run on the fall-out tick")
	}
	if !slices.Equal(platforms, w.Platforms()) || !slices.Equal(coins, w.Coins()) {
		t.Error("platforms and coins must not change on the fall-out tick")
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, expected 0", w.Score())
	}

	// Further ticks do nothing
	before := w.Snapshot()
	w.Step(Intents{MoveRight: true, Jump: true, Start: true})
	if w.Snapshot() != before {
		t.Error("game over world should not advance")
	}
}

func TestClampingUnderRandomInput(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Physics.Gravity = 0 // Keep the player airborne and alive
	w := NewWorld(cfg, rand.New(rand.NewSource(3)))
	w.Apply(Intents{Start: true})

	input := rand.New(rand.NewSource(99))
	maxX := float64(cfg.World.Width - cfg.Player.Width)
	sawLeft, sawRight := false, false

	for i := 0; i < 3000; i++ {
		// Long runs in one direction reach both walls, then random flags
		left := (i/200)%2 == 0
		in := Intents{MoveLeft: left, MoveRight: !left}
		if i >= 1000 {
			in = Intents{MoveLeft: input.Intn(2) == 0, MoveRight: input.Intn(2) == 0}
		}
		w.Step(in)

		x := w.Player().X
		if x < 0 || x > maxX {
			t.Fatalf("tick %d: x = %v out of [0, %v]", i, x, maxX)
		}
		sawLeft = sawLeft || x == 0
		sawRight = sawRight || x == maxX
	}
	if !sawLeft || !sawRight {
		t.Errorf("expected to reach both walls, left=%v right=%v", sawLeft, sawRight)
	}
}

func TestHeldMovementFollowsIntents(t *testing.T) {
	w := runningWorld(1)

	w.Apply(Intents{MoveLeft: true})
	if !w.Player().MovingLeft || w.Player().MovingRight {
		t.Error("MoveLeft should set the left flag only")
	}

	w.Apply(Intents{})
	if w.Player().MovingLeft {
		t.Error("releasing the intent should clear the left flag")
	}
}

func TestCoinPickup(t *testing.T) {
	w := runningWorld(1)
	w.platforms = []Platform{w.spawn.StartPlatform()}
	far := []Coin{{X: 0, Y: 0}, {X: 700, Y: 0}, {X: 0, Y: 50}, {X: 700, Y: 50}}
	hit := Coin{X: 390, Y: 310}
	w.coins = []Coin{far[0], hit, far[1], far[2], far[3]}

	w.Advance()

	if w.Score() != 10 {
		t.Errorf("score = %d, expected 10", w.Score())
	}
	coins := w.Coins()
	if len(coins) != 5 {
		t.Fatalf("coins = %d, expected 5", len(coins))
	}
	if !slices.Equal(coins[:4], far) {
		t.Errorf("untouched coins changed or reordered: %+v", coins[:4])
	}
	if slices.Contains(coins, hit) {
		t.Error("picked coin should be replaced")
	}
}

func TestCoinsNotOverlappingAreUntouched(t *testing.T) {
	w := runningWorld(5)
	w.platforms = []Platform{w.spawn.StartPlatform()}
	w.coins = []Coin{{X: 0, Y: 0}, {X: 100, Y: 250}, {X: 416, Y: 300}, {X: 384, Y: 349}}

	w.Advance()

	// {416,300} touches the player's right edge, {384,349} sits exactly below the feet
	expected := []Coin{{X: 0, Y: 0}, {X: 100, Y: 250}, {X: 416, Y: 300}, {X: 384, Y: 349}}
	if !slices.Equal(w.Coins(), expected) {
		t.Errorf("coins = %+v, expected unchanged %+v", w.Coins(), expected)
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, expected 0", w.Score())
	}
}

func TestScrollRecyclesOffscreenEntities(t *testing.T) {
	w := runningWorld(7)
	w.platforms = []Platform{
		{X: 10, Y: 100, Width: 60},
		{X: 20, Y: 580, Width: 60},
		{X: 30, Y: 300, Width: 60},
	}
	w.coins = []Coin{{X: 5, Y: 560}, {X: 6, Y: 10}}
	w.player.X = 500
	w.player.Y = 150
	w.player.DY = -1 // Gravity cancels it this tick

	w.Advance()

	if p := w.Player(); p.Y != 200 {
		t.Errorf("player y = %v, expected scroll line 200", p.Y)
	}

	platforms := w.Platforms()
	if len(platforms) != 3 {
		t.Fatalf("platforms = %d, expected 3", len(platforms))
	}
	if platforms[0] != (Platform{X: 10, Y: 150, Width: 60}) || platforms[1] != (Platform{X: 30, Y: 350, Width: 60}) {
		t.Errorf("survivors should shift by 50 and keep order, got %+v", platforms[:2])
	}
	fresh := platforms[2]
	if fresh.Y < 100 || fresh.Y >= 500 || fresh.Width < 50 || fresh.Width >= 120 {
		t.Errorf("replacement out of spawn range: %+v", fresh)
	}
	if w.Score() != 1 {
		t.Errorf("score = %d, expected 1 for one passed platform", w.Score())
	}

	coins := w.Coins()
	if len(coins) != 2 {
		t.Fatalf("coins = %d, expected 2", len(coins))
	}
	if coins[0] != (Coin{X: 6, Y: 60}) {
		t.Errorf("surviving coin = %+v, expected {6 60}", coins[0])
	}
	if coins[1].Y >= 300 {
		t.Errorf("replacement coin y = %d, expected upper region", coins[1].Y)
	}
}

func TestNoRecyclingWithoutScroll(t *testing.T) {
	w := runningWorld(7)
	w.platforms = []Platform{w.spawn.StartPlatform(), {X: 0, Y: 650, Width: 60}}

	w.Advance()

	if len(w.Platforms()) != 2 || w.Platforms()[1].Y != 650 {
		t.Errorf("off-screen platform should stay until a scroll tick, got %+v", w.Platforms())
	}
}

func TestCountConservation(t *testing.T) {
	w := runningWorld(2024)
	bot := rand.New(rand.NewSource(7))
	scrolled := 0

	for i := 0; i < 5000; i++ {
		if w.Phase() == PhaseGameOver {
			w.Apply(Intents{Restart: true})
		}
		in := Intents{
			MoveLeft:  bot.Intn(3) == 0,
			MoveRight: bot.Intn(3) == 0,
			Jump:      true,
		}
		before := w.Platforms()
		w.Step(in)
		if !slices.Equal(before, w.Platforms()) && w.Phase() == PhaseRunning {
			scrolled++
		}

		if n := len(w.platforms); n != 11 {
			t.Fatalf("tick %d: platforms = %d, expected 11", i, n)
		}
		if n := len(w.coins); n != 5 {
			t.Fatalf("tick %d: coins = %d, expected 5", i, n)
		}
	}
	if scrolled == 0 {
		t.Error("expected the bot to climb at least once")
	}
}

func TestRestart(t *testing.T) {
	w := runningWorld(11)
	w.score = 42
	w.player.Y = 700
	w.Advance()
	if w.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected game_over", w.Phase())
	}

	// Only restart has an effect in game over
	w.Apply(Intents{Start: true, Jump: true})
	if w.Phase() != PhaseGameOver {
		t.Fatal("start should not leave game over")
	}

	w.Apply(Intents{Restart: true})

	if w.Phase() != PhaseRunning {
		t.Errorf("phase = %v, expected running after restart", w.Phase())
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, expected 0", w.Score())
	}
	if len(w.Platforms()) != 11 || len(w.Coins()) != 5 {
		t.Errorf("restart produced %d platforms, %d coins; expected 11 and 5", len(w.Platforms()), len(w.Coins()))
	}
	if p := w.Player(); p.X != 384 || p.Y != 300 || p.DY != 0 {
		t.Errorf("player not respawned: %+v", p)
	}
	if w.Tick() != 0 {
		t.Errorf("tick = %d, expected 0", w.Tick())
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	w := runningWorld(11)
	w.score = 5
	w.Apply(Intents{Restart: true})

	if w.Score() != 5 {
		t.Error("restart should only work after game over")
	}
}

func TestDeterminism(t *testing.T) {
	script := func(i int) Intents {
		return Intents{
			Start:     i == 0,
			MoveRight: (i/40)%2 == 0,
			MoveLeft:  (i/40)%2 == 1,
			Jump:      i%7 == 0,
			Restart:   true,
		}
	}

	w1 := newTestWorld(12345)
	w2 := newTestWorld(12345)
	for i := 0; i < 3000; i++ {
		w1.Step(script(i))
		w2.Step(script(i))
	}

	if w1.Snapshot() != w2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", w1.Snapshot(), w2.Snapshot())
	}
	if !slices.Equal(w1.Platforms(), w2.Platforms()) || !slices.Equal(w1.Coins(), w2.Coins()) {
		t.Error("entity sets differ between identical runs")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	w := newTestWorld(1)

	platforms := w.Platforms()
	platforms[0].Y = -999
	coins := w.Coins()
	coins[0].X = -999

	if w.Platforms()[0].Y == -999 || w.Coins()[0].X == -999 {
		t.Error("accessors should not expose internal slices")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRunning.String() != "running" || PhaseGameOver.String() != "game_over" || PhaseNotStarted.String() != "not_started" {
		t.Error("unexpected phase names")
	}
}
