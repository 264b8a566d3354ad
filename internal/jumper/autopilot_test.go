package jumper

import "testing"

func TestAutopilotLifecycle(t *testing.T) {
	w := newTestWorld(5)

	if in := Autopilot(w); in != (Intents{Start: true}) {
		t.Fatalf("before start = %+v, expected start only", in)
	}

	w.Step(Autopilot(w))
	w.Step(Intents{})
	if !w.Player().OnGround {
		t.Fatal("player should have landed on the start platform")
	}
	if in := Autopilot(w); !in.Jump {
		t.Errorf("grounded autopilot = %+v, expected a jump", in)
	}

	w.player.Y = float64(w.cfg.World.Height + 10)
	w.Step(Intents{})
	if in := Autopilot(w); in != (Intents{}) {
		t.Errorf("after game over = %+v, expected no intents", in)
	}
}

func TestAutopilotSteersTowardsPlatformAbove(t *testing.T) {
	w := newTestWorld(5)
	w.Step(Intents{Start: true})

	w.platforms = []Platform{
		{X: 350, Y: 350, Width: 100},
		{X: 0, Y: 250, Width: 60},
		{X: 700, Y: 100, Width: 60},
	}
	in := Autopilot(w)
	if !in.MoveLeft || in.MoveRight {
		t.Errorf("autopilot = %+v, expected to steer left", in)
	}

	w.platforms = []Platform{{X: 700, Y: 250, Width: 60}}
	in = Autopilot(w)
	if !in.MoveRight || in.MoveLeft {
		t.Errorf("autopilot = %+v, expected to steer right", in)
	}
}
