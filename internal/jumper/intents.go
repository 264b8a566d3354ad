package jumper

import "github.com/vovakirdan/pixel-jumper/internal/core"

// Intents is the input for one tick, decoupled from any keyboard.
// MoveLeft and MoveRight are levels (held); the rest are edges.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Start     bool
	Restart   bool
}

// IntentsFromFrame converts platform actions into intents.
func IntentsFromFrame(in core.InputFrame) Intents {
	return Intents{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Jump:      in.Has(core.ActionJump),
		Start:     in.Has(core.ActionStart),
		Restart:   in.Has(core.ActionRestart),
	}
}
