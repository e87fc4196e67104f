package component

// TimedAction fires its callback every Duration seconds of simulated time
// C is the context handed to the callback, the engine passes its game state
type TimedAction[C any] struct {
	Duration float32
	Elapsed  float32
	Action   func(ctx C, dt, time float32)
}

// NewTimedAction creates an action that first fires after one full duration
func NewTimedAction[C any](duration float32, action func(ctx C, dt, time float32)) *TimedAction[C] {
	return &TimedAction[C]{Duration: duration, Action: action}
}

// Update accumulates dt and fires once per whole duration crossed, keeping the remainder
// A non-positive duration fires once per call
// Returns the number of times the action fired
func (t *TimedAction[C]) Update(ctx C, dt, time float32) int {
	t.Elapsed += dt
	if t.Duration <= 0 {
		t.Elapsed = 0
		t.fire(ctx, dt, time)
		return 1
	}

	fired := 0
	for t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
		t.fire(ctx, dt, time)
		fired++
	}
	return fired
}

func (t *TimedAction[C]) fire(ctx C, dt, time float32) {
	if t.Action != nil {
		t.Action(ctx, dt, time)
	}
}
