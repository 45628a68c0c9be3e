package sim

import "time"

// Timing is the frame clock. The viewer owns one, updates it once per frame
// and passes a copy into Simulation.Update.
type Timing struct {
	FrameNumber     uint64
	LastDuration    float32 // seconds
	AverageDuration float32 // seconds, rolling
	FPS             float32

	last time.Time
}

// Init starts the clock at now.
func (t *Timing) Init(now time.Time) {
	*t = Timing{last: now}
}

// Update records one frame ending at now. The average starts with the second
// frame and only takes positive durations.
func (t *Timing) Update(now time.Time) {
	t.FrameNumber++
	if t.last.IsZero() {
		t.last = now
	}
	t.LastDuration = float32(now.Sub(t.last).Seconds())
	t.last = now

	if t.FrameNumber < 2 || t.LastDuration <= 0 {
		return
	}
	if t.AverageDuration <= 0 {
		t.AverageDuration = t.LastDuration
	} else {
		t.AverageDuration = t.AverageDuration*0.99 + t.LastDuration*0.01
	}
	t.FPS = 1 / t.AverageDuration
}

// Teardown clears the clock. A torn down clock reports zero durations until Init.
func (t *Timing) Teardown() {
	*t = Timing{}
}
