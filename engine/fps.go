package engine

// FPSCounter averages instantaneous frame rates over a fixed window of frame time
type FPSCounter struct {
	period  float32
	sum     float32
	samples int
	elapsed float32
	fps     float32
}

// NewFPSCounter creates a counter publishing a new average every period seconds
func NewFPSCounter(period float32) *FPSCounter {
	return &FPSCounter{period: period}
}

// Sample records one rendered frame that took frameTime seconds
func (c *FPSCounter) Sample(frameTime float32) {
	if frameTime <= 0 {
		return
	}
	c.sum += 1 / frameTime
	c.samples++
	c.elapsed += frameTime

	if c.fps == 0 {
		c.fps = c.sum / float32(c.samples)
	}
	if c.elapsed > c.period {
		c.elapsed -= c.period
		c.fps = c.sum / float32(c.samples)
		c.sum = 0
		c.samples = 0
	}
}

// FPS returns the last published average
func (c *FPSCounter) FPS() float32 {
	return c.fps
}

// FrameMillis returns the frame time matching FPS
func (c *FPSCounter) FrameMillis() float32 {
	if c.fps == 0 {
		return 0
	}
	return 1000 / c.fps
}
