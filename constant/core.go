package constant

import "time"

// Game Loop Timing
const (
	// Timestep is the fixed simulation tick in seconds (100 Hz)
	Timestep float32 = 1.0 / 100.0

	// DefaultRefreshRate is the assumed display refresh rate in Hz, terminals report none
	DefaultRefreshRate float32 = 60

	// RefreshRateBias is added to the refresh rate so vsync pacing renders slightly early
	RefreshRateBias float32 = 0.5

	// MinLoopSleep is the smallest remaining budget worth yielding the CPU for
	MinLoopSleep = 10 * time.Microsecond

	// LoopSleepFraction is the portion of the remaining budget the loop sleeps
	LoopSleepFraction = 0.5
)

// Window & Viewport
const (
	// WindowWidth is the design width in pixels
	WindowWidth = 1280

	// WindowHeight is the design height in pixels
	WindowHeight = 720

	// AspectRatio is the design aspect ratio the viewport is letterboxed to
	AspectRatio float32 = float32(WindowWidth) / float32(WindowHeight)

	// AspectRatioInverse is height over width of the design resolution
	AspectRatioInverse float32 = float32(WindowHeight) / float32(WindowWidth)

	// CellPixelWidth is the horizontal pixel span of one terminal cell
	CellPixelWidth = 1

	// CellPixelHeight is the vertical pixel span of one terminal cell, cells are roughly twice as tall as wide
	CellPixelHeight = 2
)

// Input Timing
const (
	// KeyReleaseInitialTimeout synthesizes a key release when no autorepeat follows a press
	// Must exceed the terminal's autorepeat delay (commonly 250-500ms)
	KeyReleaseInitialTimeout = 550 * time.Millisecond

	// KeyReleaseRepeatTimeout synthesizes a key release when autorepeat stops
	KeyReleaseRepeatTimeout = 120 * time.Millisecond

	// EventQueueSize is the buffered capacity between the terminal poller and the loop
	EventQueueSize = 256
)
