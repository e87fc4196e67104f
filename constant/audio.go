package constant

import "time"

// Audio Hardware Settings
const (
	// AudioSampleRate is the speaker and generator sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Laser Sound
const (
	LaserSoundDuration  = 180 * time.Millisecond
	LaserSoundAttack    = 3 * time.Millisecond
	LaserSoundRelease   = 120 * time.Millisecond
	LaserSoundStartFreq = 1800.0
	LaserSoundEndFreq   = 300.0
)

// Explosion Sound
const (
	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 2 * time.Millisecond
	ExplosionSoundRelease  = 380 * time.Millisecond
	ExplosionRumbleFreq    = 70.0
)

// Source Gains
const (
	// ProjectileGain is the laser source gain
	ProjectileGain = 0.8

	// ExplosionGain is the explosion source gain
	ExplosionGain = 1.0
)
