package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/skirmish/constant"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// sweep generates a waveform whose frequency glides linearly from startFreq to endFreq
func sweep(waveType int, startFreq, endFreq float64, samples int, rng *rand.Rand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		t := float64(i) / float64(samples)
		freq := startFreq + (endFreq-startFreq)*t
		phase += freq / float64(constant.AudioSampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// oscillator generates a fixed-frequency waveform
func oscillator(waveType int, freq float64, samples int, rng *rand.Rand) floatBuffer {
	return sweep(waveType, freq, freq, samples, rng)
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// normalize scales the buffer so its peak sits at unity
func normalize(buf floatBuffer) {
	peak := 0.0
	for _, s := range buf {
		peak = max(peak, math.Abs(s))
	}
	if peak == 0 {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(constant.AudioSampleRate))
}

// --- Sound Generators (unity gain) ---

// generateLaser is a falling square-wave zap
func generateLaser(rng *rand.Rand) floatBuffer {
	samples := durationToSamples(constant.LaserSoundDuration)
	buf := sweep(waveSquare, constant.LaserSoundStartFreq, constant.LaserSoundEndFreq, samples, rng)
	body := sweep(waveSine, constant.LaserSoundStartFreq/2, constant.LaserSoundEndFreq/2, samples, rng)
	buf = mixFloatBuffers(buf, body, 0.6)
	applyEnvelope(buf, constant.LaserSoundAttack, constant.LaserSoundRelease)
	normalize(buf)
	return buf
}

// generateExplosionCrunch is filtered noise over a low rumble
func generateExplosionCrunch(rng *rand.Rand) floatBuffer {
	samples := durationToSamples(constant.ExplosionSoundDuration)
	noise := oscillator(waveNoise, 0, samples, rng)

	// one-pole low-pass keeps the crunch from sounding like hiss
	prev := 0.0
	for i, s := range noise {
		prev += 0.25 * (s - prev)
		noise[i] = prev
	}

	rumble := sweep(waveSine, constant.ExplosionRumbleFreq, constant.ExplosionRumbleFreq/2, samples, rng)
	buf := mixFloatBuffers(noise, rumble, 0.8)
	applyEnvelope(buf, constant.ExplosionSoundAttack, constant.ExplosionSoundRelease)
	normalize(buf)
	return buf
}
