package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/scroll-room/parameter"
)

// RippleGenerator is a falling chirp whose amplitude pulses like the wall wave
type RippleGenerator struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
	pos   int
}

func NewRippleGenerator(sr beep.SampleRate, freq float64) *RippleGenerator {
	return &RippleGenerator{sr: sr, freq: freq}
}

func (g *RippleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// pitch falls an octave over ~0.3s
		freq := g.freq * (0.5 + 0.5*math.Exp(-t*3.3))
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		pulse := 0.6 + 0.4*math.Sin(parameter.RippleFrequency*t)
		env := math.Min(t/0.01, 1) * math.Exp(-t*parameter.RippleFalloff)
		sample := parameter.CueVolume * env * pulse * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RippleGenerator) Err() error { return nil }

// ShimmerGenerator is a cloud of detuned partials with crackle, fading out
type ShimmerGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

func NewShimmerGenerator(sr beep.SampleRate, seed uint32) *ShimmerGenerator {
	if seed == 0 {
		seed = 1
	}
	return &ShimmerGenerator{sr: sr, seed: seed}
}

var shimmerPartials = [...]float64{880, 1320, 1760, 2217, 2640}

func (g *ShimmerGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		tone := 0.0
		for k, f := range shimmerPartials {
			rise := 1 + 0.15*t
			tone += math.Sin(2*math.Pi*f*rise*t+float64(k)) / float64(len(shimmerPartials))
		}

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		env := math.Min(t/0.05, 1) * math.Exp(-t*2.5)
		left := parameter.CueVolume * env * (0.7*tone + 0.3*noise)
		right := parameter.CueVolume * env * (0.7*tone - 0.3*noise)

		samples[i][0] = left
		samples[i][1] = right
		g.pos++
	}
	return len(samples), true
}

func (g *ShimmerGenerator) Err() error { return nil }
