package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundSelect SoundType = iota
	SoundArrive
	SoundToggle
)

const sampleRate = 44100

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
// The audio context is process-wide, so only one manager may exist.
func NewAudioManager(enabled bool, volume float64) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: enabled,
	}
	am.SetVolume(volume)
	am.sounds[SoundSelect] = synth(0.08, 0.3, click(440))
	am.sounds[SoundArrive] = synth(0.15, 0.35, tone(660))
	am.sounds[SoundToggle] = synth(0.05, 0.2, click(880))
	return am
}

// waveFunc returns a sample in [-1,1] at time t with progress p through the sound.
type waveFunc func(t, p float64) float64

// click is a short percussive wood-on-wood knock.
func click(freq float64) waveFunc {
	return func(t, _ float64) float64 {
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(t*sampleRate*0.3) + math.Sin(t*sampleRate*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * envelope
	}
}

// tone is a sine with a short attack and linear decay.
func tone(freq float64) waveFunc {
	return func(t, p float64) float64 {
		envelope := 1.0 - (p-0.1)/0.9
		if p < 0.1 {
			envelope = p / 0.1
		}
		return math.Sin(2*math.Pi*freq*t) * envelope
	}
}

// synth renders a wave into 16-bit little-endian stereo PCM.
func synth(duration, amplitude float64, wave waveFunc) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := wave(t, t/duration) * amplitude
		v = math.Max(-1, math.Min(1, v))

		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if am == nil || !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// A fresh player per play lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am != nil && am.enabled
}
