package game

import (
	"bytes"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

type sound int

const (
	soundDot sound = iota
	soundWin
	soundLoss
)

// AudioManager plays short synthesized cues. A nil or disabled manager is silent.
type AudioManager struct {
	ctx   *audio.Context
	clips map[sound][]byte
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// ebiten allows one audio context per process.
func getAudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		clips: map[sound][]byte{
			soundDot:  synthBeepWAV(sampleRate, 60, 880),
			soundWin:  synthBeepWAV(sampleRate, 400, 1320),
			soundLoss: synthBeepWAV(sampleRate, 400, 220),
		},
	}
	if enabled {
		am.ctx = getAudioContext()
	}
	return am
}

func (am *AudioManager) play(s sound) {
	if am == nil || am.ctx == nil {
		return
	}
	raw := am.clips[s]
	if len(raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayDot()  { am.play(soundDot) }
func (am *AudioManager) PlayWin()  { am.play(soundWin) }
func (am *AudioManager) PlayLoss() { am.play(soundLoss) }

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	numSamples := int(float64(sampleRate) * float64(durationMs) / 1000.0)
	byteRate := sampleRate * 2 // mono 16-bit
	blockAlign := 2
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	// RIFF header
	copy(buf[0:4], []byte{'R', 'I', 'F', 'F'})
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], []byte{'W', 'A', 'V', 'E'})
	// fmt chunk
	copy(buf[12:16], []byte{'f', 'm', 't', ' '})
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], uint16(blockAlign))
	putLE16(buf[34:36], 16) // bits per sample
	// data chunk
	copy(buf[36:40], []byte{'d', 'a', 't', 'a'})
	putLE32(buf[40:44], uint32(dataSize))
	amp := 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767.0 * amp)
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
