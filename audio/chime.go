package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFrequency   = 880
	eatDuration    = 50 * time.Millisecond
	resetFrequency = 220
	resetDuration  = 200 * time.Millisecond
)

// Chime plays a short tone when the snake eats an apple and a low one when
// it resets. It satisfies game.Listener.
type Chime struct {
	play func(beep.Streamer)
	log  zerolog.Logger
}

// NewChime opens the speaker. A failure is returned so callers can go on
// without sound.
func NewChime(log zerolog.Logger) (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{
		play: func(s beep.Streamer) { speaker.Play(s) },
		log:  log,
	}, nil
}

func (c *Chime) Close() {
	speaker.Close()
}

func (c *Chime) AppleEaten(int) {
	c.tone(eatFrequency, eatDuration)
}

func (c *Chime) SnakeReset(int) {
	c.tone(resetFrequency, resetDuration)
}

func (c *Chime) tone(freq int, d time.Duration) {
	s, err := Tone(freq, d)
	if err != nil {
		c.log.Warn().Err(err).Int("freq", freq).Msg("Tone")
		return
	}
	c.play(s)
}

// Tone returns a sine wave of freq Hz lasting d.
func Tone(freq int, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, fmt.Errorf("sine tone %d Hz: %w", freq, err)
	}
	return beep.Take(sampleRate.N(d), sine), nil
}
