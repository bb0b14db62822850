package desktop

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// tone describes a sine sweep.
type tone struct {
	from, to float64 // Hz
	length   time.Duration
	volume   float64
}

var (
	toneMove     = tone{from: 880, to: 880, length: 40 * time.Millisecond, volume: 0.15}
	toneCatch    = tone{from: 600, to: 1200, length: 120 * time.Millisecond, volume: 0.2}
	toneGameOver = tone{from: 440, to: 110, length: 600 * time.Millisecond, volume: 0.25}
)

// pcm renders the tone as 16-bit little-endian stereo, the format ebiten's
// audio players read. The tail fades out to avoid a click.
func (t tone) pcm() []byte {
	n := int(t.length.Seconds() * sampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*p
		phase += 2 * math.Pi * freq / sampleRate
		env := t.volume * math.Min(1, (1-p)*8)
		v := int16(math.Sin(phase) * env * math.MaxInt16)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}

// Beeper plays the game's sound effects through ebiten's audio context.
type Beeper struct {
	ctx      *audio.Context
	move     []byte
	catch    []byte
	gameOver []byte
	playing  []*audio.Player
}

// NewBeeper creates the process-wide audio context and renders the tones.
// Only one Beeper may exist per process.
func NewBeeper() *Beeper {
	return &Beeper{
		ctx:      audio.NewContext(sampleRate),
		move:     toneMove.pcm(),
		catch:    toneCatch.pcm(),
		gameOver: toneGameOver.pcm(),
	}
}

func (b *Beeper) PlayMovement() { b.play(b.move) }
func (b *Beeper) PlayCatch()    { b.play(b.catch) }
func (b *Beeper) PlayGameOver() { b.play(b.gameOver) }

// play starts a new player for pcm. Players are kept until they finish.
func (b *Beeper) play(pcm []byte) {
	live := b.playing[:0]
	for _, p := range b.playing {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	b.playing = live

	p := b.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	b.playing = append(b.playing, p)
}
