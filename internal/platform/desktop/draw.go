package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/trashpanda/internal/games/trashpanda"
)

// Colors
var (
	colBackground = color.RGBA{0x1e, 0x22, 0x2a, 0xff}
	colStripe     = color.RGBA{0x26, 0x2b, 0x35, 0xff}
	colFur        = color.RGBA{0x8a, 0x8f, 0x98, 0xff}
	colMask       = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	colTrash      = color.RGBA{0x5c, 0xb8, 0x5c, 0xff}
	colEnemy      = color.RGBA{0xe0, 0x4f, 0x4f, 0xff}
	colShade      = color.RGBA{0x00, 0x00, 0x00, 0x40}
	colBanner     = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// spriteColors is the base fill for each sprite image.
var spriteColors = map[trashpanda.Sprite]color.RGBA{
	trashpanda.SpritePlayer:      colFur,
	trashpanda.SpriteCollectible: colTrash,
	trashpanda.SpriteHazard:      colEnemy,
}

// sprite is one DrawSprite call kept until the next Draw.
type sprite struct {
	kind       trashpanda.Sprite
	x, y, w, h float64
}

// drawList records the session's draw calls. Ebiten only allows drawing to
// the screen inside Draw, so frames are replayed there.
type drawList struct {
	w, h    float64
	sprites []sprite
}

func (d *drawList) Clear(w, h float64) {
	d.w, d.h = w, h
	d.sprites = d.sprites[:0]
}

func (d *drawList) DrawSprite(s trashpanda.Sprite, x, y, w, h float64) {
	d.sprites = append(d.sprites, sprite{kind: s, x: x, y: y, w: w, h: h})
}

// images caches one filled image per sprite, created on first use.
type images struct {
	byKind map[trashpanda.Sprite]*ebiten.Image
}

// image returns a 1x1 image in the sprite's color; DrawImage scales it.
func (im *images) image(s trashpanda.Sprite) *ebiten.Image {
	if im.byKind == nil {
		im.byKind = make(map[trashpanda.Sprite]*ebiten.Image, len(spriteColors))
	}
	img, ok := im.byKind[s]
	if !ok {
		img = ebiten.NewImage(1, 1)
		img.Fill(spriteColors[s])
		im.byKind[s] = img
	}
	return img
}

// drawSprites replays the list onto screen.
func drawSprites(screen *ebiten.Image, list *drawList, im *images) {
	for _, s := range list.sprites {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.w, s.h)
		op.GeoM.Translate(s.x, s.y)
		screen.DrawImage(im.image(s.kind), op)

		switch s.kind {
		case trashpanda.SpritePlayer:
			drawRaccoonFace(screen, s)
		case trashpanda.SpriteHazard:
			// Darker lower half
			vector.DrawFilledRect(screen, float32(s.x), float32(s.y+s.h/2), float32(s.w), float32(s.h/2), colShade, false)
		}
	}
}

// drawRaccoonFace paints the mask and eyes over the player's body.
func drawRaccoonFace(screen *ebiten.Image, s sprite) {
	x, y, w, h := float32(s.x), float32(s.y), float32(s.w), float32(s.h)
	vector.DrawFilledCircle(screen, x+w*0.2, y, w*0.14, colFur, true)
	vector.DrawFilledCircle(screen, x+w*0.8, y, w*0.14, colFur, true)
	vector.DrawFilledRect(screen, x, y+h*0.25, w, h*0.22, colMask, true)
	vector.DrawFilledCircle(screen, x+w*0.3, y+h*0.36, w*0.07, color.White, true)
	vector.DrawFilledCircle(screen, x+w*0.7, y+h*0.36, w*0.07, color.White, true)
}

// stripeWidth is the width of one background stripe in pixels.
const stripeWidth = 40

// stripes is the scrolling background. It only scrolls while active.
type stripes struct {
	active bool
	offset float64
}

// SetAmbientActive starts or stops the scroll.
func (s *stripes) SetAmbientActive(active bool) {
	s.active = active
}

func (s *stripes) advance() {
	if s.active {
		s.offset += 0.5
		if s.offset >= 2*stripeWidth {
			s.offset -= 2 * stripeWidth
		}
	}
}

// positions returns the left edge of every stripe visible in width w.
func (s *stripes) positions(w float64) []float64 {
	var xs []float64
	for x := s.offset - 2*stripeWidth; x < w; x += 2 * stripeWidth {
		xs = append(xs, x)
	}
	return xs
}

func (s *stripes) draw(screen *ebiten.Image) {
	b := screen.Bounds()
	for _, x := range s.positions(float64(b.Dx())) {
		vector.DrawFilledRect(screen, float32(x), 0, stripeWidth, float32(b.Dy()), colStripe, false)
	}
}
