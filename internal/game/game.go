package game

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"gridpac/internal/entities"
	"gridpac/internal/locale"
	"gridpac/internal/state"
	tm "gridpac/internal/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	tileSize         = 24
	hudHeight        = 18
	updatesPerSecond = 60
	// Held arrow keys repeat after keyRepeatDelay updates, then every keyRepeatInterval.
	keyRepeatDelay    = 15
	keyRepeatInterval = 4
)

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	dotColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	ghostColors = []color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},     // red
		{R: 255, G: 128, B: 255, A: 255}, // pink
		{R: 255, G: 128, B: 0, A: 255},   // orange
		{R: 0, G: 191, B: 255, A: 255},   // cyan
	}
)

type Game struct {
	state      *state.State
	audio      *AudioManager
	scale      float64
	fullscreen bool
	quit       bool
}

// New wraps a game state in an ebiten.Game. A nil audio manager plays nothing.
func New(s *state.State, audio *AudioManager, scale float64) *Game {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1.0
	}
	return &Game{state: s, audio: audio, scale: scale}
}

// FitScale returns the scale that fits a native-size board into ~75% of the display.
func FitScale(size, displayW, displayH int) float64 {
	nativeW, nativeH := NativeSize(size)
	fit := 0.75
	maxW := int(float64(displayW) * fit)
	maxH := int(float64(displayH) * fit)
	scale := math.Min(float64(maxW)/float64(nativeW), float64(maxH)/float64(nativeH))
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 1.0
	}
	return scale
}

// NativeSize is the unscaled pixel size of a board with the HUD strip.
func NativeSize(size int) (int, int) {
	return size * tileSize, size*tileSize + hudHeight
}

func (g *Game) ScreenWidth() int {
	w, _ := NativeSize(g.state.Size())
	return int(float64(w) * g.scale)
}

func (g *Game) ScreenHeight() int {
	_, h := NativeSize(g.state.Size())
	return int(float64(h) * g.scale)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

func (g *Game) Update() error {
	dir, dismiss := g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	g.step(dir, dismiss, time.Second/updatesPerSecond)
	return nil
}

// step applies one update worth of input and elapsed time.
func (g *Game) step(dir entities.Direction, dismiss bool, dt time.Duration) {
	if g.state.Phase() == state.PhaseEnded {
		if dismiss {
			g.state.Reset()
		}
		return
	}
	g.apply(g.state.MovePlayer(dir))
	g.apply(g.state.Advance(dt))
}

func (g *Game) apply(res state.Result) {
	if res.Collected > 0 {
		g.audio.PlayDot()
	}
	switch res.Outcome {
	case state.OutcomeWin:
		g.audio.PlayWin()
	case state.OutcomeLoss:
		g.audio.PlayLoss()
	default:
		return
	}
	log.Printf("round %s (%s) ended: %s score=%d", g.state.Round(), g.state.LayoutName(), res.Outcome, g.state.Score())
}

func (g *Game) handleInput() (entities.Direction, bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
	}
	dismiss := inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	switch {
	case keyRepeated(ebiten.KeyArrowUp):
		return entities.DirUp, dismiss
	case keyRepeated(ebiten.KeyArrowDown):
		return entities.DirDown, dismiss
	case keyRepeated(ebiten.KeyArrowLeft):
		return entities.DirLeft, dismiss
	case keyRepeated(ebiten.KeyArrowRight):
		return entities.DirRight, dismiss
	}
	return entities.DirNone, dismiss
}

func keyRepeated(k ebiten.Key) bool {
	return repeatFires(inpututil.KeyPressDuration(k))
}

// repeatFires reports whether a key held for d updates should produce a move.
func repeatFires(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Draw at native resolution then scale up
	nativeW, nativeH := NativeSize(g.state.Size())
	off := ebiten.NewImage(nativeW, nativeH)

	g.drawBoard(off)

	p := g.state.Player()
	cx, cy := cellCenter(p)
	vector.DrawFilledCircle(off, cx, cy, float32(tileSize/2-2), playerColor, true)

	for _, gh := range g.state.Ghosts() {
		cx, cy := cellCenter(gh.Pos)
		vector.DrawFilledCircle(off, cx, cy, float32(tileSize/2-2), ghostColors[gh.Palette%len(ghostColors)], true)
	}

	boardH := g.state.Size() * tileSize
	hud := fmt.Sprintf("%s  Dots: %d", locale.Score(g.state.Score()), g.state.DotCount())
	text.Draw(off, hud, basicfont.Face7x13, 4, boardH+13, color.White)

	if g.state.Phase() == state.PhaseEnded {
		drawCentered(off, locale.Banner(g.state.Outcome()), nativeW, boardH/2-8, color.RGBA{R: 255, G: 215, B: 0, A: 255})
		drawCentered(off, locale.Dismiss(), nativeW, boardH/2+10, color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

func (g *Game) drawBoard(dst *ebiten.Image) {
	n := g.state.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px := float32(x * tileSize)
			py := float32(y * tileSize)
			switch g.state.TileAt(x, y) {
			case tm.TileWall:
				vector.DrawFilledRect(dst, px, py, tileSize, tileSize, wallColor, false)
			case tm.TileDot:
				vector.DrawFilledCircle(dst, px+tileSize/2, py+tileSize/2, float32(tileSize)/8, dotColor, true)
			}
		}
	}
}

func cellCenter(p entities.Point) (float32, float32) {
	return float32(p.X*tileSize + tileSize/2), float32(p.Y*tileSize + tileSize/2)
}

// basicfont.Face7x13 is 7 pixels wide per character
func drawCentered(dst *ebiten.Image, msg string, width, y int, clr color.Color) {
	w := len([]rune(msg)) * 7
	bg := color.RGBA{A: 200}
	vector.DrawFilledRect(dst, float32((width-w)/2-4), float32(y-11), float32(w+8), 15, bg, false)
	text.Draw(dst, msg, basicfont.Face7x13, (width-w)/2, y, clr)
}
