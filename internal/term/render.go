package term

import (
	"gridpac/internal/locale"
	"gridpac/internal/state"
	tm "gridpac/internal/tilemap"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell spans two terminal columns so emoji ghosts line up.
const cellWidth = 2

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	dotStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorGold).Reverse(true)
)

const (
	wallRune   = '█'
	dotRune    = '·'
	playerRune = 'ᗧ'
	ghostRune  = 'G'
)

func (f *Frontend) Draw() {
	s := f.state
	n := s.Size()
	f.screen.Clear()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch s.TileAt(x, y) {
			case tm.TileWall:
				f.screen.SetContent(x*cellWidth, y, wallRune, nil, wallStyle)
				f.screen.SetContent(x*cellWidth+1, y, wallRune, nil, wallStyle)
			case tm.TileDot:
				f.screen.SetContent(x*cellWidth, y, dotRune, nil, dotStyle)
			}
		}
	}
	for _, gh := range s.Ghosts() {
		r := ghostRune
		if rs := []rune(gh.Glyph); len(rs) > 0 {
			r = rs[0]
		}
		f.screen.SetContent(gh.Pos.X*cellWidth, gh.Pos.Y, r, nil, tcell.StyleDefault)
	}
	p := s.Player()
	f.screen.SetContent(p.X*cellWidth, p.Y, playerRune, nil, playerStyle)

	drawText(f.screen, 0, n, locale.Score(s.Score()), hudStyle)
	if s.Phase() == state.PhaseEnded {
		width := n * cellWidth
		drawCentered(f.screen, width, n/2, locale.Banner(s.Outcome()), bannerStyle)
		drawCentered(f.screen, width, n/2+1, locale.Dismiss(), hudStyle)
	}
	f.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, msg string, style tcell.Style) {
	for i, r := range []rune(msg) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(screen tcell.Screen, width, y int, msg string, style tcell.Style) {
	x := (width - len([]rune(msg))) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, msg, style)
}
