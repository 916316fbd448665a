package tui

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"absorb/internal/sim"
	"absorb/internal/view"
)

// CellAspect is the height/width ratio of a terminal cell.
const CellAspect = 2.0

// hudRows are reserved above the arena.
const hudRows = 1

var (
	styleOutside = tcell.StyleDefault.Background(tcell.NewRGBColor(12, 14, 22))
	styleArena   = tcell.StyleDefault.Background(tcell.NewRGBColor(22, 26, 40))
	styleBorder  = tcell.StyleDefault.Background(tcell.NewRGBColor(120, 130, 170))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(240, 240, 245)).Background(tcell.NewRGBColor(12, 14, 22))
	styleHint    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 170, 200)).Background(tcell.NewRGBColor(12, 14, 22))
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
)

func circleStyle(c sim.RGB) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// arenaSize is the viewport below the HUD.
func arenaSize(s tcell.Screen) (w, h int) {
	w, h = s.Size()
	return w, max(h-hudRows, 0)
}

// drawArena paints the arena fill and a one-cell border around it.
func drawArena(s tcell.Screen, cam *view.Camera, border float64) {
	w, h := arenaSize(s)
	cw := 1 / (cam.Zoom * cam.Aspect) // world width of one cell
	ch := 1 / cam.Zoom
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wx, wy := cam.ScreenToWorld(float64(x)+0.5, float64(y)+0.5, w, h)
			ax, ay := math.Abs(wx), math.Abs(wy)
			st := styleOutside
			switch {
			case ax <= border && ay <= border:
				st = styleArena
			case ax <= border+cw && ay <= border+ch:
				st = styleBorder
			}
			s.SetContent(x, y+hudRows, ' ', nil, st)
		}
	}
}

// drawCircles fills every cell whose centre lies inside a circle. Larger circles
// are drawn first and the player last so nothing small is hidden.
func drawCircles(s tcell.Screen, cam *view.Camera, circles []sim.Circle) {
	w, h := arenaSize(s)
	order := make([]int, 0, len(circles))
	for i := range circles {
		if circles[i].DrawRadius() > 0 && !circles[i].IsPlayer() {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		return circles[order[a]].DrawRadius() > circles[order[b]].DrawRadius()
	})
	if len(circles) > sim.PlayerIndex && circles[sim.PlayerIndex].DrawRadius() > 0 {
		order = append(order, sim.PlayerIndex)
	}

	for _, i := range order {
		c := &circles[i]
		r := c.DrawRadius()
		st := circleStyle(c.Color)
		glyph := ' '
		if c.Flagged {
			glyph = '░'
			st = st.Foreground(tcell.ColorWhite)
		}

		x0, y0 := cam.WorldToScreen(c.X-r, c.Y+r, w, h)
		x1, y1 := cam.WorldToScreen(c.X+r, c.Y-r, w, h)
		hit := false
		for y := max(int(y0), 0); y <= min(int(y1), h-1); y++ {
			for x := max(int(x0), 0); x <= min(int(x1), w-1); x++ {
				wx, wy := cam.ScreenToWorld(float64(x)+0.5, float64(y)+0.5, w, h)
				if sim.Distance(wx, wy, c.X, c.Y) <= r {
					s.SetContent(x, y+hudRows, glyph, nil, st)
					hit = true
				}
			}
		}
		if !hit {
			// Too small to cover a cell centre; mark the cell it sits in.
			cx, cy := cam.WorldToScreen(c.X, c.Y, w, h)
			if x, y := int(cx), int(cy); x >= 0 && x < w && y >= 0 && y < h {
				s.SetContent(x, y+hudRows, '•', nil, st.Foreground(tcell.ColorWhite))
			}
		}
	}
}

// drawParticles marks the cell under each live particle, keeping its background.
func drawParticles(s tcell.Screen, cam *view.Camera, ps *view.ParticleSystem) {
	w, h := arenaSize(s)
	for i := range ps.P {
		p := &ps.P[i]
		if p.Radius() <= 0 {
			continue
		}
		sx, sy := cam.WorldToScreen(p.X, p.Y, w, h)
		x, y := int(sx), int(sy)
		if sx < 0 || sy < 0 || x >= w || y >= h {
			continue
		}
		_, _, st, _ := s.GetContent(x, y+hudRows)
		fg := tcell.NewRGBColor(int32(p.Col.R), int32(p.Col.G), int32(p.Col.B))
		s.SetContent(x, y+hudRows, '*', nil, st.Foreground(fg))
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func drawCentered(s tcell.Screen, y int, text string, st tcell.Style) {
	w, _ := s.Size()
	drawText(s, (w-len([]rune(text)))/2, y, text, st)
}

// drawHUD writes the status row and any banner over the arena.
func drawHUD(s tcell.Screen, ctx *sim.Context, banner *view.Banner, status string, now float64) {
	w, h := s.Size()
	for x := 0; x < w; x++ {
		s.SetContent(x, 0, ' ', nil, styleHUD)
	}
	drawText(s, 1, 0, fmt.Sprintf("Level %d/%d", ctx.Session.CurrentLevel+1, ctx.NumLevels()), styleHUD)
	size := fmt.Sprintf("Size %.3f", ctx.Player().Radius)
	if status != "" {
		size = status + "  " + size
	}
	drawText(s, w-len(size)-1, 0, size, styleHUD)

	if msg := banner.Visible(now); msg != "" {
		drawCentered(s, h/3, " "+msg+" ", styleBanner)
	}
	if hint := view.Prompt(ctx.Session.State); hint != "" {
		drawCentered(s, h/3+2, " "+hint+" ", styleHint)
	}
}
