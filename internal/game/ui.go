package game

import (
	"fmt"

	"absorb/internal/sim"
	"absorb/internal/view"
)

// HUDStatus carries the frontend-owned values the HUD shows next to simulation state.
type HUDStatus struct {
	Audio  bool
	Muted  bool
	Volume float64
}

// RenderHUD draws the level counter, player size, banners and audio status.
func RenderHUD(r *Renderer, ctx *sim.Context, banner *view.Banner, status HUDStatus, nowMs float64, fbW, fbH int) {
	s := float32(HUDScale)
	lineH := int(float32(view.GlyphH) * s)

	levelStr := fmt.Sprintf("Level %d/%d", ctx.Session.CurrentLevel+1, ctx.NumLevels())
	r.DrawString(levelStr, HUDMargin, HUDMargin, s, Palette.Text)

	sizeStr := fmt.Sprintf("Size %.3f", ctx.Player().Radius)
	r.DrawString(sizeStr, fbW-view.TextWidth(sizeStr, s)-HUDMargin, HUDMargin, s, Palette.Text)

	if status.Audio {
		audioStr := fmt.Sprintf("Vol %d%%", int(status.Volume*100+0.5))
		col := Palette.Hint
		if status.Muted {
			audioStr, col = "Muted", Palette.Danger
		}
		r.DrawString(audioStr, HUDMargin, fbH-HUDMargin-lineH, s, col)
	}

	if msg := banner.Visible(nowMs); msg != "" {
		r.DrawStringCentered(msg, fbW/2, fbH/3, BannerScale, Palette.Text)
	}
	if hint := view.Prompt(ctx.Session.State); hint != "" {
		r.DrawStringCentered(hint, fbW/2, fbH/3+lineH*2, HintScale, Palette.Hint)
	}

	keys := "Arrows/WASD move  M mute  +/- volume  Esc quit"
	r.DrawStringCentered(keys, fbW/2, fbH-HUDMargin-lineH, HintScale, Palette.Hint)

	r.FlushText(fbW, fbH)
}
