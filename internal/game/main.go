package game

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"absorb/internal/audio"
	"absorb/internal/config"
	"absorb/internal/sim"
	"absorb/internal/view"
)

// FollowZoom is the magnification used when the camera follows the player.
const FollowZoom = 2.0

func RunDesktop(cfg config.Config) {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	logger := log.New(os.Stderr, "absorb: ", log.LstdFlags)
	ctx, err := sim.NewContext(sim.Options{
		Tuning:     cfg.Tuning,
		Seed:       cfg.Seed,
		StartLevel: cfg.StartLevel,
		Logger:     logger,
	})
	if err != nil {
		panic(fmt.Errorf("simulation: %w", err))
	}

	var snd *audio.System
	if cfg.Audio {
		snd, err = audio.New(cfg.Volume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
			snd = nil
		} else {
			defer snd.Close()
			snd.Attach(ctx.Events)
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	br, bg, bb := rgbf(Palette.Background)
	gl.ClearColor(br, bg, bb, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	cam := view.NewCamera(FPS, cfg.Seed)
	cam.Watch(ctx.Events)
	var banner view.Banner
	banner.Watch(ctx.Events)
	particles := view.NewParticleSystem(view.MaxParticles, cfg.Seed)
	particles.Watch(ctx.Events)
	var particleBuf sim.RenderBuffers
	input := NewInput()

	ctx.Start()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyZ) {
			if cam.ZoomIn > 1 {
				cam.ZoomIn = 1
			} else {
				cam.ZoomIn = FollowZoom
			}
		}
		if snd != nil {
			if input.JustPressed(window, glfw.KeyM) {
				snd.ToggleMute()
			}
			if input.JustPressed(window, glfw.KeyEqual) || input.JustPressed(window, glfw.KeyKPAdd) {
				snd.SetVolume(snd.Volume() + VolumeStep)
			}
			if input.JustPressed(window, glfw.KeyMinus) || input.JustPressed(window, glfw.KeyKPSubtract) {
				snd.SetVolume(snd.Volume() - VolumeStep)
			}
		}

		nowMs := now * 1000
		ctx.Tick(nowMs, Snapshot(window))

		fbW, fbH := window.GetFramebufferSize()
		border := ctx.Params().BorderSize
		p := ctx.Player()
		cam.Update(dt, p.X, p.Y, border, fbW, fbH)
		particles.Update(dt)
		particles.Export(&particleBuf)

		gl.Clear(gl.COLOR_BUFFER_BIT)
		rend.DrawArena(cam, border, fbW, fbH)
		rend.DrawCircles(ctx.RenderBuffers(), cam, fbW, fbH, now)
		rend.DrawCircles(particleBuf, cam, fbW, fbH, now)

		status := HUDStatus{Audio: snd != nil}
		if snd != nil {
			status.Muted, status.Volume = snd.Muted(), snd.Volume()
		}
		RenderHUD(rend, ctx, &banner, status, nowMs, fbW, fbH)

		window.SwapBuffers()
	}
}
