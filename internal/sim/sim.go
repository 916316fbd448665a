package sim

import (
	"fmt"
	"log"
)

// Options configures a new Context.
type Options struct {
	Tuning     Tuning
	Seed       uint64
	StartLevel int
	Levels     []LevelParams // nil = the default campaign
	Logger     *log.Logger   // nil = silent
}

// Context owns all simulation state. It is not safe for concurrent use; callers
// drive it from a single frame loop.
type Context struct {
	Tuning  Tuning
	Session Session
	Circles []Circle
	Events  *EventBus
	Logger  *log.Logger

	levels      []LevelParams
	seed        uint64
	params      LevelParams
	startRadius float64
	diagnostics []Diagnostic
	sounds      map[SoundKind]bool
	buffers     RenderBuffers
}

func NewContext(opts Options) (*Context, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	levels := opts.Levels
	if levels == nil {
		levels = Levels
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: empty campaign", ErrInvalidLevel)
	}
	for i, p := range levels {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	if opts.StartLevel < 0 || opts.StartLevel >= len(levels) {
		return nil, fmt.Errorf("%w: start level %d out of range", ErrInvalidLevel, opts.StartLevel+1)
	}

	c := &Context{
		Tuning: opts.Tuning,
		Events: NewEventBus(),
		Logger: opts.Logger,
		levels: levels,
		seed:   opts.Seed,
		sounds: make(map[SoundKind]bool),
	}
	c.Session.CurrentLevel = opts.StartLevel
	if err := c.resetLevel(0); err != nil {
		return nil, err
	}
	return c, nil
}

// Start emits the opening banner. Call after subscribing adapters.
func (c *Context) Start() {
	c.text(fmt.Sprintf("Level %d", c.Session.CurrentLevel+1), LevelBannerDelay, LevelBannerTime)
	c.Events.Emit(Event{Type: EventLevelStart, Level: c.Session.CurrentLevel})
}

func (c *Context) Player() *Circle { return &c.Circles[PlayerIndex] }

func (c *Context) Params() LevelParams { return c.params }

func (c *Context) StartRadius() float64 { return c.startRadius }

func (c *Context) NumLevels() int { return len(c.levels) }

// Diagnostics returns the generation diagnostics of the current level.
func (c *Context) Diagnostics() []Diagnostic { return c.diagnostics }

// Tick advances the simulation by one frame at timestamp now (ms).
func (c *Context) Tick(now float64, in Input) {
	switch c.Session.State {
	case StateIdle:
		if in.Any() && c.Session.Ready(now) {
			c.setState(StatePlaying, now)
			c.play(now, in)
		}
	case StatePlaying:
		c.play(now, in)
	case StateLevelWon:
		c.drift()
		if in.Any() && c.Session.Ready(now) {
			c.advance(now)
		}
	case StateGameOver:
		c.drift()
		if in.Any() && c.Session.Ready(now) {
			c.retry(now)
		}
	case StateGameWon:
		c.drift()
	}
	c.animate(now)
}

// play runs kinematics, the collision pass and the outcome checks, in that order.
func (c *Context) play(now float64, in Input) {
	c.move(in)
	res := Collide(c.Circles, c.Tuning, now)
	for _, ev := range res.Absorptions {
		c.Events.Emit(Event{Type: EventAbsorption, Absorption: ev, Level: c.Session.CurrentLevel})
	}
	Recolor(c.Circles)
	// Starts before the outcome checks so a winning absorption is still heard.
	if res.PlayerAbsorbing {
		c.playSound(SoundAbsorb)
	}

	switch {
	case res.PlayerAbsorbed:
		c.playSound(SoundAbsorbed)
		c.lose(now, "Absorbed")
		return
	case PlayerIsLargest(c.Circles):
		c.win(now)
		return
	case PlayerIsTooSmall(c.Circles, c.Tuning.GrowthDivisor):
		c.lose(now, "Too small to win")
		return
	}

	if c.Player().Speed() >= c.Tuning.MinVelThreshold {
		c.playSound(SoundMove)
	} else {
		c.stopSound(SoundMove)
	}
	if res.PlayerIntersects {
		c.playSound(SoundIntersect)
	} else {
		c.stopSound(SoundIntersect)
	}
}

func (c *Context) move(in Input) {
	for i := range c.Circles {
		ci := &c.Circles[i]
		if !ci.Active() {
			continue
		}
		Accelerate(ci, c.Tuning, in)
		Integrate(ci, c.Tuning, c.startRadius)
		Reflect(ci, c.params.BorderSize)
	}
}

// drift keeps circles moving after the round ended; the player only coasts.
func (c *Context) drift() {
	c.move(Input{})
}

func (c *Context) animate(now float64) {
	for i := range c.Circles {
		StepAnimation(&c.Circles[i], now, c.Tuning.GrowTime)
	}
	if c.sounds[SoundAbsorb] && !c.Player().Anim.Active {
		c.stopSound(SoundAbsorb)
	}
}

func (c *Context) lose(now float64, msg string) {
	c.setState(StateGameOver, now)
	c.Session.ReadyToTryAgainAt = now + c.Tuning.RestartTime
	c.text(msg+". Press any direction to try again", OutcomeBannerDelay, 0)
}

func (c *Context) win(now float64) {
	c.setState(StateLevelWon, now)
	c.Session.ReadyToTryAgainAt = now + c.Tuning.RestartTime
	c.playSound(SoundLevelWon)
	if c.Session.CurrentLevel+1 < len(c.levels) {
		c.text(fmt.Sprintf("Level %d complete! Press any direction", c.Session.CurrentLevel+1), OutcomeBannerDelay, 0)
	} else {
		c.text("Final level complete! Press any direction", OutcomeBannerDelay, 0)
	}
}

func (c *Context) advance(now float64) {
	if c.Session.CurrentLevel+1 >= len(c.levels) {
		c.setState(StateGameWon, now)
		c.playSound(SoundGameWon)
		c.text("You absorbed them all!", 0, 0)
		return
	}
	c.Session.CurrentLevel++
	c.restart(now)
}

func (c *Context) retry(now float64) {
	c.restart(now)
}

func (c *Context) restart(now float64) {
	if err := c.resetLevel(now); err != nil {
		// Levels were validated in NewContext.
		panic(err)
	}
	c.setState(StatePlaying, now)
	c.Start()
}

// resetLevel regenerates the current level from scratch.
func (c *Context) resetLevel(now float64) error {
	level := c.Session.CurrentLevel
	c.params = c.levels[level]
	c.Session.Attempt++
	rng := NewRand(LevelSeed(c.seed, level, c.Session.Attempt))
	g, err := GenerateLevel(c.params, c.Tuning, rng)
	if err != nil {
		return fmt.Errorf("generate level %d: %w", level+1, err)
	}
	c.Circles = g.Circles
	c.startRadius = g.StartRadius
	c.diagnostics = g.Diagnostics
	if c.Logger != nil {
		if g.Boosts > 0 {
			c.Logger.Printf("level %d: player start radius boosted %d times to %.4f", level+1, g.Boosts, g.StartRadius)
		}
		for _, d := range g.Diagnostics {
			c.Logger.Printf("level %d: %s", level+1, d)
		}
	}
	c.stopLoops()
	return nil
}

func (c *Context) setState(s GameState, now float64) {
	if !c.Session.transition(s) {
		return
	}
	if s != StatePlaying {
		c.stopLoops()
	}
	c.Events.Emit(Event{Type: EventStateChange, State: s, Level: c.Session.CurrentLevel})
}

// text emits a banner; duration 0 keeps it until the next banner.
func (c *Context) text(msg string, delay, duration float64) {
	c.Events.Emit(Event{Type: EventText, Text: msg, Delay: delay, Duration: duration, Level: c.Session.CurrentLevel})
}

// playSound starts a loop once per entry; one-shots always fire.
func (c *Context) playSound(k SoundKind) {
	if k.Looping() {
		if c.sounds[k] {
			return
		}
		c.sounds[k] = true
	}
	c.Events.Emit(Event{Type: EventSound, Sound: k, Start: true})
}

func (c *Context) stopSound(k SoundKind) {
	if !c.sounds[k] {
		return
	}
	c.sounds[k] = false
	c.Events.Emit(Event{Type: EventSound, Sound: k, Start: false})
}

func (c *Context) stopLoops() {
	for _, k := range []SoundKind{SoundMove, SoundAbsorb, SoundIntersect} {
		c.stopSound(k)
	}
}

// Playing reports whether loop k is currently started.
func (c *Context) Playing(k SoundKind) bool { return c.sounds[k] }
