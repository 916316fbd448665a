package remote

import (
	"encoding/binary"
	"log"
	"time"

	"absorb/internal/sim"
)

// Session drives one private simulation for one connection.
type Session struct {
	conn   *Conn
	ctx    *sim.Context
	logger *log.Logger
	start  time.Time
}

// sessionSeed derives a per-connection seed so simultaneous players get different arenas.
func sessionSeed(base uint64, c *Conn) uint64 {
	return base ^ binary.BigEndian.Uint64(c.ID[:8])
}

func NewSession(conn *Conn, opts sim.Options, logger *log.Logger) (*Session, error) {
	opts.Seed = sessionSeed(opts.Seed, conn)
	opts.Logger = logger
	ctx, err := sim.NewContext(opts)
	if err != nil {
		return nil, err
	}
	s := &Session{conn: conn, ctx: ctx, logger: logger}
	ctx.Events.Subscribe(sim.EventText, func(e sim.Event) {
		s.send(TextMsg{Type: MsgText, Message: e.Text, Delay: e.Delay, Duration: e.Duration})
	})
	ctx.Events.Subscribe(sim.EventSound, func(e sim.Event) {
		s.send(SoundMsg{Type: MsgSound, Name: e.Name()})
	})
	return s, nil
}

func (s *Session) send(msg any) {
	if err := s.conn.Send(msg); err != nil {
		s.logger.Printf("send to %s: %v", s.conn.ID, err)
	}
}

// Step ticks the simulation at now (ms) and pushes a state frame.
func (s *Session) Step(now float64) {
	s.ctx.Tick(now, s.conn.Input())
	buf := s.ctx.RenderBuffers()
	s.send(StateMsg{
		Type:    MsgState,
		Circles: buf.CircleProps,
		Colors:  buf.ColorProps,
		Level:   s.ctx.Session.CurrentLevel,
		State:   s.ctx.Session.State.String(),
		Border:  s.ctx.Params().BorderSize,
	})
}

// Run ticks at TickRate until done is closed.
func (s *Session) Run(done <-chan struct{}) {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	s.start = time.Now()
	s.ctx.Start()
	for {
		select {
		case <-done:
			return
		case t := <-ticker.C:
			s.Step(float64(t.Sub(s.start).Milliseconds()))
		}
	}
}
