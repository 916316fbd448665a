package remote

import "absorb/internal/sim"

// Protocol uses single-character JSON keys to keep per-tick frames small.
//
//	Client → Server:
//	  "i" = input   {"t":"i","l":1,"r":0,"u":0,"d":0}
//	  "p" = pointer {"t":"p","x":0.2,"y":-0.1,"o":1}   (offset from centre, o=0 releases)
//	Server → Client:
//	  "w" = welcome {"t":"w","i":"uuid","n":7}
//	  "s" = state   {"t":"s","c":[x,y,r,0,...],"k":[r,g,b,f,...],"l":0,"g":"playing","b":1}
//	  "x" = text    {"t":"x","m":"Level 1","d":0,"u":1800}
//	  "a" = sound   {"t":"a","n":"move-start"}
//	  "e" = error   {"t":"e","m":"Server full"}
const (
	MsgInput   = "i"
	MsgPointer = "p"
	MsgWelcome = "w"
	MsgState   = "s"
	MsgText    = "x"
	MsgSound   = "a"
	MsgError   = "e"
)

// ClientMessage is any message from the browser.
type ClientMessage struct {
	Type  string  `json:"t"`
	Left  int     `json:"l,omitempty"`
	Right int     `json:"r,omitempty"`
	Up    int     `json:"u,omitempty"`
	Down  int     `json:"d,omitempty"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	On    int     `json:"o,omitempty"`
}

func (m ClientMessage) keys() sim.Input {
	return sim.Input{Left: m.Left == 1, Right: m.Right == 1, Up: m.Up == 1, Down: m.Down == 1}
}

type WelcomeMsg struct {
	Type   string `json:"t"`
	ID     string `json:"i"`
	Levels int    `json:"n"`
}

// StateMsg carries the render buffers verbatim, four floats per slot each.
type StateMsg struct {
	Type    string    `json:"t"`
	Circles []float32 `json:"c"`
	Colors  []float32 `json:"k"`
	Level   int       `json:"l"`
	State   string    `json:"g"`
	Border  float64   `json:"b"`
}

type TextMsg struct {
	Type     string  `json:"t"`
	Message  string  `json:"m"`
	Delay    float64 `json:"d"`
	Duration float64 `json:"u"`
}

type SoundMsg struct {
	Type string `json:"t"`
	Name string `json:"n"`
}

type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}
