package synth

import (
	"io"
	"math"

	"github.com/gopxl/beep"
)

// BytesPerFrame is one stereo float32 LE frame.
const BytesPerFrame = 8

// Reader encodes a streamer as interleaved stereo float32 LE, the format an oto
// context created with FormatFloat32LE consumes.
type Reader struct {
	s    beep.Streamer
	buf  [][2]float64
	done bool
}

func NewReader(s beep.Streamer) *Reader {
	return &Reader{s: s, buf: make([][2]float64, 512)}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	frames := min(len(p)/BytesPerFrame, len(r.buf))
	if frames == 0 {
		return 0, nil
	}
	n, ok := r.s.Stream(r.buf[:frames])
	for i := 0; i < n; i++ {
		putStereoF32LR(p, i, clip(r.buf[i][0]), clip(r.buf[i][1]))
	}
	if !ok {
		r.done = true
		if n == 0 {
			if err := r.s.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
	}
	return n * BytesPerFrame, nil
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// putStereoF32LR writes independent left/right samples in [-1,1] at frame i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	l := math.Float32bits(float32(left))
	r := math.Float32bits(float32(right))
	o := i * BytesPerFrame
	buf[o] = byte(l)
	buf[o+1] = byte(l >> 8)
	buf[o+2] = byte(l >> 16)
	buf[o+3] = byte(l >> 24)
	buf[o+4] = byte(r)
	buf[o+5] = byte(r >> 8)
	buf[o+6] = byte(r >> 16)
	buf[o+7] = byte(r >> 24)
}
