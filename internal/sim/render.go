package sim

// Floats per slot in each render buffer.
const (
	CircleStride = 4 // x, y, radius, 0
	ColorStride  = 4 // r, g, b, about-to-be-absorbed
)

// RenderBuffers is the flat per-slot export consumed by renderers.
type RenderBuffers struct {
	CircleProps []float32
	ColorProps  []float32
}

// Export writes circles into b, reusing its backing arrays.
func (b *RenderBuffers) Export(circles []Circle) {
	n := len(circles)
	if cap(b.CircleProps) < n*CircleStride {
		b.CircleProps = make([]float32, n*CircleStride)
		b.ColorProps = make([]float32, n*ColorStride)
	}
	b.CircleProps = b.CircleProps[:n*CircleStride]
	b.ColorProps = b.ColorProps[:n*ColorStride]

	for i := range circles {
		c := &circles[i]
		p := b.CircleProps[i*CircleStride:]
		p[0] = float32(c.X)
		p[1] = float32(c.Y)
		p[2] = float32(c.DrawRadius())
		p[3] = 0

		col := b.ColorProps[i*ColorStride:]
		col[0] = float32(c.Color.R) / 255
		col[1] = float32(c.Color.G) / 255
		col[2] = float32(c.Color.B) / 255
		col[3] = 0
		if c.Flagged {
			col[3] = 1
		}
	}
}

// RenderBuffers exports the current frame. The returned slices are reused by the
// next call.
func (c *Context) RenderBuffers() RenderBuffers {
	c.buffers.Export(c.Circles)
	return c.buffers
}
