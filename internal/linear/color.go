package linear

// Color is a 4-channel float32 color, linear RGBA, unclamped until encode.
type Color struct{ R, G, B, A float32 }

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp returns c + (o-c)*t.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		c.R + (o.R-c.R)*t,
		c.G + (o.G-c.G)*t,
		c.B + (o.B-c.B)*t,
		c.A + (o.A-c.A)*t,
	}
}

// Channel returns channel i (0=R,1=G,2=B,3=A).
func (c Color) Channel(i int) float32 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		return c.A
	}
}
