package shader

// Color is a straight-alpha RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// White is the neutral vertex color.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Mul returns the elementwise product of two colors.
func (c Color) Mul(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

// Sampler looks up a texel. Implementations decide filtering and wrapping.
type Sampler interface {
	Sample(u, v float32) Color
}

// FragmentStage runs one fragment invocation. It returns the composed color
// and whether the fragment should be written; a false second return is the
// pipeline's discard, which must leave the target pixel untouched.
func (c Config) FragmentStage(in FragmentInput, tex Sampler) (Color, bool) {
	if c.CullBack && !in.FrontFacing {
		return Color{}, false
	}

	uv := RecoverUV(in.ScaledUV, in.InvDepth)
	return tex.Sample(uv.X, uv.Y).Mul(in.Color), true
}
