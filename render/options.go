package render

// Option configures SVG and IPE rendering.
type Option func(*config)

type config struct {
	xScale float64
	yScale float64
}

func newConfig(opts []Option) config {
	cfg := config{xScale: 16, yScale: 16}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithXScale overrides the default horizontal scale (16).
//
// WithXScale panics if scale is not positive.
func WithXScale(scale float64) Option {
	if scale <= 0 {
		panic("render: WithXScale requires a positive scale")
	}
	return func(cfg *config) { cfg.xScale = scale }
}

// WithYScale overrides the default vertical (per-layer) scale (16).
//
// WithYScale panics if scale is not positive.
func WithYScale(scale float64) Option {
	if scale <= 0 {
		panic("render: WithYScale requires a positive scale")
	}
	return func(cfg *config) { cfg.yScale = scale }
}
