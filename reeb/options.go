package reeb

import "context"

// Option configures a Tracker.Run call.
type Option func(*config)

type config struct {
	ctx context.Context
}

func newConfig(opts []Option) config {
	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithContext makes Run abort once ctx is done, returning ctx.Err(). If ctx
// is done during the seed search the returned graph is nil; if it is done
// between BFS steps, the partially-built graph accumulated so far is
// returned alongside the error.
//
// WithContext panics if ctx is nil; Run itself never panics.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("reeb: WithContext requires a non-nil context")
	}
	return func(cfg *config) { cfg.ctx = ctx }
}
