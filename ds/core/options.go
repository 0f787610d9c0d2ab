package core

import "go.uber.org/zap"

// Mode controls how a container reports an invalid operation.
type Mode int

const (
	// Strict returns an error from every invalid operation.
	Strict Mode = iota
	// Lenient logs the failure and returns the zero value with a nil error.
	// It exists for callers ported from code that relied on silent defaults.
	Lenient
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// Growth selects how a contiguous buffer acquires capacity on overflow.
type Growth int

const (
	// GrowDouble doubles the capacity, giving amortized O(1) appends.
	GrowDouble Growth = iota
	// GrowExact allocates exactly the slots required by the pending write.
	GrowExact
	// GrowFixed never reallocates; overflow fails with ErrCapacityExceeded.
	GrowFixed
)

func (g Growth) String() string {
	switch g {
	case GrowDouble:
		return "double"
	case GrowExact:
		return "exact"
	case GrowFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Next returns the capacity to allocate when a buffer holding capacity
// slots must hold at least need elements. ok is false when the policy
// forbids growth.
func (g Growth) Next(capacity, need int) (next int, ok bool) {
	if need <= capacity {
		return capacity, true
	}
	switch g {
	case GrowExact:
		return need, true
	case GrowFixed:
		return capacity, false
	default:
		next = capacity * 2
		if next < 1 {
			next = 1
		}
		if next < need {
			next = need
		}
		return next, true
	}
}

// Config defines settings shared by all containers.
type Config struct {
	Mode   Mode
	Growth Growth
	Logger *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns strict mode, doubling growth and a no-op logger.
func DefaultConfig() Config {
	return Config{
		Mode:   Strict,
		Growth: GrowDouble,
		Logger: zap.NewNop(),
	}
}

// WithMode sets the error reporting mode.
func WithMode(mode Mode) Option {
	return func(cfg *Config) {
		if mode == Strict || mode == Lenient {
			cfg.Mode = mode
		}
	}
}

// WithGrowth sets the capacity growth policy.
func WithGrowth(growth Growth) Option {
	return func(cfg *Config) {
		switch growth {
		case GrowDouble, GrowExact, GrowFixed:
			cfg.Growth = growth
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Check applies the configured mode to err. In strict mode err is returned
// unchanged. In lenient mode a non-nil err is logged and dropped.
func (c Config) Check(op string, err error) error {
	if err == nil || c.Mode == Strict {
		return err
	}
	c.Log().Warn("suppressed container error",
		zap.String("op", op),
		zap.Error(err),
	)
	return nil
}

// Log returns the configured logger, or a no-op logger for a zero Config.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
