package loanengine

import (
	"time"

	"go.uber.org/zap"
)

// Clock provides a replaceable time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config carries the runtime dependencies of the engine. Every field is
// optional; zero values resolve to the defaults below.
type Config struct {
	Clock         Clock
	RoundStrategy RoundStrategy
	Logger        *zap.Logger
}

var cfg = defaults(Config{})

func defaults(c Config) Config {
	if c.Clock == nil {
		c.Clock = systemClock{}
	}
	if c.RoundStrategy == nil {
		c.RoundStrategy = HalfUp
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Start initializes the package-level configuration. Calling it is optional;
// the package works with defaults out of the box. Overriding RoundStrategy
// breaks cent parity with schedules produced under the half-up rule, so only
// do that for reconciliation against systems that round differently.
func Start(c Config) error {
	cfg = defaults(c)
	return nil
}
