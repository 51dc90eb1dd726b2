package classdex

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver     string // "redis", "sqlite" or "memory"
	addrs      []string
	password   string
	sqlitePath string

	keyPrefix  string
	historyTTL time.Duration

	clock  func() time.Time
	logger *zap.Logger
}

// WithRedis configures the client to read the catalog from a Redis
// instance with the JSON module. Search history is enabled on the same
// connection.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithSQLite configures the client to read the catalog from a SQLite file.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "sqlite"
		c.sqlitePath = path
	})
}

// WithMemorySeed configures an in-memory catalog pre-seeded with demo
// classes, instructors and venues. Useful for prototyping and tests.
func WithMemorySeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "memory"
	})
}

// WithKeyPrefix overrides the key namespace for the redis driver.
// Default: "classdex:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithHistoryTTL overrides the retention of recorded searches for the
// redis driver. Default: 7 days.
func WithHistoryTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.historyTTL = ttl
	})
}

// WithClock overrides the time source used for date-bucket filtering.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *clientConfig) {
		c.clock = now
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
