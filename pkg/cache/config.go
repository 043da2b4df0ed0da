package cache

import "time"

type Option func(*Config)

// Config holds Redis client configuration.
type Config struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// WithAddr sets the Redis address.
func WithAddr(addr string) Option {
	return func(c *Config) {
		c.Addr = addr
	}
}

// WithPassword sets the Redis password.
func WithPassword(password string) Option {
	return func(c *Config) {
		c.Password = password
	}
}

// WithDB sets the Redis database index.
func WithDB(db int) Option {
	return func(c *Config) {
		c.DB = db
	}
}

// WithTimeouts sets dial, read and write timeouts.
func WithTimeouts(dial, read, write time.Duration) Option {
	return func(c *Config) {
		c.DialTimeout = dial
		c.ReadTimeout = read
		c.WriteTimeout = write
	}
}

// WithPoolSize sets the connection pool size.
func WithPoolSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.PoolSize = n
		}
	}
}
