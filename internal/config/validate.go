package config

import (
	"errors"
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// The Discord token is checked separately by RequireToken so that offline
// commands (migrate, reset-scope) run without one.
func (c *Config) Validate() error {
	if c.Discord.EventTimeout <= 0 {
		return fmt.Errorf("discord.event_timeout must be > 0 (got %s)", c.Discord.EventTimeout)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Locks.validate(); err != nil {
		return fmt.Errorf("locks: %w", err)
	}
	if err := c.Dispatch.validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	return nil
}

// RequireToken reports an error when no bot token is configured.
func (c DiscordConfig) RequireToken() error {
	if c.Token == "" {
		return errors.New("discord.token is required (DISCORD_TOKEN)")
	}
	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverPostgres:
		if s.DSN == "" {
			return errors.New("dsn is required for the postgres driver")
		}
		if s.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", s.MaxConns)
		}
		if s.MinConns < 0 || s.MinConns > s.MaxConns {
			return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", s.MinConns)
		}
	case DriverSQLite:
		if s.SQLitePath == "" {
			return errors.New("sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", s.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

func (l *LocksConfig) validate() error {
	switch l.Driver {
	case LockMemory:
	case LockRedis:
		if l.RedisAddr == "" {
			return errors.New("redis_addr is required for the redis driver")
		}
		if l.TTL <= 0 {
			return fmt.Errorf("ttl must be > 0 (got %s)", l.TTL)
		}
		if l.RetryInterval <= 0 {
			return fmt.Errorf("retry_interval must be > 0 (got %s)", l.RetryInterval)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", l.Driver, LockMemory, LockRedis)
	}
	return nil
}

func (d *DispatchConfig) validate() error {
	if d.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", d.Concurrency)
	}
	if d.RatePerSecond <= 0 {
		return fmt.Errorf("rate_per_second must be > 0 (got %v)", d.RatePerSecond)
	}
	if d.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", d.Burst)
	}
	if d.SendTimeout <= 0 {
		return fmt.Errorf("send_timeout must be > 0 (got %s)", d.SendTimeout)
	}
	return nil
}
