package config

import "time"

// Config is the root application configuration.
type Config struct {
	Discord  DiscordConfig  `yaml:"discord"`
	Storage  StorageConfig  `yaml:"storage"`
	Locks    LocksConfig    `yaml:"locks"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// DiscordConfig holds gateway and command settings.
type DiscordConfig struct {
	Token         string `yaml:"token"          env:"DISCORD_TOKEN"`
	ApplicationID string `yaml:"application_id" env:"DISCORD_APPLICATION_ID"`
	// SyncCommands registers slash commands in every guild on startup.
	SyncCommands bool `yaml:"sync_commands" env:"DISCORD_SYNC_COMMANDS" env-default:"true"`
	IgnoreBots   bool `yaml:"ignore_bots"   env:"DISCORD_IGNORE_BOTS"   env-default:"true"`
	// EventTimeout bounds the handling of one gateway event or interaction.
	EventTimeout time.Duration `yaml:"event_timeout" env:"DISCORD_EVENT_TIMEOUT" env-default:"30s"`
}

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StorageConfig holds record store settings.
type StorageConfig struct {
	Driver          string        `yaml:"driver"             env:"STORAGE_DRIVER"             env-default:"sqlite"`
	DSN             string        `yaml:"dsn"                env:"STORAGE_DSN"`
	SQLitePath      string        `yaml:"sqlite_path"        env:"STORAGE_SQLITE_PATH"        env-default:"./watchlist.db"`
	MaxConns        int32         `yaml:"max_conns"          env:"STORAGE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"STORAGE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"STORAGE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"STORAGE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"STORAGE_AUTO_MIGRATE"       env-default:"true"`
}

// Lock drivers.
const (
	LockMemory = "memory"
	LockRedis  = "redis"
)

// LocksConfig holds per-subject lock settings.
type LocksConfig struct {
	Driver        string        `yaml:"driver"         env:"LOCKS_DRIVER"         env-default:"memory"`
	RedisAddr     string        `yaml:"redis_addr"     env:"LOCKS_REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" env:"LOCKS_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"       env:"LOCKS_REDIS_DB"       env-default:"0"`
	KeyPrefix     string        `yaml:"key_prefix"     env:"LOCKS_KEY_PREFIX"     env-default:"watchlist:lock:"`
	TTL           time.Duration `yaml:"ttl"            env:"LOCKS_TTL"            env-default:"15s"`
	RetryInterval time.Duration `yaml:"retry_interval" env:"LOCKS_RETRY_INTERVAL" env-default:"50ms"`
}

// DispatchConfig holds alert delivery settings.
type DispatchConfig struct {
	Concurrency   int           `yaml:"concurrency"     env:"DISPATCH_CONCURRENCY"     env-default:"4"`
	RatePerSecond float64       `yaml:"rate_per_second" env:"DISPATCH_RATE_PER_SECOND" env-default:"5"`
	Burst         int           `yaml:"burst"           env:"DISPATCH_BURST"           env-default:"5"`
	SendTimeout   time.Duration `yaml:"send_timeout"    env:"DISPATCH_SEND_TIMEOUT"    env-default:"10s"`
}

// ServerConfig holds operator HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
