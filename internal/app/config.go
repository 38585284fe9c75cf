package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	iauth "github.com/zhafranafif/Assignment4-ZhafranAfif/internal/auth"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/cache"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/database"
)

// Config represents the runtime configuration for the inventory backend.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig configures the HTTP server and logging.
type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	LogLevel    string `mapstructure:"log_level"`
	LogDisabled bool   `mapstructure:"log_disabled"`
}

// DatabaseConfig describes connection options for the supported databases.
type DatabaseConfig struct {
	Driver string       `mapstructure:"driver"`
	Path   string       `mapstructure:"path"`
	DSN    string       `mapstructure:"dsn"`
	MySQL  DBAuthConfig `mapstructure:"mysql"`
	Tables TableConfig  `mapstructure:"tables"`
}

// DBAuthConfig represents host based database parameters.
type DBAuthConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Database  string `mapstructure:"database"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	ConnLimit int    `mapstructure:"conn_limit"`
}

// TableConfig overrides the table names the gateways operate on.
type TableConfig struct {
	Laptop    string `mapstructure:"laptop"`
	Phonebook string `mapstructure:"phonebook"`
	User      string `mapstructure:"user"`
}

// CacheConfig describes cache backends.
type CacheConfig struct {
	Redis RedisCacheConfig `mapstructure:"redis"`
}

// RedisCacheConfig holds Redis connection options.
type RedisCacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Address  string        `mapstructure:"address"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TLS      bool          `mapstructure:"tls"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// AuthConfig captures authentication settings.
type AuthConfig struct {
	JWT JWTSettings `mapstructure:"jwt"`
}

// JWTSettings configures JWT access tokens.
type JWTSettings struct {
	Secret string        `mapstructure:"secret"`
	Issuer string        `mapstructure:"issuer"`
	TTL    time.Duration `mapstructure:"access_token_ttl"`
}

// RedisClientConfig converts cache settings into the client configuration.
func (c CacheConfig) RedisClientConfig() cache.RedisConfig {
	return cache.RedisConfig{
		Address:  c.Redis.Address,
		Username: c.Redis.Username,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
		TLS:      c.Redis.TLS,
		Timeout:  c.Redis.Timeout,
	}
}

// JWTServiceConfig converts auth settings into the JWT service configuration.
func (c AuthConfig) JWTServiceConfig() iauth.JWTConfig {
	return iauth.JWTConfig{
		Secret:         c.JWT.Secret,
		Issuer:         c.JWT.Issuer,
		AccessTokenTTL: c.JWT.TTL,
	}
}

// DatabaseConfigFor converts configuration into database open options.
func (c DatabaseConfig) DatabaseConfigFor() database.Config {
	return database.Config{
		Driver:    strings.ToLower(strings.TrimSpace(c.Driver)),
		Path:      strings.TrimSpace(c.Path),
		DSN:       strings.TrimSpace(c.DSN),
		Host:      strings.TrimSpace(c.MySQL.Host),
		Port:      c.MySQL.Port,
		Name:      strings.TrimSpace(c.MySQL.Database),
		User:      strings.TrimSpace(c.MySQL.Username),
		Password:  c.MySQL.Password,
		ConnLimit: c.MySQL.ConnLimit,
	}
}

// TableNames converts the configured table overrides, filling defaults.
func (c DatabaseConfig) TableNames() database.Tables {
	return database.Tables{
		Laptop:    c.Tables.Laptop,
		Phonebook: c.Tables.Phonebook,
		User:      c.Tables.User,
	}.Normalize()
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Auth.JWT.Secret) == "" {
		return errors.New("auth.jwt.secret must be configured")
	}
	return nil
}

// LoadConfig initialises application configuration using Viper with sensible
// defaults. Every key can be overridden through the environment with the
// INVENTORY_ prefix, e.g. INVENTORY_DATABASE_MYSQL_HOST.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("./config")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config, decodeHook()); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_disabled", false)

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.path", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.mysql.host", "localhost")
	v.SetDefault("database.mysql.port", 3306)
	v.SetDefault("database.mysql.database", "laptop_inventory")
	v.SetDefault("database.mysql.username", "root")
	v.SetDefault("database.mysql.password", "password")
	v.SetDefault("database.mysql.conn_limit", 0)
	v.SetDefault("database.tables.laptop", "laptop")
	v.SetDefault("database.tables.phonebook", "phonebook")
	v.SetDefault("database.tables.user", "user")

	v.SetDefault("cache.redis.enabled", true)
	v.SetDefault("cache.redis.address", "127.0.0.1:6379")
	v.SetDefault("cache.redis.username", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.tls", false)
	v.SetDefault("cache.redis.timeout", "5s")

	v.SetDefault("auth.jwt.secret", "")
	v.SetDefault("auth.jwt.issuer", "")
	v.SetDefault("auth.jwt.access_token_ttl", "1h")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}
