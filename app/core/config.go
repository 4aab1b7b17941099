package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/docchat-ai/docchat/app/core/srv"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	conf.SetConfigBytes(raw)

	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func (c CoreConfig) LoadCustomConfig(cfg any) error {
	if len(c.bytes) == 0 {
		return nil
	}
	if err := toml.Unmarshal(c.bytes, cfg); err != nil {
		return err
	}
	return nil
}

type CustomConfig[T any] struct {
	CustomConfig T `toml:"custom_config"`
}

func NewCustomConfigPayload[T any]() CustomConfig[T] {
	return CustomConfig[T]{}
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string   `toml:"addr"`
	Log      Log      `toml:"log"`
	Postgres PGConfig `toml:"postgres"`
	Site     Site     `toml:"site"`

	AI     srv.AIConfig `toml:"ai"`
	Search SearchConfig `toml:"search"`

	Security Security `toml:"security"`

	bytes []byte `toml:"-"`
}

type Site struct {
	Domain          string `toml:"domain"`
	SiteTitle       string `toml:"site_title"`
	SiteDescription string `toml:"site_description"`
	DefaultAvatar   string `toml:"default_avatar"`
}

// SearchConfig drives the optional web search blending. An empty token
// disables search without disabling question answering.
type SearchConfig struct {
	Token    string `toml:"token"`
	Endpoint string `toml:"endpoint"`
	Limit    int    `toml:"limit"`
}

func (c *SearchConfig) FromENV() {
	c.Token = os.Getenv("DOCCHAT_SEARCH_TOKEN")
	c.Endpoint = os.Getenv("DOCCHAT_SEARCH_ENDPOINT")
	if limitStr := os.Getenv("DOCCHAT_SEARCH_LIMIT"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			c.Limit = limit
		}
	}
}

type Security struct {
	EncryptKey string `toml:"encrypt_key"`
	// PEM encoded RSA public key used to verify externally issued JWTs.
	// Empty disables JWT auth, access tokens keep working.
	JWTPublicKey string `toml:"jwt_public_key"`
}

func (c *Security) FromENV() {
	c.EncryptKey = os.Getenv("DOCCHAT_SECURITY_ENCRYPT_KEY")
	c.JWTPublicKey = os.Getenv("DOCCHAT_SECURITY_JWT_PUBLIC_KEY")
}

func (c *CoreConfig) SetConfigBytes(raw []byte) {
	c.bytes = raw
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("DOCCHAT_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.AI.FromENV()
	c.Search.FromENV()
	c.Security.FromENV()
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("DOCCHAT_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("DOCCHAT_API_LOG_LEVEL")
	l.Path = os.Getenv("DOCCHAT_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
