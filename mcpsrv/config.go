package mcpsrv

import (
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/filmboard/config"
)

type Config struct {
	Port               string
	AllowedOrigins     []string
	APIKey             string
	Stateless          bool
	EnableSearch       bool
	EnableAdmin        bool
	RPS                float64
	Burst              int
	SessionTimeout     time.Duration
	CacheClearInterval time.Duration
}

func LoadConfig() Config {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Port:               port,
		AllowedOrigins:     config.ParseCSV(os.Getenv("FILMBOARD_MCP_ALLOWED_ORIGINS")),
		APIKey:             strings.TrimSpace(os.Getenv("FILMBOARD_MCP_API_KEY")),
		Stateless:          config.ParseBool(os.Getenv("FILMBOARD_MCP_STATELESS"), false),
		EnableSearch:       config.ParseBool(os.Getenv("FILMBOARD_MCP_ENABLE_SEARCH"), false),
		EnableAdmin:        config.ParseBool(os.Getenv("FILMBOARD_MCP_ENABLE_ADMIN"), false),
		RPS:                config.ParseFloat(os.Getenv("FILMBOARD_MCP_RPS"), 2),
		Burst:              config.ParseInt(os.Getenv("FILMBOARD_MCP_BURST"), 5),
		SessionTimeout:     config.ParseDuration(os.Getenv("FILMBOARD_MCP_SESSION_TIMEOUT"), 15*time.Minute),
		CacheClearInterval: config.ParseDuration(os.Getenv("FILMBOARD_MCP_CACHE_CLEAR_INTERVAL"), 30*time.Minute),
	}

	if cfg.RPS <= 0 {
		cfg.RPS = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	return cfg
}

// ServerOptions derives the tool gating from the loaded config
func (c Config) ServerOptions() *ServerOptions {
	return &ServerOptions{
		EnableSearch: c.EnableSearch,
		EnableAdmin:  c.EnableAdmin,
		APIKey:       c.APIKey,
	}
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}
