package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Run modes
const (
	ModeWebhook  = "webhook"
	ModeListener = "listener"
	ModeAll      = "all"
)

// Ledger backends
const (
	LedgerMemory = "memory"
	LedgerSQLite = "sqlite"
)

type Config struct {
	Port          int
	SlackToken    string
	AppToken      string
	Mode          string
	MenuFile      string
	LedgerBackend string
	Debug         bool
}

// RunsWebhook reports whether the vote callback server should start
func (c Config) RunsWebhook() bool {
	return c.Mode == ModeWebhook || c.Mode == ModeAll
}

// RunsListener reports whether the event listener should start
func (c Config) RunsListener() bool {
	return c.Mode == ModeListener || c.Mode == ModeAll
}

// ParseFlags loads .env, validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("lunchbot", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Webhook port")
	fs.StringVar(&cfg.Mode, "mode", "", "Run mode (webhook, listener or all)")
	fs.StringVar(&cfg.MenuFile, "menu", "", "Lunch menu YAML file")
	fs.StringVar(&cfg.LedgerBackend, "ledger", "", "Vote ledger backend (memory or sqlite)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Log Slack API traffic")
	fs.StringVar(&envFile, "env", ".env", "Dotenv file to load")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SlackToken, "token", "", "Slack bot token (prefer env)")
	fs.StringVar(&cfg.AppToken, "app-token", "", "Slack app-level token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables take precedence over the file
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.Mode == "" {
		cfg.Mode = os.Getenv("BOT_MODE")
		if cfg.Mode == "" {
			cfg.Mode = ModeWebhook
		}
	}
	switch cfg.Mode {
	case ModeWebhook, ModeListener, ModeAll:
	default:
		return Config{}, fmt.Errorf("invalid mode %q (use webhook, listener or all)", cfg.Mode)
	}

	if cfg.MenuFile == "" {
		cfg.MenuFile = os.Getenv("LUNCH_MENU")
	}

	if cfg.LedgerBackend == "" {
		cfg.LedgerBackend = os.Getenv("LEDGER_BACKEND")
		if cfg.LedgerBackend == "" {
			cfg.LedgerBackend = LedgerMemory
		}
	}
	switch cfg.LedgerBackend {
	case LedgerMemory, LedgerSQLite:
	default:
		return Config{}, fmt.Errorf("invalid ledger backend %q (use memory or sqlite)", cfg.LedgerBackend)
	}

	if !cfg.Debug {
		if v := os.Getenv("SLACK_DEBUG"); v != "" {
			debug, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SLACK_DEBUG env variable")
			}
			cfg.Debug = debug
		}
	}

	// Secrets - MUST be provided
	if cfg.SlackToken == "" {
		cfg.SlackToken = os.Getenv("SLACK_API_TOKEN")
	}
	if cfg.SlackToken == "" {
		return Config{}, errors.New("SLACK_API_TOKEN required")
	}

	if cfg.AppToken == "" {
		cfg.AppToken = os.Getenv("SLACK_APP_TOKEN")
	}
	if cfg.RunsListener() && cfg.AppToken == "" {
		return Config{}, errors.New("SLACK_APP_TOKEN required in listener mode")
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
