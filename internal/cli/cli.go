package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/logomark/logomark/pkg/buildinfo"
	"github.com/logomark/logomark/pkg/engine"
	"github.com/logomark/logomark/pkg/ledger"
)

// appName is the application name used for directories and display.
const appName = "logomark"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the on-disk
// config (or defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "logomark",
		Short:        "Logomark generates deterministic procedural logos",
		Long:         `Logomark is a CLI tool for generating unique, deterministic SVG logos from a brand name, with quality scoring, a uniqueness ledger, and derived brand guidelines.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.regenerateCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.guidelinesCommand())
	root.AddCommand(c.ledgerCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates an engine runner wired to the configured ledger backend.
// With noLedger set, the runner uses an isolated in-memory ledger so the run
// leaves no record behind.
func (c *CLI) newRunner(ctx context.Context, noLedger bool) (*engine.Runner, func(), error) {
	led, err := c.openLedger(ctx, noLedger)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := led.Close(); err != nil {
			c.Logger.Debugf("ledger close: %v", err)
		}
	}
	return engine.NewRunner(led, c.Logger), closer, nil
}

func (c *CLI) openLedger(ctx context.Context, noLedger bool) (ledger.Ledger, error) {
	if noLedger {
		return ledger.NewMemory(), nil
	}
	switch c.Config.Ledger.Backend {
	case "memory":
		return ledger.NewMemory(), nil
	case "redis":
		return ledger.NewRedis(ctx, ledger.RedisConfig{
			Addr:     c.Config.Ledger.Redis.Addr,
			Password: c.Config.Ledger.Redis.Password,
			DB:       c.Config.Ledger.Redis.DB,
		})
	case "mongo":
		return ledger.NewMongo(ctx, ledger.MongoConfig{
			URI:        c.Config.Ledger.Mongo.URI,
			Database:   c.Config.Ledger.Mongo.Database,
			Collection: c.Config.Ledger.Mongo.Collection,
		})
	default:
		dir, err := ledgerDir(c.Config.Ledger.Dir)
		if err != nil {
			return nil, err
		}
		return ledger.NewFile(dir)
	}
}

// ledgerDir returns the file-ledger directory, defaulting to the XDG data
// directory (~/.local/share/logomark/ledger).
func ledgerDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "ledger"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "ledger"), nil
}
