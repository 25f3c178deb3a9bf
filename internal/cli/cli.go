package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tabgrid/pkg/buildinfo"
	"github.com/matzehuels/tabgrid/pkg/config"
	"github.com/matzehuels/tabgrid/pkg/core/editor"
	"github.com/matzehuels/tabgrid/pkg/settings"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags.
	configPath string
	profile    string
	backend    string
	verbose    bool

	cfg *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tabgrid arranges the widgets of a new-tab page on a grid",
		Long: `Tabgrid edits the widget layout of a new-tab page. Widgets sit on a CSS grid
with one layout per density (single, double, triple columns). Layouts can be
edited from the command line, in an interactive editor, or over HTTP, and are
exported as the stylesheet the page applies.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default: "+config.DefaultPath()+")")
	flags.StringVarP(&c.profile, "profile", "p", "", "settings profile")
	flags.StringVar(&c.backend, "store", "", "settings backend: memory, file, diskv, redis, mongo")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.showCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.spanCommand())
	root.AddCommand(c.alignCommand())
	root.AddCommand(c.widgetCommand())
	root.AddCommand(c.densityCommand())
	root.AddCommand(c.resetCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies flag overrides and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.profile != "" {
		cfg.Profile = c.profile
	}
	if c.backend != "" {
		cfg.Store.Backend = c.backend
	}
	c.cfg = cfg

	level, ok := logLevel(cfg.Log.Level, c.verbose)
	if !ok {
		c.Logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// config returns the loaded configuration, or the defaults before setup ran.
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// =============================================================================
// Store and Session Factory
// =============================================================================

// openStore opens the configured settings store. Network backends are
// dialed behind a spinner.
func (c *CLI) openStore(ctx context.Context) (settings.Store, error) {
	opts := c.config().StoreOptions()
	c.Logger.Debug("opening store", "backend", opts.Backend, "profile", opts.Profile)

	switch opts.Backend {
	case settings.BackendRedis, settings.BackendMongo:
		var store settings.Store
		err := spin(ctx, fmt.Sprintf("Connecting to %s...", opts.Backend), func() (err error) {
			store, err = settings.Open(ctx, opts)
			return err
		})
		return store, err
	default:
		return settings.Open(ctx, opts)
	}
}

// withSession opens a session on the configured store, runs fn and closes
// the session, which flushes every write fn caused.
func (c *CLI) withSession(ctx context.Context, surface editor.Surface, fn func(*editor.Session) error) error {
	store, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	sess, err := editor.Open(ctx, store, editor.Options{Surface: surface, Logger: loggerFromContext(ctx)})
	if err != nil {
		return err
	}
	fnErr := fn(sess)
	if err := sess.Close(ctx); err != nil {
		return fmt.Errorf("flush settings: %w", err)
	}
	return fnErr
}

// editSelected runs fn on a session in editing mode with id selected.
func (c *CLI) editSelected(ctx context.Context, id string, fn func(*editor.Session) error) error {
	return c.withSession(ctx, nil, func(s *editor.Session) error {
		s.StartEditing()
		if err := s.Select(widgetID(id)); err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
		printLayout(s.View())
		return nil
	})
}
