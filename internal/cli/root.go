package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/prompt"
	"todo-list/internal/services"
)

// PrompterFactory builds the terminal collaborator and the function that
// releases it. Prompts stop waiting once ctx is cancelled.
type PrompterFactory func(ctx context.Context, out io.Writer) (prompt.Prompter, func() error)

// RootCommand is the todo command
type RootCommand struct {
	cmd          *cobra.Command
	out          io.Writer
	newPrompter  PrompterFactory
	errorHandler *ErrorHandler

	configFile string
}

// NewRootCommand creates the root cobra command with its flags
func NewRootCommand() *RootCommand {
	return NewRootCommandWithPrompter(os.Stdout, func(ctx context.Context, out io.Writer) (prompt.Prompter, func() error) {
		p := prompt.NewLinePrompter(ctx, out)
		return p, p.Close
	})
}

// NewRootCommandWithPrompter creates the root command with an injected prompter
func NewRootCommandWithPrompter(out io.Writer, newPrompter PrompterFactory) *RootCommand {
	root := &RootCommand{
		out:          out,
		newPrompter:  newPrompter,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A terminal to-do list",
		Long: `todo keeps a list of tasks in a local SQLite file and edits them
through a menu.

CONFIGURATION:
  Configuration follows this priority order: flags > environment > config file > defaults

    TODO_DB_DIR                            Database directory (default: .)
    TODO_DB_FILENAME                       Database filename (default: entries.db)
    TODO_DB_QUERY_TIMEOUT                  Query timeout (default: 10s)
    TODO_DISPLAY_CLEAR_SCREEN              Clear the screen before each menu (default: true)
    TODO_VALIDATION_TITLE_MAX_LENGTH       Max title length (default: 255)
    TODO_VALIDATION_DESCRIPTION_MAX_LENGTH Max description length (default: 1000)
    TODO_APP_VERBOSE                       Debug output on stderr (default: false)
    TODO_DEBUG                             Debug output on stderr when set`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd.Context())
		},
	}
	root.cmd.SetOut(out)

	root.addFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

func (r *RootCommand) addFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configFile, "config", "", "Config file (YAML, TOML or JSON)")
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Bool("no-clear", false, "Do not clear the screen between menus")
	flags.BoolP("verbose", "v", false, "Debug output on stderr (overrides TODO_APP_VERBOSE)")
}

// overridesFromFlags collects only the flags the user actually set
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		dir, _ := flags.GetString("db-dir")
		overrides.DBDir = &dir
	}
	if flags.Changed("db-filename") {
		filename, _ := flags.GetString("db-filename")
		overrides.DBFilename = &filename
	}
	if flags.Changed("db-query-timeout") {
		timeout, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &timeout
	}
	if flags.Changed("no-clear") {
		noClear, _ := flags.GetBool("no-clear")
		clearScreen := !noClear
		overrides.ClearScreen = &clearScreen
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}

func (r *RootCommand) loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if r.configFile != "" {
		loader = loader.WithConfigFile(r.configFile)
	}
	return loader.LoadWithOverrides(r.overridesFromFlags())
}

// run opens the store, loads the cache and hands over to the controller
func (r *RootCommand) run(ctx context.Context) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return r.errorHandler.Handle("load configuration", err)
	}
	logging.SetVerbose(cfg.Application.Verbose)
	logging.Debugf("database: %s\n", cfg.GetDatabasePath())

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return r.errorHandler.Handle("open entry store", err)
	}
	defer repo.Close()

	service := services.NewEntryServiceWithConfig(repo, cfg)
	if err := service.Load(ctx); err != nil {
		if ctx.Err() != nil {
			logging.Debugf("load interrupted: %v\n", err)
			return nil
		}
		return r.errorHandler.Handle("load entries", err)
	}

	p, release := r.newPrompter(ctx, r.out)
	defer release()

	controller := NewController(service, p, cfg, r.out)
	if err := controller.Run(ctx); err != nil {
		return r.errorHandler.Handle("update entries", err)
	}
	return nil
}
