package cmd

import (
	"github.com/spf13/cobra"

	bfilog "github.com/msto63/bfi/foundation/core/log"
	"github.com/msto63/bfi/pkg/core/config"
	"github.com/msto63/bfi/pkg/core/logging"
)

// App holds the state shared by all commands of one invocation
type App struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *bfilog.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "bfi",
		Short: "bfi - interpreter for the eight-instruction tape language",
		Long: `bfi runs programs written in the eight-instruction tape language
(> < + - . , [ ]). Every other character in a source file is a comment.

A program is filtered, its brackets are matched into a loop tree, and the
tree is executed against a fixed-length tape of byte cells. Program output
goes to stdout, diagnostics and logs go to stderr.

Exit codes:
  0  success
  1  other failure
  2  unmatched bracket
  3  pointer moved off the tape
  4  input exhausted or I/O error
  5  step limit or timeout
  6  configuration error`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// argument errors above still print usage, runtime errors do not
			cmd.SilenceUsage = true
			return app.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&app.cfgFile, "config", "", "config file (default: $BFI_CONFIG, ./bfi.toml, ./bfi.yaml, ~/.config/bfi/config.toml)")
	pf.BoolVarP(&app.verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.StringVar(&app.logFormat, "log-format", "", "log format: text, json, console, logfmt")

	rootCmd.AddCommand(
		newRunCmd(app),
		newCheckCmd(app),
		newTokensCmd(app),
		newTreeCmd(app),
		newTraceCmd(app),
		newHistoryCmd(app),
		newDoctorCmd(app),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI and renders any error to stderr
func Execute() error {
	return execute(NewRootCmd())
}

func execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		renderError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// init loads the configuration and builds the logger
func (a *App) init(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.logFormat != "" {
		a.cfg.Logging.Format = a.logFormat
	}

	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:    "bfi",
		Level:   a.cfg.Logging.Level,
		Format:  a.cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: a.verbose,
	})

	source := a.cfg.Source
	if source == "" {
		source = "built-in defaults"
	}
	a.logger.Debug("configuration loaded", bfilog.Fields{
		"source":  source,
		"command": cmd.Name(),
	})
	return nil
}
