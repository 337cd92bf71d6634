// Package cli implements the haunt command-line interface: an interactive
// menu plus one-shot commands that list, show, and check the sample
// building.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/haunt/internal/observability"
	"github.com/mesh-intelligence/haunt/internal/paths"
	"github.com/mesh-intelligence/haunt/internal/sample"
	"github.com/mesh-intelligence/haunt/pkg/haunt"
	"github.com/mesh-intelligence/haunt/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

const appName = "haunt"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by one command invocation.
type app struct {
	flags    rootFlags
	cfg      types.Config
	log      zerolog.Logger
	metrics  *observability.Metrics
	building *types.Building
	loader   *sample.Loader
}

// sysError marks a failure outside the user's control (exit code 2).
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

// NewRootCmd creates the top-level "haunt" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:     appName,
		Short:   "Ghost rosters for a haunted building",
		Long:    "haunt models a building whose rooms each keep a roster of ghosts,\nsorted by how likely each ghost is to appear there.",
		Version: haunt.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/haunt)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newMenuCmd(a))
	root.AddCommand(newGhostsCmd(a))
	root.AddCommand(newRoomsCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newStatsCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}

// run executes root and maps its error to an exit code, printing the error
// to stderr.
func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "error:", err)
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// setup loads configuration, initializes logging and metrics, and creates
// an empty building.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return &sysError{fmt.Errorf("resolve config dir: %w", err)}
	}

	cfg, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		var ce *configError
		if errors.As(err, &ce) {
			return err
		}
		return &sysError{fmt.Errorf("load config: %w", err)}
	}
	a.cfg = cfg

	logger, err := observability.InitLogger(appName, cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = logger
	a.metrics = observability.NewMetrics()
	a.building = types.NewBuilding()
	a.loader = sample.NewLoader(a.log, a.metrics)

	a.log.Debug().Str("config_dir", configDir).Str("command", cmd.Name()).Msg("starting")
	return nil
}

// teardown releases the building. Nothing to do when setup was skipped.
func (a *app) teardown() error {
	if a.building == nil {
		return nil
	}
	err := a.building.Teardown()
	a.metrics.RecordTeardown()
	a.building = nil
	if err != nil {
		return &sysError{fmt.Errorf("teardown building: %w", err)}
	}
	return nil
}

// loadSample adds one set of sample data to the building.
func (a *app) loadSample() (sample.Result, error) {
	res, err := a.loader.Load(a.building)
	if err != nil {
		return res, &sysError{fmt.Errorf("load sample data: %w", err)}
	}
	return res, nil
}
