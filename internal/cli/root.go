package cli

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schema-bridge/convert"
	"schema-bridge/decode"
	"schema-bridge/internal/cli/config"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "schema-bridge",
		Short: "Translate tabular schemas to record schemas and decode payloads against them",
		Long: `schema-bridge converts mode-annotated tabular schemas (BigQuery table schema
JSON or YAML) into canonical record schemas and back, and decodes loosely typed
JSON or YAML payloads into values that conform exactly to a record schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./schema-bridge.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	// Add subcommands
	rootCmd.AddCommand(newCanonicalCommand(a))
	rootCmd.AddCommand(newTabularCommand(a))
	rootCmd.AddCommand(newDecodeCommand(a))
	rootCmd.AddCommand(newRowCommand(a))
	rootCmd.AddCommand(newValidateCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// setup loads the configuration and installs the logger into the library packages.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	convert.SetLogger(logger.Named("convert"))
	decode.SetLogger(logger.Named("decode"))

	return nil
}

func (a *app) converter() *convert.Converter {
	return convert.NewConverter(a.cfg.Converter())
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "schema-bridge version: ")
			cmd.Println(Version)

			titleColor.Fprint(out, "Git commit: ")
			cmd.Println(GitCommit)

			titleColor.Fprint(out, "Build date: ")
			cmd.Println(BuildDate)

			titleColor.Fprint(out, "Go version: ")
			cmd.Println(runtime.Version())
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}

	return nil
}
