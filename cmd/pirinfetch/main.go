package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timson/pirinfetch/facts"
	"github.com/timson/pirinfetch/logo"
	"github.com/timson/pirinfetch/pkg/utils"
	"github.com/timson/pirinfetch/render"
	"github.com/timson/pirinfetch/terminal"
)

const version = "0.1.0"

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

func setup(cmd *cobra.Command, v *viper.Viper) (*Config, *slog.Logger, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(v, cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger := createLogger(cfg.Log.Level)
	facts.SetLogger(logger)
	logo.SetLogger(logger)
	return cfg, logger, nil
}

func runFetch(cmd *cobra.Command, v *viper.Viper) error {
	cfg, logger, err := setup(cmd, v)
	if err != nil {
		return err
	}

	rc, err := buildRenderContext(cfg)
	if err != nil {
		return err
	}
	caps := terminal.DetectCapabilities()
	rc.Geometry = terminal.QueryGeometry()
	rc.Graphics = terminal.SupportsGraphics(caps)
	logger.Debug("terminal detected",
		"term", caps.Term, "program", caps.TermProgram, "tty", caps.IsTTY,
		"graphics", rc.Graphics, "cols", rc.Geometry.Cols, "rows", rc.Geometry.Rows)

	runner := utils.NewExecRunner(cfg.Display.CommandTimeout)
	provider := facts.NewHostProvider(runner)
	palette := render.NewPalette(cfg.Colors, colorEnabled(cfg.Color), logger)

	pipeline := render.NewPipeline(provider, runner, palette, logger)
	return pipeline.Render(cmd.Context(), rc, colorable.NewColorable(os.Stdout))
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pirinfetch",
		Short:         "pirinfetch - system information with a logo",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, v)
		},
	}

	factsCmd := &cobra.Command{
		Use:   "facts",
		Short: "Print every detected fact as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd, v)
			if err != nil {
				return err
			}
			provider := facts.NewHostProvider(utils.NewExecRunner(cfg.Display.CommandTimeout))
			return printFacts(cmd.Context(), cmd.OutOrStdout(), provider)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = defaultConfigPath()
			}
			if err := writeDefaultConfig(utils.ExpandHome(path), force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	configCmd.AddCommand(initCmd)
	rootCmd.AddCommand(factsCmd, configCmd)

	initDefaults(v)
	setupFlags(rootCmd, v)
	return rootCmd
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pirinfetch:", err)
		os.Exit(1)
	}
}
