// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/recipe-book/internal/config"
	"fjacquet/recipe-book/internal/container"
	"fjacquet/recipe-book/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	ConfigFile string
	DataDir    string
	LogLevel   string
	LogFormat  string
}

var (
	// AppConfig is the configuration loaded before any subcommand runs
	AppConfig *config.Config
	// AppContainer holds the wired application dependencies
	AppContainer *container.Container

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "recipe-book",
		Short: "A CLI tool to manage recipes, substitutes and shopping lists.",
		Long: `recipe-book manages a local collection of recipes with their ingredients,
quantities and calories. It suggests substitutes for missing ingredients and
merges the ingredients of several recipes into one shopping list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return Teardown()
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.recipe-book, .recipe-book and .)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataDir, "data-dir", "d", "", "Directory holding the recipe and substitute documents")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
}

// Setup loads the environment and configuration, applies flag overrides and wires
// the container. A container installed beforehand with SetContainer is kept.
func Setup(cmd *cobra.Command) error {
	if AppContainer != nil {
		return nil
	}

	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	cfg, err := config.InitializeConfigFromFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.Data.Directory = SharedFlags.DataDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
}

// Teardown closes the container, if any.
func Teardown() error {
	if AppContainer == nil {
		return nil
	}
	err := AppContainer.Close()
	AppContainer = nil
	return err
}

// SetContainer installs c as the application container. Commands executed
// afterwards use it instead of building one from configuration.
func SetContainer(c *container.Container) {
	AppContainer = c
	if c != nil {
		AppConfig = c.GetConfig()
	}
}

// GetContainer returns the application container.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return AppContainer, nil
}

// GetConfig returns the loaded configuration, or nil before Setup.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogger returns the container's logger, or a discarding logger before Setup.
func GetLogger() logging.Logger {
	if AppContainer == nil {
		return logging.NewDiscardLogger()
	}
	return AppContainer.GetLogger()
}
