package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/recipe-book/cmd/importcmd"
	"fjacquet/recipe-book/cmd/recipe"
	"fjacquet/recipe-book/cmd/root"
	"fjacquet/recipe-book/cmd/shopping"
	"fjacquet/recipe-book/cmd/substitute"
	"fjacquet/recipe-book/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// .env first, so RECIPEBOOK_* variables are visible to viper and to the log level below
	_, _ = config.LoadEnv()

	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(recipe.Cmd)
	root.Cmd.AddCommand(shopping.Cmd)
	root.Cmd.AddCommand(substitute.Cmd)
	root.Cmd.AddCommand(importcmd.Cmd)
}

// configureLogLevel sets the global logrus level before any logger is built.
func configureLogLevel() {
	level, err := logrus.ParseLevel(strings.ToLower(config.GetEnv(config.EnvPrefix+"_LOG_LEVEL", "info")))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
