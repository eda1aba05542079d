package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Bazz30/NRL/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags default to cfg and can also be set as NRL_CLI_* env vars.
func newRootCmd(cfg config.Config, out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("NRL_CLI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "nrl",
		Short:         "NRL Fantasy roster and snapshot tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.String("roster", cfg.RosterFile, "roster file (YAML or JSON)")
	flags.String("season", cfg.SeasonFile, "season file overriding the built-in byes and requirements")
	flags.String("snapshots", cfg.Snapshots.SnapshotFolder, "snapshot directory")
	flags.String("provider", cfg.Provider, "data provider (nrlfantasy or fixture)")
	flags.String("log-level", cfg.Log.Level, "log level")
	flags.Bool("json", false, "output JSON")
	for _, name := range []string{"roster", "season", "snapshots", "provider", "log-level", "json"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	app := &cli{cfg: cfg, v: v, out: out}
	root.AddCommand(
		app.scrapeCmd(),
		app.statusCmd(),
		app.positionsCmd(),
		app.pointsCmd(),
	)
	return root
}

type cli struct {
	cfg config.Config
	v   *viper.Viper
	out io.Writer
}
