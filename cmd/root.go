package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/internal/iofs"
	"github.com/railcat/railcat/internal/iologger"
	"github.com/railcat/railcat/internal/iostore"
	app "github.com/railcat/railcat/pkg"
	"github.com/railcat/railcat/pkg/config"
	"github.com/railcat/railcat/pkg/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd builds the command tree.
func getRootCmd() *cobra.Command {
	var storePath, logLevel string

	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "railcat",
		Short:   "Railcat keeps a catalogue of trains, stations and routes",
		Long: `Railcat records trains, stations and timetabled routes in a local
SQLite store and keeps an in-memory view of them consistent with the store.

Configuration precedence (highest to lowest):
  1. CLI flags (--store, --log-level)
  2. Environment variables (RAILCAT_*)
  3. Config file (~/.config/railcat/config.yaml)
  4. Built-in defaults

Environment Variables:
  RAILCAT_STORE_PATH                    SQLite file
  RAILCAT_STORE_BUSY_TIMEOUT            Wait on a locked file (ms)
  RAILCAT_CATALOGUE_AUTO_CREATE_STATIONS  Create missing train stations
  RAILCAT_CATALOGUE_SEED                Seed an empty store
  RAILCAT_LOG_LEVEL                     Log level (debug/info/warn/error)
  RAILCAT_LOG_FORMAT                    Log format (json/text)
  RAILCAT_LOG_DESTINATION               Log destination (file/stdout/stderr)`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var flagOpts []config.Option
			if cmd.Flags().Changed("store") {
				flagOpts = append(flagOpts, config.OptStorePath(storePath))
			}
			if cmd.Flags().Changed("log-level") {
				flagOpts = append(flagOpts, config.OptLogLevel(logLevel))
			}
			return bootstrap(flagOpts)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for railcat")

	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", "",
		"SQLite file of the catalogue")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		getTrainCmd(),
		getStationCmd(),
		getRouteCmd(),
		getExportCmd(),
		getImportCmd(),
		getStatusCmd(),
	)
	return rootCmd
}

func bootstrap(flagOpts []config.Option) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Logs go to the default file until the config is read.
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOpts...)
	opts = append(opts, config.OptHomeDir(homeDir))
	cfg.Update(opts)

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Debug("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"store", cfg.StorePath(),
	)
	return nil
}

// Execute runs the railcat command line. It is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars lists allowed environment variables explicitly. They match
// the persistent fields produced by config.ToOptions().
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("RAILCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("store.path", "RAILCAT_STORE_PATH")
	v.BindEnv("store.busy_timeout", "RAILCAT_STORE_BUSY_TIMEOUT")

	v.BindEnv("catalogue.auto_create_stations",
		"RAILCAT_CATALOGUE_AUTO_CREATE_STATIONS")
	v.BindEnv("catalogue.seed", "RAILCAT_CATALOGUE_SEED")

	v.BindEnv("log.level", "RAILCAT_LOG_LEVEL")
	v.BindEnv("log.format", "RAILCAT_LOG_FORMAT")
	v.BindEnv("log.destination", "RAILCAT_LOG_DESTINATION")

	v.AutomaticEnv()
}

// withRepository opens the store, builds the repository and passes it to
// fn. The store is closed on every path. Errors are printed for the user.
// When seed is false an empty store stays empty regardless of config,
// so snapshots are loaded and written without predefined data.
func withRepository(
	cmd *cobra.Command,
	seed bool,
	fn func(context.Context, *repository.Repository) error,
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err := runRepository(ctx, seed, fn)
	if err != nil {
		gn.PrintErrorMessage(err)
		slog.Error("Command failed", "command", cmd.CommandPath(), "error", err)
	}
	return err
}

func runRepository(
	ctx context.Context,
	seed bool,
	fn func(context.Context, *repository.Repository) error,
) error {
	storeCfg := cfg.Store
	storeCfg.Path = cfg.StorePath()

	gw := iostore.NewGateway()
	if err := gw.Connect(ctx, &storeCfg); err != nil {
		return err
	}
	defer gw.Close()

	if err := gw.PrepareSchema(ctx); err != nil {
		return err
	}

	repo, err := repository.New(ctx, gw,
		repository.OptAutoCreateStations(cfg.AutoCreateStations()),
	)
	if err != nil {
		return err
	}

	if seed && cfg.SeedEmpty() {
		seeded, err := repo.Seed(ctx)
		if err != nil {
			return err
		}
		if seeded {
			gn.Info("Empty catalogue was filled with predefined data")
		}
	}

	return fn(ctx, repo)
}
