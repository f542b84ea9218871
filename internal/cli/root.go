package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cheapruler "github.com/apendleton/cheap-ruler"
	"github.com/apendleton/cheap-ruler/internal/config"
	"github.com/apendleton/cheap-ruler/internal/logging"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// app is the state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	configFile string

	cfg   *config.Config
	ruler cheapruler.Ruler
	log   *slog.Logger
}

// NewRootCmd builds the cheapruler command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "cheapruler",
		Short: "Fast approximate geodesic measurements.",
		Long: `cheapruler measures distances, bearings and areas around a reference latitude
using a local planar approximation. Points are written as lon,lat. Put "--" before
arguments that start with a minus sign.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.startup,
		DisableAutoGenTag: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file location (default ./cheapruler.yaml if present)")
	flags.Float64("lat", 0, "reference latitude of the ruler in degrees")
	flags.String("units", cheapruler.Kilometers.String(), "kilometers, miles, nauticalmiles, meters, yards, feet or inches")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-format", "text", "text or json")
	flags.Int("precision", 6, "decimal places in printed numbers")

	for key, name := range map[string]string{
		"ruler.latitude":   "lat",
		"ruler.units":      "units",
		"log.level":        "log-level",
		"log.format":       "log-format",
		"output.precision": "precision",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		versionCmd(),
		distanceCmd(a),
		bearingCmd(a),
		destinationCmd(a),
		offsetCmd(a),
		bboxCmd(a),
		insideCmd(a),
		measureCmd(a),
		alongCmd(a),
		snapCmd(a),
		sliceCmd(a),
		sliceAlongCmd(a),
	)
	return root
}

// startup loads the configuration, installs the logger and builds the ruler.
func (a *app) startup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

	a.ruler, err = cfg.Ruler.Build()
	if err != nil {
		return fmt.Errorf("build ruler: %w", err)
	}
	a.log.Debug("ruler ready",
		"latitude", cfg.Ruler.Latitude,
		"units", cfg.Ruler.Units,
		"kx", a.ruler.Kx(),
		"ky", a.ruler.Ky(),
	)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cheapruler %s\n", Version)
		},
	}
}
