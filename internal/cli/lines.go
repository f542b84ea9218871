package cli

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	cheapruler "github.com/apendleton/cheap-ruler"
	"github.com/apendleton/cheap-ruler/orbgeo"
)

func measureCmd(a *app) *cobra.Command {
	var autoLat bool
	cmd := &cobra.Command{
		Use:   "measure FILE",
		Short: "Print the length and area of every feature in a GeoJSON file",
		Long: `measure reads GeoJSON from FILE ("-" for stdin) and prints one JSON object
per feature with its length (perimeter for polygons) and area.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := readCollection(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			r := a.ruler
			if autoLat {
				b, ok := orbgeo.CollectionBound(fc)
				if !ok {
					return fmt.Errorf("%s: no geometry to take a latitude from", args[0])
				}
				units, err := cheapruler.ParseUnit(a.cfg.Ruler.Units)
				if err != nil {
					return err
				}
				if r, err = orbgeo.RulerFor(b, units); err != nil {
					return err
				}
				a.log.Debug("latitude taken from input", "latitude", b.Center()[1])
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, m := range orbgeo.Measure(r, fc) {
				m.Length = a.round(m.Length)
				m.Area = a.round(m.Area)
				if err := enc.Encode(m); err != nil {
					return err
				}
			}
			a.log.Info("measured features", "count", len(fc.Features))
			return nil
		},
	}
	cmd.Flags().BoolVar(&autoLat, "auto-lat", false, "use the latitude of the centre of the input instead of --lat")
	return cmd
}

func alongCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "along FILE DISTANCE",
		Short: "Print the point at DISTANCE along the first line in FILE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := readLine(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			dist, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPoint(a.ruler.Along(line, dist)))
			return nil
		},
	}
}

func snapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "snap FILE P",
		Short: "Print the closest point to P on the first line in FILE",
		Long: `snap prints {"point", "index", "t"} where index is the start vertex of the
closest segment and t the position along it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := readLine(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			p, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			pol := a.ruler.PointOnLine(line, p)
			pol.Point = a.roundPoint(pol.Point)
			pol.T = a.round(pol.T)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(pol)
		},
	}
}

func sliceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slice FILE START STOP",
		Short: "Print the part of the first line in FILE between two points",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := readLine(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			start, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			stop, err := parsePoint(args[2])
			if err != nil {
				return err
			}
			return a.writeLine(cmd, a.ruler.LineSlice(start, stop, line))
		},
	}
}

func sliceAlongCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slice-along FILE START STOP",
		Short: "Print the part of the first line in FILE between two distances",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := readLine(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			start, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			stop, err := parseFloat(args[2])
			if err != nil {
				return err
			}
			slice := a.ruler.LineSliceAlong(start, stop, line)
			if len(slice) == 0 {
				a.log.Warn("slice is empty", "start", start, "stop", stop, "length", a.ruler.LineDistance(line))
			}
			return a.writeLine(cmd, slice)
		},
	}
}

// writeLine prints line as a GeoJSON LineString geometry.
func (a *app) writeLine(cmd *cobra.Command, line cheapruler.Line) error {
	rounded := make(cheapruler.Line, len(line))
	for i, p := range line {
		rounded[i] = a.roundPoint(p)
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(geojson.NewGeometry(orbgeo.ToOrbLineString(rounded)))
}
