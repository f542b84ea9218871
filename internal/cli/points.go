package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cheapruler "github.com/apendleton/cheap-ruler"
)

func distanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Print the distance between two points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			q, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.format(a.ruler.Distance(p, q)))
			return nil
		},
	}
}

func bearingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bearing A B",
		Short: "Print the bearing from A to B in degrees clockwise from north",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			q, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.format(a.ruler.Bearing(p, q)))
			return nil
		},
	}
}

func destinationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "destination P DISTANCE BEARING",
		Short: "Print the point reached by travelling from P",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			dist, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			bearing, err := parseFloat(args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPoint(a.ruler.Destination(p, dist, bearing)))
			return nil
		},
	}
}

func offsetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "offset P DX DY",
		Short: "Print P moved east by DX and north by DY",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			dx, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			dy, err := parseFloat(args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPoint(a.ruler.Offset(p, dx, dy)))
			return nil
		},
	}
}

func bboxCmd(a *app) *cobra.Command {
	var box string
	cmd := &cobra.Command{
		Use:   "bbox [P] BUFFER",
		Short: "Print the bounding box around P grown by BUFFER",
		Long: `bbox prints west,south,east,north of the box around P grown by BUFFER.
With --box, P is omitted and the given box is grown instead.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if box != "" && len(args) != 1 {
				return fmt.Errorf("bbox: --box takes only BUFFER, got %d args", len(args))
			}
			if box == "" && len(args) != 2 {
				return fmt.Errorf("bbox: expected P and BUFFER, got %d args", len(args))
			}
			buffer, err := parseFloat(args[len(args)-1])
			if err != nil {
				return err
			}

			var out cheapruler.BBox
			if box != "" {
				b, err := parseBBox(box)
				if err != nil {
					return err
				}
				out = a.ruler.BufferBBox(b, buffer)
			} else {
				p, err := parsePoint(args[0])
				if err != nil {
					return err
				}
				out = a.ruler.BufferPoint(p, buffer)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s,%s,%s,%s\n",
				a.format(out[0]), a.format(out[1]), a.format(out[2]), a.format(out[3]))
			return nil
		},
	}
	cmd.Flags().StringVar(&box, "box", "", "grow this west,south,east,north box instead of a point")
	return cmd
}

func insideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inside P WEST,SOUTH,EAST,NORTH",
		Short: "Print whether P lies inside the box",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			b, err := parseBBox(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(a.ruler.InsideBBox(p, b)))
			return nil
		},
	}
}
