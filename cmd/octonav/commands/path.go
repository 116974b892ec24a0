package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hupe1980/octonav"
)

// NewPathCommand creates the path subcommand.
func NewPathCommand(flags *GlobalFlags) *cobra.Command {
	var scenePath, from, to string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a path between two points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parsePoint(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}

			goal, err := parsePoint(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			s, err := openSession(flags, scenePath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			nav, err := s.build(cmd.Context())
			if err != nil {
				return err
			}

			res, err := nav.FindPath(start, goal)
			if err != nil {
				return err
			}

			printPath(cmd.OutOrStdout(), res)

			return nil
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", sceneFlagUsage)
	cmd.Flags().StringVar(&from, "from", "", "start point x,y,z")
	cmd.Flags().StringVar(&to, "to", "", "goal point x,y,z")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func statusColor(s octonav.Status) *color.Color {
	switch s {
	case octonav.StatusFound:
		return color.New(color.FgGreen)
	case octonav.StatusBudgetExceeded:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printPath(out io.Writer, res octonav.PathResult) {
	statusColor(res.Status).Fprintf(out, "status: %s\n", res.Status)
	fmt.Fprintf(out, "cost: %.3f\n", res.Cost)
	fmt.Fprintf(out, "expanded: %d\n", res.Expanded)
	fmt.Fprintf(out, "waypoints: %d\n", len(res.Cells))

	for i, p := range res.Waypoints() {
		fmt.Fprintf(out, "  %3d  %v\n", i, p)
	}
}
