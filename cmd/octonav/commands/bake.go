package commands

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hupe1980/octonav"
)

// NewBakeCommand creates the bake subcommand.
func NewBakeCommand(flags *GlobalFlags) *cobra.Command {
	var scenePath string

	cmd := &cobra.Command{
		Use:   "bake",
		Short: "Build a scene and print tree and graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(flags, scenePath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			nav, err := s.build(cmd.Context())
			if err != nil {
				return err
			}

			renderStats(cmd.OutOrStdout(), s.scene.Name, nav.Stats())

			return nil
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", sceneFlagUsage)

	return cmd
}

func renderStats(out io.Writer, name string, st octonav.Stats) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetTitle(name)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Cells", humanize.Comma(int64(st.Tree.Cells))},
		{"Leaves", humanize.Comma(int64(st.Tree.Leaves))},
		{"Empty leaves", humanize.Comma(int64(st.Tree.EmptyLeaves))},
		{"Max depth", st.Tree.MaxDepth},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Nodes", humanize.Comma(int64(st.Nodes))},
		{"Edges", humanize.Comma(int64(st.Edges))},
		{"Structural pairs", humanize.Comma(int64(st.StructuralPairs))},
		{"Broad pairs", humanize.Comma(int64(st.BroadPairs))},
		{"Components", humanize.Comma(int64(st.Components))},
		{"Largest component", humanize.Comma(int64(st.LargestComponent))},
		{"Isolated nodes", humanize.Comma(int64(st.IsolatedNodes))},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Iteration cap", humanize.Comma(int64(st.IterationCap))},
		{"Pool capacity", st.Pool.Capacity},
		{"Build time", st.BuildDuration.Round(time.Microsecond).String()},
	})
	tw.Render()
}
