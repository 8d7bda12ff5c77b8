package cmd

import (
	"io"

	"github.com/KaramelBytes/gdpcov-cli/internal/render"
	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"github.com/spf13/cobra"
)

var (
	distStat string
	distOut  string
	distJSON bool
)

var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Show the worldwide spread of a statistic as a histogram",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		h, err := views.Histogram(t, distStat)
		if err != nil {
			return noDataOr(cmd, err)
		}
		switch {
		case distOut != "":
			return writeChart(cmd, distOut, func(w io.Writer, s render.Size) error { return render.Histogram(w, h, s) })
		case distJSON:
			return printJSON(cmd, h)
		}
		render.HistogramTable(cmd.OutOrStdout(), h)
		return nil
	},
}

var boxplotCmd = &cobra.Command{
	Use:   "boxplot",
	Short: "Show the spread of a statistic per United Nations region",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		bp, err := views.Boxplot(t, distStat)
		if err != nil {
			return noDataOr(cmd, err)
		}
		switch {
		case distOut != "":
			return writeChart(cmd, distOut, func(w io.Writer, s render.Size) error { return render.Boxplot(w, bp, s) })
		case distJSON:
			return printJSON(cmd, bp)
		}
		render.BoxplotTable(cmd.OutOrStdout(), bp)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{histogramCmd, boxplotCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVar(&distStat, "stat", views.DefaultDistributionStatistic, "statistic label to plot")
		c.Flags().StringVar(&distOut, "out", "", "write the chart as PNG to this path")
		c.Flags().BoolVar(&distJSON, "json", false, "print the chart payload as JSON")
	}
}
