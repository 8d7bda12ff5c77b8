package cmd

import (
	"io"

	"github.com/KaramelBytes/gdpcov-cli/internal/render"
	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"github.com/spf13/cobra"
)

var (
	scX    string
	scY    string
	scFit  bool
	scOut  string
	scJSON bool
)

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Plot one statistic against another, optionally with a linear fit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		sp, err := views.Scatter(t, scX, scY, scFit)
		if err != nil {
			return noDataOr(cmd, err)
		}
		switch {
		case scOut != "":
			return writeChart(cmd, scOut, func(w io.Writer, s render.Size) error { return render.Scatter(w, sp, s) })
		case scJSON:
			return printJSON(cmd, sp)
		}
		render.ScatterSummary(cmd.OutOrStdout(), sp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scatterCmd)
	scatterCmd.Flags().StringVar(&scX, "x", views.DefaultScatterX, "statistic label for the x axis")
	scatterCmd.Flags().StringVar(&scY, "y", views.DefaultScatterY, "statistic label for the y axis")
	scatterCmd.Flags().BoolVar(&scFit, "fit", views.DefaultScatterFit, "overlay an ordinary least squares line")
	scatterCmd.Flags().StringVar(&scOut, "out", "", "write the scatterplot as PNG to this path")
	scatterCmd.Flags().BoolVar(&scJSON, "json", false, "print the chart payload as JSON")
}
