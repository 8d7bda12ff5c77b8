package cmd

import (
	"io"

	"github.com/KaramelBytes/gdpcov-cli/internal/render"
	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"github.com/spf13/cobra"
)

var (
	cmpStat      string
	cmpCountries []string
	cmpOut       string
	cmpJSON      bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare one statistic across selected countries",
	Example: `  gdpcov compare --stat "Population" --country FRANCE --country GERMANY
  gdpcov compare --country JAPAN --out compare.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		entities := cmpCountries
		if !cmd.Flags().Changed("country") {
			entities = views.DefaultCompareEntities
		}
		bc, err := views.Compare(t, cmpStat, entities)
		if err != nil {
			return noDataOr(cmd, err)
		}
		switch {
		case cmpOut != "":
			return writeChart(cmd, cmpOut, func(w io.Writer, s render.Size) error { return render.BarChart(w, bc, s) })
		case cmpJSON:
			return printJSON(cmd, bc)
		}
		render.BarTable(cmd.OutOrStdout(), bc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&cmpStat, "stat", views.DefaultCompareStatistic, "statistic label to compare")
	compareCmd.Flags().StringArrayVar(&cmpCountries, "country", nil, "country or territory to include (repeatable; default AFGHANISTAN)")
	compareCmd.Flags().StringVar(&cmpOut, "out", "", "write the bar chart as PNG to this path")
	compareCmd.Flags().BoolVar(&cmpJSON, "json", false, "print the chart payload as JSON")
}
