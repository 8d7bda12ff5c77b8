package cmd

import (
	"fmt"

	"github.com/KaramelBytes/gdpcov-cli/internal/analysis"
	"github.com/KaramelBytes/gdpcov-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	sumOutputPath string
	sumSampleRows int
	sumGroupBy    []string
	sumCorr       bool
	sumOutliers   bool
	sumOutlierThr float64
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the loaded dataset as Markdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		opt := analysis.DefaultOptions()
		if sumSampleRows >= 0 {
			opt.SampleRows = sumSampleRows
		}
		opt.GroupBy = sumGroupBy
		opt.Correlations = sumCorr
		if cmd.Flags().Changed("outliers") {
			opt.Outliers = sumOutliers
		}
		if sumOutlierThr > 0 {
			opt.OutlierThreshold = sumOutlierThr
		}
		rep, err := analysis.Summarize(t, opt)
		if err != nil {
			return err
		}
		md := rep.Markdown()

		if sumOutputPath != "" {
			path := utils.OutputPath(cfg.OutputDir, sumOutputPath)
			if err := utils.SafeWriteFile(path, []byte(md)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote summary to %s\n", path)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&sumOutputPath, "output", "o", "", "optional path to write the summary (Markdown)")
	summaryCmd.Flags().IntVar(&sumSampleRows, "sample-rows", 5, "number of sample rows to include")
	summaryCmd.Flags().StringSliceVar(&sumGroupBy, "group-by", nil, "comma-separated text columns to group by, e.g. Region,Currency (repeatable)")
	summaryCmd.Flags().BoolVar(&sumCorr, "correlations", false, "compute Pearson correlations among the numeric statistics")
	summaryCmd.Flags().BoolVar(&sumOutliers, "outliers", true, "compute robust outlier counts (MAD)")
	summaryCmd.Flags().Float64Var(&sumOutlierThr, "outlier-threshold", 3.5, "robust |z| threshold for outliers (MAD-based)")
}
