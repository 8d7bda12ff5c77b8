package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
	"github.com/spf13/cobra"
)

var (
	listCountries  bool
	listStatistics bool
	listRegion     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List countries or statistic labels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listCountries == listStatistics { // either both true or both false
			return fmt.Errorf("specify exactly one of --countries or --statistics")
		}
		out := cmd.OutOrStdout()
		if listStatistics {
			for _, s := range statistic.All() {
				fmt.Fprintf(out, "- %s (%s)\n", s.Label, s.Column)
			}
			return nil
		}
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		found := false
		for _, r := range t.Records() {
			if listRegion != "" && !strings.EqualFold(r.Region, listRegion) {
				continue
			}
			if r.IsSovereign() {
				fmt.Fprintf(out, "- %s\n", r.Entity)
			} else {
				fmt.Fprintf(out, "- %s (%s)\n", r.Entity, r.Status())
			}
			found = true
		}
		if !found {
			fmt.Fprintln(out, "(no countries)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listCountries, "countries", false, "list countries and territories in dataset order")
	listCmd.Flags().BoolVar(&listStatistics, "statistics", false, "list selectable statistic labels")
	listCmd.Flags().StringVar(&listRegion, "region", "", "only list countries in this UN region (with --countries)")
}
