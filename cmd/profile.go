package cmd

import (
	"github.com/KaramelBytes/gdpcov-cli/internal/render"
	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"github.com/spf13/cobra"
)

var profileJSON bool

var profileCmd = &cobra.Command{
	Use:   "profile [entity]",
	Short: "Show status, region, currency and statistics of one country",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		entity := views.DefaultProfileEntity(t)
		if len(args) == 1 {
			entity = args[0]
		}
		p, err := views.Profile(t, entity)
		if err != nil {
			return noDataOr(cmd, err)
		}
		if profileJSON {
			return printJSON(cmd, p)
		}
		render.ProfileTable(cmd.OutOrStdout(), p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "print the profile as JSON")
}
