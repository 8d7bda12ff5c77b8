package cmd

import (
	"io"

	"github.com/KaramelBytes/gdpcov-cli/internal/render"
	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"github.com/spf13/cobra"
)

var (
	curOut  string
	curJSON bool
)

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Query and compare countries by primary currency",
}

var currencyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the distinct primary currencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		if curJSON {
			return printJSON(cmd, t.Currencies())
		}
		render.ListTable(cmd.OutOrStdout(), "Currency", t.Currencies())
		return nil
	},
}

var currencyQueryCmd = &cobra.Command{
	Use:   "query [currency]",
	Short: "Show every dataset row whose primary currency matches",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		code := views.DefaultCurrencyQuery(t)
		if len(args) == 1 {
			code = args[0]
		}
		rt := views.CurrencyQuery(t, code)
		if curJSON {
			return printJSON(cmd, rt)
		}
		render.RecordsTable(cmd.OutOrStdout(), rt)
		return nil
	},
}

var currencyCompareCmd = &cobra.Command{
	Use:   "compare [a] [b]",
	Short: "Compare country count, average GDP and average trade ratio of two currencies",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		a, b := views.DefaultCurrencyPair(t)
		if len(args) > 0 {
			a = args[0]
		}
		if len(args) > 1 {
			b = args[1]
		}
		cc := views.CurrencyCompare(t, a, b)
		switch {
		case curOut != "":
			return writeChart(cmd, curOut, func(w io.Writer, s render.Size) error { return render.CurrencyPanels(w, cc, s) })
		case curJSON:
			return printJSON(cmd, cc)
		}
		render.CurrencyTable(cmd.OutOrStdout(), cc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currencyCmd)
	currencyCmd.AddCommand(currencyListCmd)
	currencyCmd.AddCommand(currencyQueryCmd)
	currencyCmd.AddCommand(currencyCompareCmd)
	currencyCmd.PersistentFlags().BoolVar(&curJSON, "json", false, "print the result as JSON")
	currencyCompareCmd.Flags().StringVar(&curOut, "out", "", "write the three comparison panels as PNG to this path")
}
