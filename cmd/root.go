package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cfgpkg "github.com/KaramelBytes/gdpcov-cli/internal/config"
	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/render"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
	"github.com/KaramelBytes/gdpcov-cli/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Dataset/HTTP flags (override config if set)
	flagDataset        string
	flagHTTPTimeoutSec int

	// Loaded configuration
	cfg *cfgpkg.Global

	// Dataset cache for the current process
	table       *dataset.Table
	tableSource string
)

var rootCmd = &cobra.Command{
	Use:   "gdpcov",
	Short: "gdpcov: explore Real GDP per Capita and its covariates",
	Long: `gdpcov loads a per-country table of Real GDP per Capita, population, area,
population density and trade ratio, and renders profiles, comparisons,
distributions, scatterplots and currency views as terminal tables, PNG charts
or an interactive dashboard.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Registered here so every Execute, including tests, reloads config.
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.gdpcov/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "dataset URL or local CSV/TSV/XLSX path (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
}

func loadConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to read .env: %v\n", err)
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DatasetURL: dataset.DefaultURL, HTTPTimeoutSec: 20, ListenAddr: "127.0.0.1:8050", ChartWidthIn: 10, ChartHeightIn: 4, OutputDir: "."}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("dataset") && flagDataset != "" {
		cfg.DatasetURL = flagDataset
	}
	if f.Changed("http-timeout") && flagHTTPTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
	}
}

// loadTable loads the configured dataset once per source.
func loadTable(cmd *cobra.Command) (*dataset.Table, error) {
	if cfg == nil {
		loadConfig()
	}
	src := cfg.DatasetURL
	if table != nil && tableSource == src {
		return table, nil
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	debugf("loading dataset from %s", src)
	t, err := dataset.Load(ctx, src, dataset.Options{HTTPTimeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second})
	if err != nil {
		return nil, err
	}
	debugf("loaded %d records in %s", t.Len(), time.Since(start).Round(time.Millisecond))
	table, tableSource = t, src
	return t, nil
}

func chartSize() render.Size {
	return render.SizeInches(cfg.ChartWidthIn, cfg.ChartHeightIn)
}

// writeChart renders into memory first so a failed render leaves no file behind.
func writeChart(cmd *cobra.Command, out string, draw func(io.Writer, render.Size) error) error {
	var buf bytes.Buffer
	if err := draw(&buf, chartSize()); err != nil {
		return err
	}
	path := utils.OutputPath(cfg.OutputDir, out)
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote chart to %s\n", path)
	return nil
}

// noDataOr renders an invalid selection as an empty result; any other error
// is returned unchanged.
func noDataOr(cmd *cobra.Command, err error) error {
	if errors.Is(err, statistic.ErrInvalidSelection) {
		render.NoData(cmd.OutOrStdout(), err)
		return nil
	}
	return err
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
