package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/KaramelBytes/gdpcov-cli/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}
		srv := server.New(t, server.Options{ChartSize: chartSize()})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		errc := make(chan error, 1)
		go func() { errc <- srv.Listen(addr) }()

		select {
		case err := <-errc:
			return fmt.Errorf("serve %s: %w", addr, err)
		case <-ctx.Done():
			fmt.Fprintln(cmd.OutOrStdout(), "Shutting down dashboard")
			return srv.Shutdown()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config listen_addr)")
}
