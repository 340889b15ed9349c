// Command blogsite serves the demo blog standalone, for poking at the
// pages the e2e suite drives (headed debugging, selector work).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avb-dev/blogwatch/internal/site"
)

var flagAddr string

var rootCmd = &cobra.Command{
	Use:   "blogsite",
	Short: "Serve the demo blog the e2e suite tests against",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address (\":0\" for a random port)")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blogsite",
	})
	logger.SetLevel(log.DebugLevel)

	cfg := site.DefaultConfig()
	cfg.Addr = flagAddr
	cfg.Logger = logger

	srv := site.NewServer(cfg)
	addr, err := srv.Start()
	if err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	logger.Info("demo blog up", "url", "http://"+addr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
