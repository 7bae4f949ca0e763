package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jobmatch/webclient/api"
	"github.com/jobmatch/webclient/server"
	"github.com/jobmatch/webclient/session"
	"github.com/jobmatch/webclient/toast"
	"github.com/jobmatch/webclient/token"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web client",
	Long:  "Start the local server; blocks until SIGINT/SIGTERM.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setupLogger(cfg, debug)
	displayAppName("jobmatch")

	holder := token.NewHolder(token.NewFileStore(cfg.TokenFile))
	gateway := api.New(cfg.APIBaseURL, holder, &http.Client{Timeout: 30 * time.Second})
	machine := session.New(gateway)
	toasts := toast.NewStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Restore the previous session, if any, before taking requests.
	machine.Initialize(ctx)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(cfg, gateway, machine, toasts),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("api", cfg.APIBaseURL).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server.ListenAndServe: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return shutdown(srv)
}

func shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func displayAppName(name string) {
	banner := figure.NewFigure(name, "cybermedium", true)
	banner.Print()
	fmt.Println()
}
