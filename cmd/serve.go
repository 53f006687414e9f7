package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/educator/internal/config"
	"github.com/abhisek/educator/internal/educate"
	"github.com/abhisek/educator/internal/history"
	"github.com/abhisek/educator/internal/llm"
	"github.com/abhisek/educator/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the educator API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		logger := config.NewLogger(cfg.Log, os.Stderr)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		provider, configured, err := llm.NewProviderFromEnv(ctx, store)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}
		if !configured {
			logger.Warn("no LLM provider configured, serving template content",
				"template_fallback", cfg.Server.TemplateFallback)
		}

		svc := educate.NewService(provider, store, logger)
		srv := server.New(cfg.Server, svc, logger)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errCh
	},
}

func init() {
	serveCmd.Flags().StringP("config", "c", "", "Path to YAML config file")
}
