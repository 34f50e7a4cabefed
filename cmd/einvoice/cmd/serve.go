package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for encoding and decoding invoices.

The API provides endpoints for:
  - POST /api/v1/detect    - Identify version, profile and dialect
  - POST /api/v1/decode    - Decode XML or hybrid PDF to JSON
  - POST /api/v1/encode    - Encode JSON to XML (?version=&profile=&dialect=)
  - POST /api/v1/convert   - Decode and re-encode (?version=&profile=&dialect=)
  - GET  /api/v1/profiles  - List producible combinations
  - GET  /health           - Health check

Examples:
  # Start server on the configured address (EINVOICE_HTTP_ADDR)
  einvoice serve

  # Start on a custom port in debug mode
  einvoice serve --address :9090 --debug`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (env: EINVOICE_HTTP_ADDR)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode (env: EINVOICE_DEBUG)")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout (env: EINVOICE_HTTP_READ_TIMEOUT)")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout (env: EINVOICE_HTTP_WRITE_TIMEOUT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	conf := &server.Config{
		Address:      cfg.HTTP.Addr,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		Debug:        cfg.HTTP.Debug || serverDebug,
		Defaults:     cfg.Codec,
		Logger:       log,
	}
	if serverAddr != "" {
		conf.Address = serverAddr
	}
	if readTimeout > 0 {
		conf.ReadTimeout = readTimeout
	}
	if writeTimeout > 0 {
		conf.WriteTimeout = writeTimeout
	}

	srv := server.NewServer(conf)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().
		Stringer("version", cfg.Codec.Version).
		Stringer("profile", cfg.Codec.Profile).
		Stringer("dialect", cfg.Codec.Dialect).
		Msg("default output")

	return srv.Run()
}
