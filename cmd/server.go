package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gpa-tracker/internal/api/router"
	"gpa-tracker/internal/config"
	"gpa-tracker/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	port string
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server exposing the GPA record over a JSON API.
The record is loaded from the configured storage backend and every change
is written back to it.`,
	Run: func(cmd *cobra.Command, args []string) {
		startServer()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// Flags for server command
	serverCmd.Flags().StringVarP(&port, "port", "p", "", "Port for the server to listen on (default from config)")
}

func startServer() {
	cfg := config.Get()

	// Override port if flag is provided
	if port != "" {
		cfg.Server.Port = port
	}

	svc, kv, err := openSession(context.Background())
	if err != nil {
		logger.Fatal("Failed to start session: %v", err)
	}
	defer kv.Close()

	r := router.NewRouter(svc, router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StorageBackend: cfg.Storage.Backend,
	})

	srv := &http.Server{
		Addr:           net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:        r,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
