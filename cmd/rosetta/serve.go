package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/rosetta/internal/cli"
	httpAdapter "github.com/aretw0/rosetta/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog HTTP server",
	Long:  `Starts the Rosetta catalog in server mode, exposing a read-only JSON API with Prometheus metrics and SSE reload events.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd)

		cat, err := cli.CreateCatalog(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing catalog: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(cat)

		srv := &http.Server{
			Addr:    opts.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Rosetta server on %s\n", srv.Addr)
			fmt.Printf("Serving catalog: %s (%d topics)\n", cat.Name, cat.Len())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Rosetta server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (default :8080)")
}
