package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor-api/internal/config"
	"github.com/jonathan/resume-tailor-api/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the ingestion and resume generation
endpoints. Without DATABASE_URL or GEMINI_API_KEY the server runs in demo
mode, serving canned responses without persistence.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	appCfg := config.NewAppConfig()

	srv, err := server.New(cmd.Context(), server.Config{
		Port: servePort,
		App:  appCfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
