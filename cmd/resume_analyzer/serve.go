package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/applytrack/resume-analyzer/internal/analyzer"
	"github.com/applytrack/resume-analyzer/internal/config"
	"github.com/applytrack/resume-analyzer/internal/sections"
	"github.com/applytrack/resume-analyzer/internal/server"
)

var (
	servePort  int
	serveMerge string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis and scoring. Set DATABASE_URL to enable persistence of analysis results.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveMerge, "merge", "", "Duplicate-section strategy: first-match or merge")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.New(serveConfig(cmd.Flags().Changed))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// serveConfig resolves server settings from flags and the environment.
// An explicit --port flag wins over the PORT environment variable.
func serveConfig(flagChanged func(string) bool) server.Config {
	env := config.FromEnv()

	port := env.Port
	if flagChanged("port") || port == 0 {
		port = servePort
	}

	return server.Config{
		Port: port,
		// Persistence is optional for the analysis endpoints.
		DatabaseURL: env.DatabaseURL,
		Analyzer: analyzer.Config{
			MergeStrategy: sections.MergeStrategy(serveMerge),
		},
	}
}
