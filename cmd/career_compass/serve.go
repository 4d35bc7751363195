package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/config"
	"github.com/jordan/career-compass/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP server",
	Long:  "Start the HTTP server that backs the chat UI: résumé upload, employer scraping, and career-fit analysis endpoints.",
	RunE:  runServe,
}

var (
	serveAddr       string
	serveUseBrowser bool
	serveUseNLP     bool
	serveModels     []string
	serveAPIKey     string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default: PORT env var or "+config.DefaultListenAddr+")")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for JS-rendered pages (requires Chrome)")
	serveCmd.Flags().BoolVar(&serveUseNLP, "use-nlp", false, "Enable the model-backed extraction pass on uploads")
	serveCmd.Flags().StringSliceVar(&serveModels, "model", nil, "Model to use, repeatable; the first available wins")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	apiKey := serveAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	cfg := config.Config{ListenAddr: serveAddr}
	cfg.FromEnv()

	srv, err := server.New(context.Background(), server.Config{
		Addr:        cfg.ListenAddrOrDefault(),
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      apiKey,
		Models:      serveModels,
		UseBrowser:  serveUseBrowser,
		UseNLP:      serveUseNLP,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
